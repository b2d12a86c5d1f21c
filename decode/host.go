package decode

import (
	"unsafe"
)

// The host readers reinterpret the input bytes in the machine's own
// representation. Data written on a machine with a different byte order or
// word size decodes to different values; use the fixed-order readers for
// anything that crosses machines.

// host copies size bytes into a T so the read is independent of the
// alignment of the input.
func host[T uint | uint16 | uint32 | uint64](st state, kf failure, ks success[T]) result {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return ensure(size, st, kf, func(st state, b []byte) result {
		var v T
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), b[:size])
		return ks(st.advance(size), v)
	})
}

// UintHost reads a native machine word (4 or 8 bytes). Not portable.
func UintHost() Decoder[uint] { return Decoder[uint]{run: host[uint]} }

// Uint16Host reads 2 bytes in native byte order. Not portable.
func Uint16Host() Decoder[uint16] { return Decoder[uint16]{run: host[uint16]} }

// Uint32Host reads 4 bytes in native byte order. Not portable.
func Uint32Host() Decoder[uint32] { return Decoder[uint32]{run: host[uint32]} }

// Uint64Host reads 8 bytes in native byte order. Not portable.
func Uint64Host() Decoder[uint64] { return Decoder[uint64]{run: host[uint64]} }

// IntHost reads a native signed machine word. Not portable.
func IntHost() Decoder[int] {
	return Map(UintHost(), func(v uint) int { return int(v) })
}
