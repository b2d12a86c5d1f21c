package decode

import (
	"bytes"
	"io"

	"github.com/joshuapare/decodekit/internal/buf"
)

// GetBytes consumes exactly n bytes and returns them without copying. The
// slice may share storage with the input passed to the driver, so it must
// not outlive that input; use GetByteString when it has to.
func GetBytes(n int) Decoder[[]byte] {
	return Decoder[[]byte]{run: func(st state, kf failure, ks success[[]byte]) result {
		if n < 0 {
			return kf(nil, failPrefix+"Attempted to read a negative number of bytes")
		}
		return ensure(n, st, kf, func(st state, b []byte) result {
			return ks(st.advance(n), b[:n:n])
		})
	}}
}

// GetByteString consumes exactly n bytes and returns an independent copy.
func GetByteString(n int) Decoder[[]byte] {
	return Map(GetBytes(n), func(b []byte) []byte {
		return append(make([]byte, 0, len(b)), b...)
	})
}

// GetShortBytes is GetByteString for short fields such as identifiers.
func GetShortBytes(n int) Decoder[[]byte] {
	return GetByteString(n)
}

// Lazy is a byte sequence held as a list of chunks, for consumers that
// stream their input.
type Lazy [][]byte

// Len returns the total number of bytes across all chunks.
func (l Lazy) Len() int {
	n := 0
	for _, c := range l {
		n += len(c)
	}
	return n
}

// Bytes flattens the chunks into one slice.
func (l Lazy) Bytes() []byte { return buf.Join(l) }

// Reader returns a reader over the chunks in order.
func (l Lazy) Reader() io.Reader {
	rs := make([]io.Reader, len(l))
	for i, c := range l {
		rs[i] = bytes.NewReader(c)
	}
	return io.MultiReader(rs...)
}

// GetLazyByteString consumes exactly n bytes and returns a copy as a
// single-chunk Lazy.
func GetLazyByteString(n int) Decoder[Lazy] {
	return Map(GetByteString(n), func(b []byte) Lazy {
		if len(b) == 0 {
			return Lazy{}
		}
		return Lazy{b}
	})
}
