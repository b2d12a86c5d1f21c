package decode

import (
	"math"

	"github.com/joshuapare/decodekit/internal/buf"
)

// word reads width bytes and combines them in the given order.
func word[T buf.Word](width int, order buf.Order) Decoder[T] {
	return Decoder[T]{run: func(st state, kf failure, ks success[T]) result {
		return ensure(width, st, kf, func(st state, b []byte) result {
			return ks(st.advance(width), buf.Combine[T](b[:width], order))
		})
	}}
}

// Uint8 reads one byte.
func Uint8() Decoder[uint8] { return word[uint8](1, buf.BigEndian) }

// Int8 reads one byte as a two's complement integer.
func Int8() Decoder[int8] {
	return Map(Uint8(), func(v uint8) int8 { return int8(v) })
}

func Uint16BE() Decoder[uint16] { return word[uint16](2, buf.BigEndian) }
func Uint16LE() Decoder[uint16] { return word[uint16](2, buf.LittleEndian) }
func Uint32BE() Decoder[uint32] { return word[uint32](4, buf.BigEndian) }
func Uint32LE() Decoder[uint32] { return word[uint32](4, buf.LittleEndian) }
func Uint64BE() Decoder[uint64] { return word[uint64](8, buf.BigEndian) }
func Uint64LE() Decoder[uint64] { return word[uint64](8, buf.LittleEndian) }

func Int16BE() Decoder[int16] { return Map(Uint16BE(), func(v uint16) int16 { return int16(v) }) }
func Int16LE() Decoder[int16] { return Map(Uint16LE(), func(v uint16) int16 { return int16(v) }) }
func Int32BE() Decoder[int32] { return Map(Uint32BE(), func(v uint32) int32 { return int32(v) }) }
func Int32LE() Decoder[int32] { return Map(Uint32LE(), func(v uint32) int32 { return int32(v) }) }
func Int64BE() Decoder[int64] { return Map(Uint64BE(), func(v uint64) int64 { return int64(v) }) }
func Int64LE() Decoder[int64] { return Map(Uint64LE(), func(v uint64) int64 { return int64(v) }) }

// Float32BE reads an IEEE 754 single in big-endian order.
func Float32BE() Decoder[float32] { return Map(Uint32BE(), math.Float32frombits) }
func Float32LE() Decoder[float32] { return Map(Uint32LE(), math.Float32frombits) }

// Float64BE reads an IEEE 754 double in big-endian order.
func Float64BE() Decoder[float64] { return Map(Uint64BE(), math.Float64frombits) }
func Float64LE() Decoder[float64] { return Map(Uint64LE(), math.Float64frombits) }
