package container

import (
	"iter"
	"math"
	"slices"

	"github.com/joshuapare/decodekit/decode"
)

// Length decodes the Word64 big-endian element count that prefixes every
// collection. Counts that do not fit in an int fail.
func Length() decode.Decoder[int] {
	return decode.Bind(decode.Uint64BE(), func(n uint64) decode.Decoder[int] {
		if n > math.MaxInt {
			return decode.Failf[int]("count %d does not fit in int", n)
		}
		return decode.Pure(int(n))
	})
}

// Pair holds two values decoded back to back.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf decodes a then b with no separator.
func PairOf[A, B any](a decode.Decoder[A], b decode.Decoder[B]) decode.Decoder[Pair[A, B]] {
	return decode.Bind(a, func(x A) decode.Decoder[Pair[A, B]] {
		return decode.Map(b, func(y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
	})
}

// List decodes a count followed by that many elements, in encoded order.
func List[T any](elem decode.Decoder[T]) decode.Decoder[[]T] {
	return decode.Bind(Length(), func(n int) decode.Decoder[[]T] {
		return decode.Count(n, elem)
	})
}

// Sequence decodes the same format as List and yields the elements as an
// iterator.
func Sequence[T any](elem decode.Decoder[T]) decode.Decoder[iter.Seq[T]] {
	return decode.Map(List(elem), func(xs []T) iter.Seq[T] { return slices.Values(xs) })
}

// Tree is a rose tree.
type Tree[T any] struct {
	Value    T
	Children []*Tree[T]
}

// TreeOf decodes a node value followed by a list of subtrees. Depth is
// limited only by the input.
func TreeOf[T any](elem decode.Decoder[T]) decode.Decoder[*Tree[T]] {
	var node decode.Decoder[*Tree[T]]
	node = decode.Defer(func() decode.Decoder[*Tree[T]] {
		return decode.Bind(elem, func(v T) decode.Decoder[*Tree[T]] {
			return decode.Map(List(node), func(kids []*Tree[T]) *Tree[T] {
				return &Tree[T]{Value: v, Children: kids}
			})
		})
	})
	return node
}

// Optional decodes a tag byte and, unless it is 0, the element.
func Optional[T any](elem decode.Decoder[T]) decode.Decoder[decode.Option[T]] {
	return decode.Bind(decode.Uint8(), func(tag uint8) decode.Decoder[decode.Option[T]] {
		if tag == 0 {
			return decode.Pure(decode.None[T]())
		}
		return decode.Map(elem, decode.Some[T])
	})
}

// Either decodes a tag byte and then the left branch for 0 or the right
// branch otherwise.
func Either[A, B any](left decode.Decoder[A], right decode.Decoder[B]) decode.Decoder[decode.Either[A, B]] {
	return decode.Bind(decode.Uint8(), func(tag uint8) decode.Decoder[decode.Either[A, B]] {
		if tag == 0 {
			return decode.Map(left, decode.Left[A, B])
		}
		return decode.Map(right, decode.Right[A, B])
	})
}
