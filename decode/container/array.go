package container

import (
	"fmt"

	"github.com/joshuapare/decodekit/decode"
)

// Integer is the set of index types an Array accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Array is an array indexed by the inclusive range [Lower, Upper].
type Array[I Integer, T any] struct {
	Lower, Upper I
	elems        []T
}

// span returns the number of indices in [lower, upper]. The subtraction is
// done modulo 2^64, which is exact for every Integer type.
func span[I Integer](lower, upper I) (uint64, bool) {
	if upper < lower {
		return 0, true
	}
	d := uint64(upper) - uint64(lower)
	if d == ^uint64(0) {
		return 0, false
	}
	return d + 1, true
}

// NewArray builds an array over [lower, upper] from elems. It fails when
// elems is too short to fill the range; extra elements are dropped.
func NewArray[I Integer, T any](lower, upper I, elems []T) (*Array[I, T], error) {
	n, ok := span(lower, upper)
	if !ok || n > uint64(len(elems)) {
		return nil, fmt.Errorf("array: %d elements cannot fill bounds (%v, %v)", len(elems), lower, upper)
	}
	return &Array[I, T]{Lower: lower, Upper: upper, elems: elems[:n:n]}, nil
}

// Len returns the number of elements.
func (a *Array[I, T]) Len() int { return len(a.elems) }

// At returns the element at index i.
func (a *Array[I, T]) At(i I) (T, bool) {
	var zero T
	if len(a.elems) == 0 || i < a.Lower || i > a.Upper {
		return zero, false
	}
	return a.elems[uint64(i)-uint64(a.Lower)], true
}

// Elems returns the elements in index order.
func (a *Array[I, T]) Elems() []T { return a.elems }

// ArrayOf decodes the lower and upper bound, then a list body. The bounds
// are not checked against the list length beyond what NewArray requires.
func ArrayOf[I Integer, T any](index decode.Decoder[I], elem decode.Decoder[T]) decode.Decoder[*Array[I, T]] {
	return decode.Bind(PairOf(index, index), func(b Pair[I, I]) decode.Decoder[*Array[I, T]] {
		return decode.Bind(List(elem), func(xs []T) decode.Decoder[*Array[I, T]] {
			a, err := NewArray(b.First, b.Second, xs)
			if err != nil {
				return decode.Fail[*Array[I, T]](err.Error())
			}
			return decode.Pure(a)
		})
	})
}
