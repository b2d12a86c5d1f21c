package container

import (
	"cmp"
	"iter"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/joshuapare/decodekit/decode"
)

// OrderedSet is a set held as an ascending slice. Lookups binary-search the
// slice and are only reliable when the input was ascending and distinct.
type OrderedSet[T cmp.Ordered] struct {
	elems []T
}

// NewOrderedSet wraps xs, which must be strictly ascending. It is not checked.
func NewOrderedSet[T cmp.Ordered](xs []T) *OrderedSet[T] {
	return &OrderedSet[T]{elems: xs}
}

func (s *OrderedSet[T]) Len() int { return len(s.elems) }

// Contains reports whether v is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := slices.BinarySearch(s.elems, v)
	return ok
}

// All yields the elements in encoded order.
func (s *OrderedSet[T]) All() iter.Seq[T] { return slices.Values(s.elems) }

// Slice returns a copy of the elements.
func (s *OrderedSet[T]) Slice() []T { return slices.Clone(s.elems) }

// fromAscendingPairs builds a map in encoded order without checking it.
func fromAscendingPairs[K cmp.Ordered, V any](ps []Pair[K, V]) *orderedmap.OrderedMap[K, V] {
	m := orderedmap.New[K, V](orderedmap.WithCapacity[K, V](len(ps)))
	for _, p := range ps {
		m.Set(p.First, p.Second)
	}
	return m
}

// Map decodes a count followed by key/value pairs in strictly ascending key
// order. The order is trusted, not checked.
func Map[K cmp.Ordered, V any](key decode.Decoder[K], val decode.Decoder[V]) decode.Decoder[*orderedmap.OrderedMap[K, V]] {
	return decode.Map(List(PairOf(key, val)), fromAscendingPairs[K, V])
}

// MapStrict is Map, but fails if the keys are not strictly ascending.
func MapStrict[K cmp.Ordered, V any](key decode.Decoder[K], val decode.Decoder[V]) decode.Decoder[*orderedmap.OrderedMap[K, V]] {
	return decode.Bind(List(PairOf(key, val)), func(ps []Pair[K, V]) decode.Decoder[*orderedmap.OrderedMap[K, V]] {
		for i := 1; i < len(ps); i++ {
			if cmp.Compare(ps[i-1].First, ps[i].First) >= 0 {
				return decode.Failf[*orderedmap.OrderedMap[K, V]]("map keys not strictly ascending at index %d", i)
			}
		}
		return decode.Pure(fromAscendingPairs(ps))
	})
}

// IntMap is Map with Int64 big-endian keys.
func IntMap[V any](val decode.Decoder[V]) decode.Decoder[*orderedmap.OrderedMap[int64, V]] {
	return Map(decode.Int64BE(), val)
}

// Set decodes a count followed by strictly ascending elements. The order is
// trusted, not checked.
func Set[T cmp.Ordered](elem decode.Decoder[T]) decode.Decoder[*OrderedSet[T]] {
	return decode.Map(List(elem), NewOrderedSet[T])
}

// SetStrict is Set, but fails if the elements are not strictly ascending.
func SetStrict[T cmp.Ordered](elem decode.Decoder[T]) decode.Decoder[*OrderedSet[T]] {
	return decode.Bind(List(elem), func(xs []T) decode.Decoder[*OrderedSet[T]] {
		for i := 1; i < len(xs); i++ {
			if cmp.Compare(xs[i-1], xs[i]) >= 0 {
				return decode.Failf[*OrderedSet[T]]("set elements not strictly ascending at index %d", i)
			}
		}
		return decode.Pure(NewOrderedSet(xs))
	})
}

// IntSet is Set with Int64 big-endian elements.
func IntSet() decode.Decoder[*OrderedSet[int64]] {
	return Set(decode.Int64BE())
}
