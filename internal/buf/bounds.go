package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Take returns at most the first n bytes of b. The result's capacity is
// clipped so appending to it never writes into b.
func Take(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n > len(b) {
		n = len(b)
	}
	return b[:n:n]
}

// Drop returns b without its first n bytes, clamped to [0, len(b)].
func Drop(b []byte, n int) []byte {
	if n <= 0 {
		return b
	}
	if n >= len(b) {
		return b[len(b):]
	}
	return b[n:]
}

// Concat returns a freshly allocated a ++ b. Neither input is written to,
// even when a has spare capacity.
func Concat(a, b []byte) []byte {
	if len(b) == 0 {
		return a
	}
	n, ok := AddOverflowSafe(len(a), len(b))
	if !ok {
		panic("buf: concatenated length overflows int")
	}
	out := make([]byte, n)
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// Join concatenates chunks into one fresh slice.
func Join(chunks [][]byte) []byte {
	total := 0
	for _, c := range chunks {
		var ok bool
		if total, ok = AddOverflowSafe(total, len(c)); !ok {
			panic("buf: joined length overflows int")
		}
	}
	out := make([]byte, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
