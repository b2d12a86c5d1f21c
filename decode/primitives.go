package decode

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/decodekit/internal/buf"
)

// Unit is the value of decoders that only affect the input position.
type Unit = struct{}

// Option is an optional value.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Option.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Either holds one of two alternatives. IsRight selects which field is set.
type Either[A, B any] struct {
	Left    A
	Right   B
	IsRight bool
}

// Left returns an Either holding a.
func Left[A, B any](a A) Either[A, B] { return Either[A, B]{Left: a} }

// Right returns an Either holding b.
func Right[A, B any](b B) Either[A, B] { return Either[A, B]{Right: b, IsRight: true} }

// Ensure waits until at least n bytes are buffered and returns the whole
// buffer without consuming it. In Incomplete mode it suspends as often as
// needed; it fails once input is exhausted.
func Ensure(n int) Decoder[[]byte] {
	return Decoder[[]byte]{run: func(st state, kf failure, ks success[[]byte]) result {
		return ensure(n, st, kf, ks)
	}}
}

// DemandInput requests one more chunk. It fails in Complete mode, after end
// of input, or when the chunk it receives is empty.
func DemandInput() Decoder[Unit] {
	return Decoder[Unit]{run: demand}
}

// Isolate runs d over exactly the next n bytes. d cannot see past the
// window, and Isolate fails unless d consumes all of it.
func Isolate[T any](n int, d Decoder[T]) Decoder[T] {
	return Decoder[T]{run: func(st state, kf failure, ks success[T]) result {
		if n < 0 {
			return kf(nil, failPrefix+"Attempted to isolate a negative number of bytes")
		}
		return ensure(n, st, kf, func(st state, b []byte) result {
			outer := st
			window := st
			window.buf = b[:n:n]
			window.mode = Complete
			return d.run(window, kf, func(inner state, v T) result {
				if len(inner.buf) != 0 {
					return kf(nil, failPrefix+"not all bytes parsed in isolate")
				}
				return ks(outer.advance(n), v)
			})
		})
	}}
}

// Skip consumes and discards exactly n bytes.
func Skip(n int) Decoder[Unit] {
	return Decoder[Unit]{run: func(st state, kf failure, ks success[Unit]) result {
		if n < 0 {
			return kf(nil, failPrefix+"Attempted to skip a negative number of bytes")
		}
		return ensure(n, st, kf, func(st state, _ []byte) result {
			return ks(st.advance(n), Unit{})
		})
	}}
}

// UncheckedSkip drops up to n bytes from what is currently buffered. It never
// requests input and never fails.
func UncheckedSkip(n int) Decoder[Unit] {
	return Decoder[Unit]{run: func(st state, _ failure, ks success[Unit]) result {
		before := len(st.buf)
		st.buf = buf.Drop(st.buf, n)
		st.read += before - len(st.buf)
		return ks(st, Unit{})
	}}
}

// LookAhead runs d and then restores the input to where it was before d ran.
// If d fails, LookAhead fails.
func LookAhead[T any](d Decoder[T]) Decoder[T] {
	return Decoder[T]{run: func(st state, kf failure, ks success[T]) result {
		at := st.src.mark()
		return d.run(st,
			func(trace []string, msg string) result {
				st.src.release()
				return kf(trace, msg)
			},
			func(_ state, v T) result {
				return ks(st.rewind(at), v)
			})
	}}
}

// LookAheadM runs d and restores the input only when d yields None.
func LookAheadM[T any](d Decoder[Option[T]]) Decoder[Option[T]] {
	return Decoder[Option[T]]{run: func(st state, kf failure, ks success[Option[T]]) result {
		at := st.src.mark()
		return d.run(st,
			func(trace []string, msg string) result {
				st.src.release()
				return kf(trace, msg)
			},
			func(after state, v Option[T]) result {
				if !v.Valid {
					return ks(st.rewind(at), v)
				}
				st.src.release()
				return ks(after, v)
			})
	}}
}

// LookAheadE runs d and restores the input only when d yields a Left.
func LookAheadE[A, B any](d Decoder[Either[A, B]]) Decoder[Either[A, B]] {
	return Decoder[Either[A, B]]{run: func(st state, kf failure, ks success[Either[A, B]]) result {
		at := st.src.mark()
		return d.run(st,
			func(trace []string, msg string) result {
				st.src.release()
				return kf(trace, msg)
			},
			func(after state, v Either[A, B]) result {
				if !v.IsRight {
					return ks(st.rewind(at), v)
				}
				st.src.release()
				return ks(after, v)
			})
	}}
}

// UncheckedLookAhead returns up to n of the currently buffered bytes without
// consuming them or requesting input. It never fails.
func UncheckedLookAhead(n int) Decoder[[]byte] {
	return Decoder[[]byte]{run: func(st state, _ failure, ks success[[]byte]) result {
		return ks(st, buf.Take(st.buf, n))
	}}
}

// BytesRead returns how many bytes have been consumed since the drive began.
func BytesRead() Decoder[int] {
	return Decoder[int]{run: func(st state, _ failure, ks success[int]) result {
		return ks(st, st.read)
	}}
}

// Remaining returns how many bytes are currently buffered. In Incomplete mode
// this depends on how the input was chunked.
func Remaining() Decoder[int] {
	return Decoder[int]{run: func(st state, _ failure, ks success[int]) result {
		return ks(st, len(st.buf))
	}}
}

// IsEmpty reports whether the buffer is empty without requesting input.
func IsEmpty() Decoder[bool] {
	return Decoder[bool]{run: func(st state, _ failure, ks success[bool]) result {
		return ks(st, len(st.buf) == 0)
	}}
}

// AtEOF reports whether no input is left. When the buffer is empty in
// Incomplete mode it requests another chunk to find out.
func AtEOF() Decoder[bool] {
	return Decoder[bool]{run: func(st state, _ failure, ks success[bool]) result {
		if len(st.buf) > 0 {
			return ks(st, false)
		}
		return demand(st,
			func([]string, string) result { return ks(st, true) },
			func(st state, _ Unit) result { return ks(st, false) })
	}}
}

// Expect consumes len(want) bytes and fails unless they equal want.
func Expect(want []byte) Decoder[Unit] {
	return Bind(GetBytes(len(want)), func(got []byte) Decoder[Unit] {
		if !bytes.Equal(got, want) {
			return Fail[Unit](fmt.Sprintf("expected % x, got % x", want, got))
		}
		return Pure(Unit{})
	})
}
