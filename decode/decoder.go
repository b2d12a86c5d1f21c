package decode

import "fmt"

// Decoder is a composable description of how to decode a T. It does nothing
// until an execution driver runs it.
type Decoder[T any] struct {
	run func(st state, kf failure, ks success[T]) result
}

// Pure succeeds with v without consuming input.
func Pure[T any](v T) Decoder[T] {
	return Decoder[T]{run: func(st state, _ failure, ks success[T]) result {
		return ks(st, v)
	}}
}

// Fail fails with msg prefixed by "Failed reading: " and an empty trace.
func Fail[T any](msg string) Decoder[T] {
	return Decoder[T]{run: func(_ state, kf failure, _ success[T]) result {
		return kf(nil, failPrefix+msg)
	}}
}

// Failf is Fail with a formatted message.
func Failf[T any](format string, args ...any) Decoder[T] {
	return Fail[T](fmt.Sprintf(format, args...))
}

// Bind runs d and then the decoder f builds from its value.
func Bind[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return Decoder[B]{run: func(st state, kf failure, ks success[B]) result {
		return d.run(st, kf, func(st state, a A) result {
			return f(a).run(st, kf, ks)
		})
	}}
}

// Map runs d and transforms its value with f.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return Decoder[B]{run: func(st state, kf failure, ks success[B]) result {
		return d.run(st, kf, func(st state, a A) result {
			return ks(st, f(a))
		})
	}}
}

// Then runs a and then b, keeping b's value.
func Then[A, B any](a Decoder[A], b Decoder[B]) Decoder[B] {
	return Decoder[B]{run: func(st state, kf failure, ks success[B]) result {
		return a.run(st, kf, func(st state, _ A) result {
			return b.run(st, kf, ks)
		})
	}}
}

// Before runs a and then b, keeping a's value.
func Before[A, B any](a Decoder[A], b Decoder[B]) Decoder[A] {
	return Decoder[A]{run: func(st state, kf failure, ks success[A]) result {
		return a.run(st, kf, func(st state, v A) result {
			return b.run(st, kf, func(st state, _ B) result {
				return ks(st, v)
			})
		})
	}}
}

// Defer builds the decoder on first run. It lets recursive decoders refer to
// themselves.
func Defer[T any](f func() Decoder[T]) Decoder[T] {
	return Decoder[T]{run: func(st state, kf failure, ks success[T]) result {
		return f().run(st, kf, ks)
	}}
}

// OrElse runs a; if a fails, it runs b from the position a started at,
// discarding whatever a consumed. Chunks that arrived while a was suspended
// are kept.
func OrElse[T any](a, b Decoder[T]) Decoder[T] {
	return Decoder[T]{run: func(st state, kf failure, ks success[T]) result {
		at := st.src.mark()
		return a.run(st,
			func([]string, string) result {
				return b.run(st.rewind(at), kf, ks)
			},
			func(after state, v T) result {
				st.src.release()
				return ks(after, v)
			})
	}}
}

// OneOf tries each decoder in turn with OrElse. With no decoders it fails.
func OneOf[T any](ds ...Decoder[T]) Decoder[T] {
	if len(ds) == 0 {
		return Fail[T]("no alternatives")
	}
	d := ds[len(ds)-1]
	for i := len(ds) - 2; i >= 0; i-- {
		d = OrElse(ds[i], d)
	}
	return d
}

// Label names d for diagnostics. If d fails, name is prepended to the
// failure trace, so the finished trace lists labels from the outermost to
// the one nearest the failure.
func Label[T any](name string, d Decoder[T]) Decoder[T] {
	return Decoder[T]{run: func(st state, kf failure, ks success[T]) result {
		return d.run(st, func(trace []string, msg string) result {
			return kf(append([]string{name}, trace...), msg)
		}, ks)
	}}
}
