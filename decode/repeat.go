package decode

// maxPrealloc caps the capacity reserved up front from an untrusted count.
const maxPrealloc = 4096

// Count runs d exactly n times and collects the values in order. A negative
// n fails.
func Count[T any](n int, d Decoder[T]) Decoder[[]T] {
	step := Map(d, Some[T])
	return Decoder[[]T]{run: func(st state, kf failure, ks success[[]T]) result {
		if n < 0 {
			return kf(nil, failPrefix+"Attempted to repeat a negative number of times")
		}
		return collect(st, kf, ks, step, n, make([]T, 0, min(n, maxPrealloc)))
	}}
}

// Many runs d until it fails and collects the values. The failing attempt is
// backtracked, so Many itself never fails. d must consume input on success or
// Many never stops.
func Many[T any](d Decoder[T]) Decoder[[]T] {
	step := OrElse(Map(d, Some[T]), Pure(None[T]()))
	return Decoder[[]T]{run: func(st state, kf failure, ks success[[]T]) result {
		return collect(st, kf, ks, step, -1, nil)
	}}
}

// collect repeats step until it yields None or limit values are gathered
// (limit < 0 means no limit). Steps that succeed synchronously hand their
// value back to the loop instead of nesting another frame; a step that
// suspends continues the loop from its continuation when resumed.
func collect[T any](st state, kf failure, ks success[[]T], step Decoder[Option[T]], limit int, out []T) result {
	for limit < 0 || len(out) < limit {
		var (
			sync = true
			hit  bool
			next state
			got  Option[T]
		)
		r := step.run(st, kf, func(after state, v Option[T]) result {
			if sync {
				hit, next, got = true, after, v
				return bounce
			}
			if !v.Valid {
				return ks(after, out)
			}
			return collect(after, kf, ks, step, limit, append(out, v.Value))
		})
		sync = false
		if !hit {
			return r
		}
		if !got.Valid {
			return ks(next, out)
		}
		st, out = next, append(out, got.Value)
	}
	return ks(st, out)
}
