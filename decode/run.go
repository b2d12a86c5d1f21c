package decode

import "github.com/joshuapare/decodekit/internal/buf"

func drive[T any](d Decoder[T], input []byte, mode Mode) Result[T] {
	st := state{buf: input, mode: mode, src: &source{}}
	r := d.run(st,
		func(trace []string, msg string) result {
			return failed[any](&Error{Message: msg, Trace: trace})
		},
		func(st state, v T) result {
			return done[any](v, st.buf)
		})
	return convert[T](r)
}

// Run decodes input in Complete mode and returns the value.
func Run[T any](d Decoder[T], input []byte) (T, error) {
	v, _, err := complete(drive(d, input, Complete))
	return v, err
}

// RunPartial decodes input in Incomplete mode. The result may be Partial;
// feed it further chunks, and an empty chunk at end of input.
func RunPartial[T any](d Decoder[T], input []byte) Result[T] {
	return drive(d, input, Incomplete)
}

// RunWithRemainder decodes input starting offset bytes in, in Complete mode,
// and returns the value with the unconsumed tail. The offset is clamped to
// the input.
func RunWithRemainder[T any](d Decoder[T], input []byte, offset int) (T, []byte, error) {
	return complete(drive(d, buf.Drop(input, offset), Complete))
}

// RunChunks feeds chunks to d one at a time, then signals end of input. It
// returns the value and the unconsumed tail, including chunks that arrived
// after the value was complete. Empty chunks are skipped.
func RunChunks[T any](d Decoder[T], chunks [][]byte) (T, []byte, error) {
	r := RunPartial(d, nil)
	for _, c := range chunks {
		if len(c) == 0 {
			continue
		}
		r = r.Feed(c)
	}
	return complete(r.Finish())
}

func complete[T any](r Result[T]) (T, []byte, error) {
	var zero T
	switch r.State() {
	case StateDone:
		return r.value, r.rest, nil
	case StateFail:
		return zero, nil, r.err
	default:
		return zero, nil, &Error{Message: failPrefix + "Internal error: unexpected Partial."}
	}
}
