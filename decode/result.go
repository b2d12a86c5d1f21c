package decode

import "github.com/joshuapare/decodekit/internal/buf"

// Mode tells a running decoder whether more input may still arrive.
type Mode uint8

const (
	// Complete means the buffer holds all the input there will ever be.
	// Requests for more bytes fail instead of suspending.
	Complete Mode = iota
	// Incomplete means the decoder may suspend and ask for another chunk.
	Incomplete
)

func (m Mode) String() string {
	if m == Incomplete {
		return "incomplete"
	}
	return "complete"
}

// State is the tag of a Result.
type State uint8

const (
	// StateFail is terminal: decoding cannot proceed.
	StateFail State = iota
	// StatePartial is suspended: feed the next chunk to continue.
	StatePartial
	// StateDone is terminal: a value was decoded.
	StateDone

	// stateBounce marks a success handed back to a repetition loop. It never
	// reaches a driver.
	stateBounce
)

func (s State) String() string {
	switch s {
	case StateFail:
		return "fail"
	case StatePartial:
		return "partial"
	case StateDone:
		return "done"
	default:
		return "bounce"
	}
}

// Result is the outcome of running a decoder against the input seen so far.
// Fail and Done results are final. A Partial result holds a single-use
// continuation that is resumed with Feed.
type Result[T any] struct {
	state  State
	err    *Error
	resume *continuation[T]
	value  T
	rest   []byte
}

type continuation[T any] struct {
	fn   func([]byte) Result[T]
	used bool
}

// result is the engine's internal answer type; drivers convert it to Result[T].
type result = Result[any]

var bounce = result{state: stateBounce}

func failed[T any](e *Error) Result[T] {
	return Result[T]{state: StateFail, err: e}
}

func done[T any](v T, rest []byte) Result[T] {
	return Result[T]{state: StateDone, value: v, rest: rest}
}

func partial[T any](fn func([]byte) Result[T]) Result[T] {
	return Result[T]{state: StatePartial, resume: &continuation[T]{fn: fn}}
}

// State returns the result's tag.
func (r Result[T]) State() State { return r.state }

// Err returns the decode failure, or nil unless the state is StateFail.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Value returns the decoded value. It is the zero value unless the state is
// StateDone.
func (r Result[T]) Value() T { return r.value }

// Rest returns the unconsumed tail of all input supplied so far. It is nil
// unless the state is StateDone.
func (r Result[T]) Rest() []byte { return r.rest }

// Feed supplies the next chunk of input. An empty chunk signals end of input.
//
// A Partial result resumes its decoder; feeding the same Partial twice yields
// a failure. A Done result returns itself with chunk appended to its
// leftover. A Fail result returns itself.
func (r Result[T]) Feed(chunk []byte) Result[T] {
	switch r.state {
	case StatePartial:
		if r.resume.used {
			return failed[T](&Error{Message: failPrefix + "continuation already resumed"})
		}
		r.resume.used = true
		return r.resume.fn(chunk)
	case StateDone:
		r.rest = buf.Concat(r.rest, chunk)
		return r
	default:
		return r
	}
}

// Finish signals end of input. It is Feed with an empty chunk.
func (r Result[T]) Finish() Result[T] {
	return r.Feed(nil)
}

// convert retypes an engine result for a driver.
func convert[T any](r result) Result[T] {
	switch r.state {
	case StateDone:
		v, _ := r.value.(T)
		return done(v, r.rest)
	case StatePartial:
		return partial(func(chunk []byte) Result[T] {
			return convert[T](r.Feed(chunk))
		})
	case StateFail:
		return failed[T](r.err)
	default:
		return failed[T](&Error{Message: failPrefix + "Internal error: unexpected repetition marker."})
	}
}
