package decode

import "github.com/joshuapare/decodekit/internal/buf"

// state is the implicit input threaded through a decoder. It is passed by
// value: every step that consumes bytes hands a new state to its
// continuation and never mutates the one it received.
type state struct {
	buf  []byte
	mode Mode
	read int
	src  *source
}

// source is shared by every state of a single drive. It remembers whether
// end of input was signalled and, while a backtrack point is open, logs the
// chunks that arrive so a rewind can restore them.
type source struct {
	eof   bool
	marks int
	log   [][]byte
}

// mark opens a backtrack point and returns its position in the chunk log.
func (s *source) mark() int {
	s.marks++
	return len(s.log)
}

// release closes the most recent backtrack point.
func (s *source) release() {
	s.marks--
	if s.marks <= 0 {
		s.marks = 0
		s.log = nil
	}
}

func (s *source) record(chunk []byte) {
	if s.marks > 0 {
		s.log = append(s.log, chunk)
	}
}

// rewind returns st as it was when the backtrack point at was opened, plus
// every chunk delivered since, and closes that point.
func (st state) rewind(at int) state {
	if at < len(st.src.log) {
		st.buf = buf.Concat(st.buf, buf.Join(st.src.log[at:]))
		st.mode = Incomplete
	}
	st.src.release()
	return st
}

func (st state) advance(n int) state {
	st.buf = st.buf[n:]
	st.read += n
	return st
}

type failure func(trace []string, msg string) result

type success[T any] func(st state, v T) result

// demand suspends for one more chunk. It fails when the mode is Complete or
// end of input was already signalled.
func demand(st state, kf failure, ks success[struct{}]) result {
	if st.mode == Complete || st.src.eof {
		return kf(nil, tooFewBytes)
	}
	return partial(func(chunk []byte) result {
		if len(chunk) == 0 {
			st.src.eof = true
			return kf(nil, tooFewBytes)
		}
		chunk = append([]byte(nil), chunk...)
		st.src.record(chunk)
		st.buf = buf.Concat(st.buf, chunk)
		st.mode = Incomplete
		return ks(st, struct{}{})
	})
}

// ensure calls ks once at least n bytes are buffered, demanding input as
// often as needed.
func ensure(n int, st state, kf failure, ks success[[]byte]) result {
	if len(st.buf) >= n {
		return ks(st, st.buf)
	}
	return demand(st, kf, func(st state, _ struct{}) result {
		return ensure(n, st, kf, ks)
	})
}
