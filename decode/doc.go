// Package decode is an incremental binary decoding engine.
//
// # Overview
//
// A Decoder[T] is a value describing how to turn bytes into a T. Decoders are
// built by composition and do nothing until an execution driver runs them.
// They hold no state of their own, so the same Decoder can be run any number
// of times, including concurrently over independent inputs.
//
// Input may be supplied all at once or in chunks. When a decoder needs more
// bytes than are buffered it suspends: the driver receives a Result in the
// Partial state and resumes it by feeding the next chunk. An empty chunk
// signals end of input, after which every further request for bytes fails.
//
// # Drivers
//
//	v, err := decode.Run(d, data)                 // all input at once
//	v, rest, err := decode.RunWithRemainder(d, data, off)
//	res := decode.RunPartial(d, firstChunk)       // incremental
//	for res.State() == decode.StatePartial {
//	    res = res.Feed(nextChunk())               // empty chunk = end of input
//	}
//
// # Composition
//
// Go has no generic methods, so decoders are sequenced with package
// functions:
//
//	header := decode.Bind(decode.Uint32BE(), func(n uint32) decode.Decoder[[]byte] {
//	    return decode.GetBytes(int(n))
//	})
//
// OrElse backtracks: if its first branch fails, the second runs from the
// exact input position the first one started at, including any chunks that
// arrived while the first branch was suspended. Isolate runs a decoder over an
// exact byte window and fails unless the window is consumed completely.
// LookAhead and its variants run a decoder without consuming input.
//
// # Failures
//
// Every failure is a *Error carrying a message and the trace of Label names
// that enclosed the failure site, outermost first. Labels cost nothing on the
// success path.
//
// # Numeric readers
//
// Fixed-width readers exist for 8, 16, 32 and 64 bits in big- and
// little-endian order. The host readers (UintHost, Uint32Host, ...) read the
// machine's native representation and are not portable between machines
// with different byte order or word size.
//
// # Thread Safety
//
// A single drive is single-threaded: a Partial result must be resumed by one
// goroutine at a time and at most once. Independent drives share nothing.
package decode
