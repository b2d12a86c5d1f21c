// Package stream drives decoders from io.Reader sources and memory-mapped
// files.
//
// Decode reads a single value, feeding the decoder one chunk at a time and
// signalling end of input when the reader returns io.EOF. Scanner decodes a
// sequence of values back to back, carrying bytes left over from one value
// into the next. File maps an input read-only and decodes straight from the
// mapping.
//
// I/O and cancellation errors are wrapped with github.com/pkg/errors. Decode
// failures are returned as the *decode.Error produced by the engine, so
// errors.Is(err, decode.ErrDecode) separates the two.
package stream
