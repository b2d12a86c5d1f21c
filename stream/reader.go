package stream

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/joshuapare/decodekit/decode"
)

// chunkReader reads fixed-size chunks and remembers when the source ended.
type chunkReader struct {
	r    io.Reader
	size int
	eof  bool
	read int64
	log  *zap.Logger
}

// next returns the next non-empty chunk. It returns nil once the reader is
// exhausted.
func (c *chunkReader) next(ctx context.Context) ([]byte, error) {
	for !c.eof {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "stream: read cancelled")
		}
		chunk := make([]byte, c.size)
		n, err := c.r.Read(chunk)
		if err == io.EOF {
			c.eof = true
		} else if err != nil {
			return nil, errors.Wrapf(err, "stream: read at offset %d", c.read)
		}
		if n > 0 {
			c.read += int64(n)
			c.log.Debug("read chunk", zap.Int("bytes", n), zap.Int64("offset", c.read))
			return chunk[:n], nil
		}
	}
	return nil, nil
}

// drive feeds r until it leaves the Partial state.
func drive[T any](ctx context.Context, c *chunkReader, r decode.Result[T]) (decode.Result[T], error) {
	for r.State() == decode.StatePartial {
		chunk, err := c.next(ctx)
		if err != nil {
			return r, err
		}
		if chunk == nil {
			c.log.Debug("end of input")
			r = r.Finish()
			continue
		}
		r = r.Feed(chunk)
	}
	return r, nil
}

// Decode reads one value from r. The returned bytes are what the decoder
// left unconsumed from the chunks it was fed; data not yet read from r is
// not included.
func Decode[T any](ctx context.Context, r io.Reader, d decode.Decoder[T], opts ...Option) (T, []byte, error) {
	o := newOptions(opts)
	c := &chunkReader{r: r, size: o.chunkSize, log: o.logger}

	res, err := drive(ctx, c, decode.RunPartial(d, nil))
	if err != nil {
		var zero T
		return zero, nil, err
	}
	o.logger.Debug("decode finished", zap.Stringer("state", res.State()), zap.Int64("read", c.read))
	if res.State() == decode.StateFail {
		var zero T
		return zero, nil, res.Err()
	}
	return res.Value(), res.Rest(), nil
}

// Scanner decodes consecutive values from a reader.
//
//	s := stream.NewScanner(r, rec)
//	for s.Scan(ctx) {
//		use(s.Value())
//	}
//	if err := s.Err(); err != nil { ... }
//
// Scanning stops without error when the reader ends on a value boundary.
// A decoder that consumes no input never reaches that boundary.
type Scanner[T any] struct {
	d     decode.Decoder[T]
	c     *chunkReader
	log   *zap.Logger
	left  []byte
	value T
	count int
	err   error
}

// NewScanner returns a Scanner that reads values of d from r.
func NewScanner[T any](r io.Reader, d decode.Decoder[T], opts ...Option) *Scanner[T] {
	o := newOptions(opts)
	return &Scanner[T]{
		d:   d,
		c:   &chunkReader{r: r, size: o.chunkSize, log: o.logger},
		log: o.logger,
	}
}

// Scan decodes the next value. It returns false at the end of input or on
// the first error.
func (s *Scanner[T]) Scan(ctx context.Context) bool {
	if s.err != nil {
		return false
	}
	if len(s.left) == 0 {
		chunk, err := s.c.next(ctx)
		if err != nil {
			s.err = err
			return false
		}
		if chunk == nil {
			return false
		}
		s.left = chunk
	}

	res, err := drive(ctx, s.c, decode.RunPartial(s.d, s.left))
	if err != nil {
		s.err = err
		return false
	}
	if res.State() == decode.StateFail {
		s.err = errors.WithMessagef(res.Err(), "stream: value %d", s.count)
		return false
	}
	s.value = res.Value()
	s.left = res.Rest()
	s.count++
	s.log.Debug("decoded value", zap.Int("index", s.count-1), zap.Int("buffered", len(s.left)))
	return true
}

// Value returns the value decoded by the last successful Scan.
func (s *Scanner[T]) Value() T { return s.value }

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Scanner[T]) Err() error { return s.err }

// Remaining returns bytes read from the source but not yet decoded.
func (s *Scanner[T]) Remaining() []byte { return s.left }

// Count returns the number of values decoded so far.
func (s *Scanner[T]) Count() int { return s.count }
