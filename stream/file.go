package stream

import (
	"github.com/pkg/errors"

	"github.com/joshuapare/decodekit/decode"
	"github.com/joshuapare/decodekit/internal/mmfile"
)

// File is a read-only mapping of an input file.
//
// Byte slices produced by decoders alias the mapping and must not be used
// after Close.
type File struct {
	path    string
	data    []byte
	release func() error
}

// OpenFile maps path read-only.
func OpenFile(path string) (*File, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stream: open %s", path)
	}
	return &File{path: path, data: data, release: release}, nil
}

// Bytes returns the mapped contents.
func (f *File) Bytes() []byte { return f.data }

// Path returns the path the file was opened from.
func (f *File) Path() string { return f.path }

// Close releases the mapping. It is safe to call more than once.
func (f *File) Close() error {
	f.data = nil
	if err := f.release(); err != nil {
		return errors.Wrapf(err, "stream: close %s", f.path)
	}
	return nil
}

// DecodeFile runs d over the mapped contents starting at offset. It returns
// the value and the unconsumed tail of the mapping.
func DecodeFile[T any](f *File, d decode.Decoder[T], offset int) (T, []byte, error) {
	return decode.RunWithRemainder(d, f.data, offset)
}
