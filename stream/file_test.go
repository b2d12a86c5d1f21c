package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/decodekit/decode"
)

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0x12, 0x34, 0x56}, 0o644))

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.Equal(t, path, f.Path())
	require.Len(t, f.Bytes(), 4)

	v, rest, err := DecodeFile(f, decode.Uint16BE(), 1)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v)
	require.Equal(t, []byte{0x56}, rest)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "stream: open")
}
