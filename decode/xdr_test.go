package decode_test

import (
	"bytes"
	"testing"

	xdr "github.com/rasky/go-xdr/xdr2"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/decodekit/decode"
)

type xdrCall struct {
	XID     uint32
	Offset  int64
	Name    string
	Payload []byte
	Flag    bool
}

// xdrOpaque decodes an XDR variable-length opaque: a big-endian 32-bit length,
// the bytes, then zero padding to a 4-byte boundary.
func xdrOpaque() decode.Decoder[[]byte] {
	return decode.Bind(decode.Uint32BE(), func(n uint32) decode.Decoder[[]byte] {
		pad := (4 - int(n)%4) % 4
		return decode.Before(decode.GetByteString(int(n)), decode.Expect(make([]byte, pad)))
	})
}

func xdrCallDecoder() decode.Decoder[xdrCall] {
	return decode.Bind(decode.Uint32BE(), func(xid uint32) decode.Decoder[xdrCall] {
		return decode.Bind(decode.Int64BE(), func(off int64) decode.Decoder[xdrCall] {
			return decode.Bind(xdrOpaque(), func(name []byte) decode.Decoder[xdrCall] {
				return decode.Bind(xdrOpaque(), func(payload []byte) decode.Decoder[xdrCall] {
					return decode.Map(decode.Uint32BE(), func(b uint32) xdrCall {
						return xdrCall{XID: xid, Offset: off, Name: string(name), Payload: payload, Flag: b != 0}
					})
				})
			})
		})
	})
}

func TestInterop_XDR(t *testing.T) {
	want := xdrCall{XID: 0xdeadbeef, Offset: -42, Name: "export", Payload: []byte{1, 2, 3, 4, 5}, Flag: true}

	var b bytes.Buffer
	_, err := xdr.Marshal(&b, &want)
	require.NoError(t, err)

	got, err := decode.Run(xdrCallDecoder(), b.Bytes())
	require.NoError(t, err)
	require.Equal(t, want, got)

	// The same bytes fed one at a time decode identically.
	var chunks [][]byte
	for i := range b.Len() {
		chunks = append(chunks, b.Bytes()[i:i+1])
	}
	got, rest, err := decode.RunChunks(xdrCallDecoder(), chunks)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, want, got)
}
