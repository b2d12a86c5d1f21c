package decode_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/decodekit/decode"
)

type header struct {
	Version uint16
	Flags   uint8
}

func headerDecoder() decode.Decoder[header] {
	return decode.Then(decode.Expect([]byte("HDR")),
		decode.Bind(decode.Uint16LE(), func(v uint16) decode.Decoder[header] {
			return decode.Map(decode.Uint8(), func(f uint8) header {
				return header{Version: v, Flags: f}
			})
		}))
}

// Example decodes a small header from a complete buffer.
func Example() {
	h, err := decode.Run(headerDecoder(), []byte{'H', 'D', 'R', 0x02, 0x00, 0x81})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("version=%d flags=%#x\n", h.Version, h.Flags)
	// Output: version=2 flags=0x81
}

// ExampleRunPartial feeds the same header one chunk at a time.
func ExampleRunPartial() {
	r := decode.RunPartial(headerDecoder(), []byte("HD"))
	fmt.Println(r.State())
	r = r.Feed([]byte{'R', 0x02})
	fmt.Println(r.State())
	r = r.Feed([]byte{0x00, 0x01, 0xff})
	fmt.Println(r.State(), r.Value().Version, r.Rest())
	// Output:
	// partial
	// partial
	// done 2 [255]
}

// ExampleLabel shows how labels name the failing part of a decoder.
func ExampleLabel() {
	d := decode.Label("header", decode.Then(decode.Uint8(), decode.Label("length", decode.Uint32BE())))
	_, err := decode.Run(d, []byte{1, 0, 0})
	var de *decode.Error
	if errors.As(err, &de) {
		fmt.Println(de.Message, de.Trace)
	}
	// Output: too few bytes [header length]
}

// ExampleOrElse backtracks to the second alternative with no input lost.
func ExampleOrElse() {
	d := decode.OrElse(
		decode.Then(decode.Expect([]byte{0xff}), decode.Pure("tagged")),
		decode.Map(decode.Uint8(), func(b uint8) string { return fmt.Sprintf("raw %d", b) }),
	)
	v, _ := decode.Run(d, []byte{7})
	fmt.Println(v)
	// Output: raw 7
}
