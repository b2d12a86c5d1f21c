package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/decodekit/decode"
	"github.com/joshuapare/decodekit/decode/container"
)

var (
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// String decodes a Word64 big-endian byte count followed by UTF-8 text.
func String() decode.Decoder[string] {
	return decode.Bind(container.Length(), UTF8)
}

// UTF8 reads n bytes that must be valid UTF-8.
func UTF8(n int) decode.Decoder[string] {
	return decode.Bind(decode.GetBytes(n), func(b []byte) decode.Decoder[string] {
		if !utf8.Valid(b) {
			return decode.Fail[string]("invalid UTF-8")
		}
		return decode.Pure(string(b))
	})
}

// UTF16LE reads n bytes of little-endian UTF-16. n must be even.
func UTF16LE(n int) decode.Decoder[string] { return utf16(n, utf16LE, "UTF-16LE") }

// UTF16BE reads n bytes of big-endian UTF-16. n must be even.
func UTF16BE(n int) decode.Decoder[string] { return utf16(n, utf16BE, "UTF-16BE") }

func utf16(n int, enc encoding.Encoding, name string) decode.Decoder[string] {
	if n%2 != 0 {
		return decode.Failf[string]("%s length %d is odd", name, n)
	}
	return transcode(n, enc, name)
}

// Windows1252 reads n bytes of Windows-1252 text.
func Windows1252(n int) decode.Decoder[string] {
	return decode.Bind(decode.GetBytes(n), func(b []byte) decode.Decoder[string] {
		if isASCII(b) {
			return decode.Pure(string(b))
		}
		return convert(b, charmap.Windows1252, "Windows-1252")
	})
}

// Named reads n bytes in the encoding registered with IANA under name, for
// example "ISO-8859-1" or "Shift_JIS". Unknown names fail when the decoder is
// built rather than when it runs.
func Named(name string, n int) (decode.Decoder[string], error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return decode.Decoder[string]{}, fmt.Errorf("text: encoding %q: %w", name, err)
	}
	if enc == nil {
		return decode.Decoder[string]{}, fmt.Errorf("text: encoding %q is not supported", name)
	}
	return transcode(n, enc, name), nil
}

// MultiString reads n bytes of NUL-separated UTF-16LE strings closed by an
// empty string. Decoding stops at the first empty entry.
func MultiString(n int) decode.Decoder[[]string] {
	return decode.Bind(UTF16LE(n), func(s string) decode.Decoder[[]string] {
		if len(s) < 2 || s[len(s)-1] != 0 || s[len(s)-2] != 0 {
			return decode.Fail[[]string]("multi-string missing terminator")
		}
		var out []string
		for _, part := range strings.Split(s[:len(s)-1], "\x00") {
			if len(part) == 0 {
				break
			}
			out = append(out, part)
		}
		return decode.Pure(out)
	})
}

func transcode(n int, enc encoding.Encoding, name string) decode.Decoder[string] {
	return decode.Bind(decode.GetBytes(n), func(b []byte) decode.Decoder[string] {
		return convert(b, enc, name)
	})
}

func convert(b []byte, enc encoding.Encoding, name string) decode.Decoder[string] {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return decode.Failf[string]("invalid %s: %v", name, err)
	}
	return decode.Pure(string(out))
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
