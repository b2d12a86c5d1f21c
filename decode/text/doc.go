// Package text decodes character data on top of the decode package.
//
// String reads the length-prefixed UTF-8 form used by the container formats:
// a Word64 big-endian byte count followed by that many bytes, which must be
// valid UTF-8. The fixed-width decoders (UTF8, UTF16LE, UTF16BE,
// Windows1252) take a byte count and convert the window to a Go string.
//
// UTF-16 input with unpaired surrogates decodes to U+FFFD rather than
// failing, matching golang.org/x/text/encoding/unicode.
package text
