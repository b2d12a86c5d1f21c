package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/joshuapare/decodekit/decode"
	"github.com/joshuapare/decodekit/decode/container"
	"github.com/joshuapare/decodekit/decode/text"
)

// record is one decoded layout, keyed by field name in layout order.
type record = *orderedmap.OrderedMap[string, any]

// field is one name=type entry of a layout.
type field struct {
	name string
	typ  string
	dec  decode.Decoder[any]
	skip bool
}

func anyOf[T any](d decode.Decoder[T]) decode.Decoder[any] {
	return decode.Map(d, func(v T) any { return v })
}

// fixed maps the width-only type names to their decoders.
var fixed = map[string]decode.Decoder[any]{
	"u8":      anyOf(decode.Uint8()),
	"i8":      anyOf(decode.Int8()),
	"u16be":   anyOf(decode.Uint16BE()),
	"u16le":   anyOf(decode.Uint16LE()),
	"u32be":   anyOf(decode.Uint32BE()),
	"u32le":   anyOf(decode.Uint32LE()),
	"u64be":   anyOf(decode.Uint64BE()),
	"u64le":   anyOf(decode.Uint64LE()),
	"i16be":   anyOf(decode.Int16BE()),
	"i16le":   anyOf(decode.Int16LE()),
	"i32be":   anyOf(decode.Int32BE()),
	"i32le":   anyOf(decode.Int32LE()),
	"i64be":   anyOf(decode.Int64BE()),
	"i64le":   anyOf(decode.Int64LE()),
	"f32be":   anyOf(decode.Float32BE()),
	"f32le":   anyOf(decode.Float32LE()),
	"f64be":   anyOf(decode.Float64BE()),
	"f64le":   anyOf(decode.Float64LE()),
	"u16host": anyOf(decode.Uint16Host()),
	"u32host": anyOf(decode.Uint32Host()),
	"u64host": anyOf(decode.Uint64Host()),
	"uhost":   anyOf(decode.UintHost()),
	"ihost":   anyOf(decode.IntHost()),
	"str":     anyOf(text.String()),
	"length":  anyOf(container.Length()),
}

// parseType builds the decoder for a type expression such as "u32le",
// "bytes:16", "list:u8" or "enc:Shift_JIS:12".
func parseType(typ string) (decode.Decoder[any], error) {
	if d, ok := fixed[typ]; ok {
		return d, nil
	}
	kind, arg, _ := strings.Cut(typ, ":")
	switch kind {
	case "list":
		elem, err := parseType(arg)
		if err != nil {
			return decode.Decoder[any]{}, err
		}
		return anyOf(container.List(elem)), nil
	case "opt":
		elem, err := parseType(arg)
		if err != nil {
			return decode.Decoder[any]{}, err
		}
		return decode.Map(container.Optional(elem), func(o decode.Option[any]) any {
			if !o.Valid {
				return nil
			}
			return o.Value
		}), nil
	case "enc":
		name, size, ok := strings.Cut(arg, ":")
		if !ok {
			return decode.Decoder[any]{}, fmt.Errorf("type %q: want enc:NAME:N", typ)
		}
		n, err := parseSize(typ, size)
		if err != nil {
			return decode.Decoder[any]{}, err
		}
		d, err := text.Named(name, n)
		if err != nil {
			return decode.Decoder[any]{}, err
		}
		return anyOf(d), nil
	}

	sized := map[string]func(int) decode.Decoder[any]{
		"bytes":   func(n int) decode.Decoder[any] { return decode.Map(decode.GetBytes(n), hexOf) },
		"skip":    func(n int) decode.Decoder[any] { return anyOf(decode.Skip(n)) },
		"utf8":    func(n int) decode.Decoder[any] { return anyOf(text.UTF8(n)) },
		"utf16le": func(n int) decode.Decoder[any] { return anyOf(text.UTF16LE(n)) },
		"utf16be": func(n int) decode.Decoder[any] { return anyOf(text.UTF16BE(n)) },
		"cp1252":  func(n int) decode.Decoder[any] { return anyOf(text.Windows1252(n)) },
		"multisz": func(n int) decode.Decoder[any] { return anyOf(text.MultiString(n)) },
		"peek": func(n int) decode.Decoder[any] {
			return decode.Map(decode.LookAhead(decode.GetByteString(n)), hexOf)
		},
	}
	build, ok := sized[kind]
	if !ok {
		return decode.Decoder[any]{}, fmt.Errorf("unknown type %q", typ)
	}
	n, err := parseSize(typ, arg)
	if err != nil {
		return decode.Decoder[any]{}, err
	}
	return build(n), nil
}

func hexOf(b []byte) any { return hex.EncodeToString(b) }

func parseSize(typ, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("type %q: size must be a non-negative integer", typ)
	}
	return n, nil
}

// parseLayout parses a comma-separated list of name=type fields. Fields of
// type skip:N are consumed but not reported.
func parseLayout(layout string) ([]field, error) {
	var fields []field
	seen := make(map[string]bool)
	for _, part := range strings.Split(layout, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, typ, ok := strings.Cut(part, "=")
		name, typ = strings.TrimSpace(name), strings.TrimSpace(typ)
		if !ok || name == "" || typ == "" {
			return nil, fmt.Errorf("field %q: want name=type", part)
		}
		if seen[name] {
			return nil, fmt.Errorf("field %q declared twice", name)
		}
		seen[name] = true
		d, err := parseType(typ)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields = append(fields, field{
			name: name,
			typ:  typ,
			dec:  decode.Label(name, d),
			skip: strings.HasPrefix(typ, "skip:"),
		})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}
	return fields, nil
}

// layoutDecoder decodes fields in order into a record.
func layoutDecoder(fields []field) decode.Decoder[record] {
	d := decode.Map(decode.Pure(decode.Unit{}), func(decode.Unit) record {
		return orderedmap.New[string, any](orderedmap.WithCapacity[string, any](len(fields)))
	})
	for _, f := range fields {
		d = decode.Bind(d, func(r record) decode.Decoder[record] {
			return decode.Map(f.dec, func(v any) record {
				if !f.skip {
					r.Set(f.name, v)
				}
				return r
			})
		})
	}
	return decode.Label("record", d)
}
