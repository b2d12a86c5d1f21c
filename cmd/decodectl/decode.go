package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/decodekit/decode"
	"github.com/joshuapare/decodekit/internal/logger"
	"github.com/joshuapare/decodekit/stream"
)

var (
	decodeLayout string
	decodeRepeat bool
	decodeOffset int
	decodeRest   bool
)

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().StringVarP(&decodeLayout, "layout", "l", "", "Comma-separated name=type fields")
	cmd.Flags().BoolVarP(&decodeRepeat, "repeat", "r", false, "Decode records until end of input")
	cmd.Flags().IntVar(&decodeOffset, "offset", 0, "Skip this many bytes before decoding")
	cmd.Flags().Int("chunk-size", stream.DefaultChunkSize, "Read size for streamed input")
	cmd.Flags().BoolVar(&decodeRest, "rest", false, "Report the number of undecoded trailing bytes")
	_ = cmd.MarkFlagRequired("layout")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Decode input against a field layout",
		Long: `The decode command decodes a file, or stdin when the argument is "-",
against a layout and prints each record as a JSON object.

Types:
  u8 i8 u16be u16le u32be u32le u64be u64le i16be ... f32be f64le
  u16host u32host u64host uhost ihost   native byte order
  bytes:N peek:N skip:N                 raw bytes (hex), lookahead, skipped
  str utf8:N utf16le:N utf16be:N cp1252:N multisz:N enc:NAME:N
  length list:TYPE opt:TYPE              Word64 count, counted list, tagged option

Example:
  decodectl decode --layout "magic=bytes:4,version=u16le,name=str" file.bin
  decodectl decode --layout "id=u32be,len=u8" --repeat - < records.bin
  decodectl decode --layout "hdr=skip:16,count=u32le" --offset 512 disk.img`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runDecode(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if decodeOffset < 0 {
		return fmt.Errorf("offset must not be negative, got %d", decodeOffset)
	}
	fields, err := parseLayout(decodeLayout)
	if err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	d := layoutDecoder(fields)
	log := logger.L.With(zap.String("input", path), zap.Int("fields", len(fields)))

	if path != "-" && !decodeRepeat {
		return decodeMapped(path, d, log)
	}

	r, closeFn, err := openInput(path)
	if err != nil {
		return err
	}
	defer closeFn()

	if decodeOffset > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(decodeOffset)); err != nil {
			return fmt.Errorf("failed to skip %d bytes: %w", decodeOffset, err)
		}
	}

	opts := []stream.Option{stream.WithChunkSize(cfg.ChunkSize), stream.WithLogger(log)}
	if !decodeRepeat {
		rec, rest, err := stream.Decode(ctx, r, d, opts...)
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
		return emit(rec, len(rest))
	}

	s := stream.NewScanner(r, d, opts...)
	for s.Scan(ctx) {
		if err := printJSON(s.Value()); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("decode failed after %d records: %w", s.Count(), err)
	}
	log.Debug("records decoded", zap.Int("count", s.Count()))
	return nil
}

func decodeMapped(path string, d decode.Decoder[record], log *zap.Logger) error {
	f, err := stream.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	log.Debug("mapped input", zap.Int("size", len(f.Bytes())))

	if decodeOffset > len(f.Bytes()) {
		return fmt.Errorf("offset %d is past end of file (%d bytes)", decodeOffset, len(f.Bytes()))
	}
	rec, rest, err := stream.DecodeFile(f, d, decodeOffset)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	// Output is written before the mapping is released.
	return emit(rec, len(rest))
}

func emit(rec record, rest int) error {
	if decodeRest {
		rec.Set("_rest", rest)
	}
	return printJSON(rec)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}
