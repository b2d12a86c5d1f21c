// Package logger holds the process-wide zap logger used by decodectl.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the global logger instance. It discards all output until Init is
// called with Enabled set.
var L = zap.NewNop()

// Options configures the logger initialization.
type Options struct {
	Enabled bool   // If false, all logging is discarded
	Level   string // debug, info, warn or error. Default: info
	Format  string // console or json. Default: console
	Output  string // stderr, stdout or a file path. Default: stderr
}

// Init configures logging. Call from main before any log calls.
func Init(opts Options) error {
	if !opts.Enabled {
		L = zap.NewNop()
		return nil
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	switch strings.ToLower(opts.Format) {
	case "", "console":
	case "json":
		cfg.Encoding = "json"
		cfg.EncoderConfig = zap.NewProductionEncoderConfig()
	default:
		return fmt.Errorf("unknown log format %q", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	out := opts.Output
	if out == "" {
		out = "stderr"
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	L = l
	return nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// Sync flushes buffered log entries.
func Sync() { _ = L.Sync() }
