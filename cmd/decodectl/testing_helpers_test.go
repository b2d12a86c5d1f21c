package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeInput writes data to a temporary file and returns its path
func writeInput(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

// captureOutput redirects command output while running fn
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	defer func() { stdout = orig }()
	err := fn()
	return buf.String(), err
}

// resetDecodeFlags restores decode flag globals after a test
func resetDecodeFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		decodeLayout = ""
		decodeRepeat = false
		decodeOffset = 0
		decodeRest = false
		quiet = false
		cfg = defaultConfig()
	})
}
