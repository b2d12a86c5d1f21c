package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/decodekit/stream"
)

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := loadConfig("", nil)
	require.NoError(t, err)
	require.Equal(t, stream.DefaultChunkSize, c.ChunkSize)
	require.Equal(t, "console", c.Log.Format)
	require.Empty(t, c.Log.Level)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: 4096\nlog:\n  level: warn\n"), 0o644))

	c, err := loadConfig(path, nil)
	require.NoError(t, err)
	require.Equal(t, 4096, c.ChunkSize)
	require.Equal(t, "warn", c.Log.Level)

	t.Setenv("DECODECTL_CHUNK_SIZE", "128")
	t.Setenv("DECODECTL_LOG_FORMAT", "json")
	c, err = loadConfig(path, nil)
	require.NoError(t, err)
	require.Equal(t, 128, c.ChunkSize)
	require.Equal(t, "json", c.Log.Format)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodectl.toml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size = 512\n"), 0o644))
	c, err := loadConfig(path, nil)
	require.NoError(t, err)
	require.Equal(t, 512, c.ChunkSize)
}

func TestLoadConfig_FlagWins(t *testing.T) {
	t.Setenv("DECODECTL_CHUNK_SIZE", "128")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("chunk-size", stream.DefaultChunkSize, "")
	require.NoError(t, fs.Parse([]string{"--chunk-size=9"}))

	c, err := loadConfig("", fs)
	require.NoError(t, err)
	require.Equal(t, 9, c.ChunkSize)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.ErrorContains(t, err, "not found")

	t.Setenv("DECODECTL_CHUNK_SIZE", "0")
	_, err = loadConfig("", nil)
	require.ErrorContains(t, err, "must be positive")
}
