package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/joshuapare/decodekit/stream"
)

// config is the file and environment configuration for decodectl.
//
// Precedence (highest to lowest):
//  1. Command-line flags
//  2. Environment variables (DECODECTL_*)
//  3. Configuration file
//  4. Default values
type config struct {
	ChunkSize int       `mapstructure:"chunk_size"`
	Log       logConfig `mapstructure:"log"`
}

type logConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func defaultConfig() config {
	return config{ChunkSize: stream.DefaultChunkSize}
}

// loadConfig reads the optional config file at path, then the environment,
// then any flags in fs that map to config keys.
func loadConfig(path string, fs *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetEnvPrefix("DECODECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := defaultConfig()
	v.SetDefault("chunk_size", def.ChunkSize)
	v.SetDefault("log.level", "")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return config{}, fmt.Errorf("configuration file not found: %s", path)
			}
			return config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if fs != nil {
		if f := fs.Lookup("chunk-size"); f != nil {
			if err := v.BindPFlag("chunk_size", f); err != nil {
				return config{}, err
			}
		}
	}

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if c.ChunkSize < 1 {
		return config{}, fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	return c, nil
}
