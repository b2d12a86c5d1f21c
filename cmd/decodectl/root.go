package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/decodekit/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configPath string

	cfg = defaultConfig()

	stdout io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "decodectl",
	Short: "Decode binary files against a field layout",
	Long: `decodectl reads binary input from a file or stdin and decodes it
against a layout of named, typed fields. Records are printed as JSON with
fields in layout order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = c
		return logger.Init(logger.Options{
			Enabled: verbose || cfg.Log.Level != "",
			Level:   levelFor(cfg.Log.Level),
			Format:  cfg.Log.Format,
			Output:  cfg.Log.Output,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (yaml or toml)")
}

func levelFor(configured string) string {
	if verbose {
		return "debug"
	}
	return configured
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printJSON writes v as a single line of JSON
func printJSON(v interface{}) error {
	if quiet {
		return nil
	}
	return json.NewEncoder(stdout).Encode(v)
}
