// ski is a terminal rendition of the classic downhill skiing game.
//
// Usage:
//
//	ski play           - Play in this terminal
//	ski serve          - Start SSH server for remote play
//	ski assets         - List the loaded sprites
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 30)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
//
// Every flag can also be set from a SKI_* environment variable
// (e.g. SKI_FPS, SKI_LOG_LEVEL), optionally through a .env file.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Import games to register them
	_ "github.com/vovakirdan/tui-ski/internal/games/ski"
)

// envPrefix prefixes the environment variables that back the flags.
const envPrefix = "SKI_"

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ski",
	Short: "SkiFree - ski downhill in your terminal",
	Long: `SkiFree is a terminal rendition of the classic downhill skiing game.
Dodge trees and rocks, jump off ramps, and keep ahead of the rhino.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  assets   - List the loaded sprites

Examples:
  ski play
  ski play --seed 42 --config ./my-ski.yaml
  ski serve --ssh :2222
  SKI_FPS=60 ski play`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assetsCmd)
}

// applyEnv loads .env and fills every flag not set on the command line
// from its SKI_* variable.
func applyEnv(cmd *cobra.Command, _ []string) error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || firstErr != nil {
			return
		}
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		val, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		if err := cmd.Flags().Set(f.Name, val); err != nil {
			firstErr = fmt.Errorf("invalid %s: %w", name, err)
		}
	})
	return firstErr
}

// newLogger builds the logger from the global flags.
// Logs go to --log-file when set, otherwise to fallback.
// The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closer, nil
}
