package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/games/ski"
	"github.com/vovakirdan/tui-ski/internal/platform/tui"
	"github.com/vovakirdan/tui-ski/internal/registry"
)

var (
	flagConfig string
	flagSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run down the slope in the current terminal.

Controls:
  Left/H, Right/L   - Turn; sidestep when already facing sideways
  Down/J            - Ski straight down
  Up/K              - Climb while facing sideways
  Space             - Jump
  Enter/P           - Pause
  Ctrl+S            - Save a screenshot to ~/.ski/screenshots
  Q/Ctrl+C          - Quit
  Any key           - Restart (after game over)

Config lookup order:
  --config path, ~/.ski/configs/ski.yaml, ./configs/ski.yaml, built-in defaults

Examples:
  ski play
  ski play --seed 42
  ski play --config ./my-ski.yaml --log-file ski.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	ski.SetConfigPath(flagConfig)
	game, err := registry.Create("ski")
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, game, cfg, logger); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

