// Package tui provides the Bubble Tea integration for the ski game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ski/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ClockMsg is sent on every game clock interval, independent of the frame rate.
type ClockMsg time.Time

// LoadedMsg reports the end of the game's loading phase.
type LoadedMsg struct {
	Err      error
	Duration time.Duration
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clockCmd returns a command that sends a ClockMsg after one interval.
func clockCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

// loadCmd runs the game's loading phase off the update loop.
func loadCmd(ctx context.Context, l registry.Loader) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := l.Load(ctx)
		return LoadedMsg{Err: err, Duration: time.Since(start)}
	}
}
