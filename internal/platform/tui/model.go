package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/registry"
)

// footerHeight is the number of terminal rows reserved for the help line.
const footerHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	ctx        context.Context
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	runID      string
	inputFrame core.InputFrame
	gameState  core.GameState
	loaded     bool
	reported   bool // Whether the current run's end has been logged
	err        error
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the full terminal size; one row is kept for the help footer.
func NewModel(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = core.Max(cfg.ScreenH-footerHeight, 1)
	cfg.ScreenW = core.Max(cfg.ScreenW, 1)

	if logger == nil {
		logger = log.Default()
	}
	_, needsLoad := game.(registry.Loader)

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		ctx:        ctx,
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       h,
		logger:     logger,
		runID:      uuid.NewString(),
		inputFrame: core.NewInputFrame(),
		loaded:     !needsLoad,
	}
}

// Init starts loading the game, or starts it directly when nothing needs loading.
func (m Model) Init() tea.Cmd {
	if !m.loaded {
		return loadCmd(m.ctx, m.game.(registry.Loader))
	}
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)
	return m.startLoops()
}

// startLoops starts the frame tick and, for clocked games, the game clock.
func (m Model) startLoops() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if c, ok := m.game.(registry.Clocked); ok {
		cmds = append(cmds, clockCmd(c.ClockInterval()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case LoadedMsg:
		return m.handleLoaded(msg)

	case TickMsg:
		return m.handleTick()

	case ClockMsg:
		return m.handleClock()
	}

	return m, nil
}

// handleLoaded starts the first run once loading has finished.
func (m Model) handleLoaded(msg LoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.logger.Error("loading failed", "game", m.game.ID(), "err", msg.Err)
		m.quitting = true
		return m, tea.Quit
	}

	m.loaded = true
	m.logger.Info("assets loaded", "game", m.game.ID(), "took", msg.Duration)

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("run started", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)
	return m, m.startLoops()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if !m.loaded {
			return m, nil
		}
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if !m.loaded {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.gameState.GameOver) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = core.Max(msg.Width, 1)
	m.config.ScreenH = core.Max(msg.Height-footerHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = m.config.ScreenW

	// The slope is sized from the terminal, so a running game starts over.
	if m.loaded && !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.runID = uuid.NewString()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.reported = false
		m.inputFrame.Clear()
		m.logger.Info("run started", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.reported {
		m.logger.Info("run ended", "game", m.game.ID(), "run", m.runID, "time", m.gameState.Score)
		m.reported = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleClock advances the game clock and schedules the next clock tick.
func (m Model) handleClock() (tea.Model, tea.Cmd) {
	c, ok := m.game.(registry.Clocked)
	if !ok {
		return m, nil
	}
	c.Clock()
	return m, clockCmd(c.ClockInterval())
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".ski", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Err returns the loading error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.loaded {
		line := footerStyle.Render("Loading " + m.game.Title() + "...")
		return strings.Repeat("\n", m.config.ScreenH/2) + line
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(ctx, game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fmt.Errorf("tui: %w", fm.Err())
	}
	return nil
}
