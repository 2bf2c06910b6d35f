package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	loadErr  error
	loads    int
	resets   []core.RuntimeConfig
	inputs   [][]core.Action
	clocks   int
	state    core.GameState
	rendered int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, append([]core.Action(nil), in.Actions...))
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawTextAt(0, 0, "slope")
}

func (g *fakeGame) State() core.GameState        { return g.state }
func (g *fakeGame) Clock()                       { g.clocks++ }
func (g *fakeGame) ClockInterval() time.Duration { return 10 * time.Millisecond }

func (g *fakeGame) Load(context.Context) error {
	g.loads++
	return g.loadErr
}

func newTestModel(g *fakeGame) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 7}
	return NewModel(context.Background(), g, cfg, log.New(io.Discard))
}

// loaded drives the model through its loading phase.
func loaded(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned no command")
	}
	msg, ok := cmd().(LoadedMsg)
	if !ok {
		t.Fatal("Init() command should report loading")
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelLoadsBeforeStarting(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if len(g.resets) != 0 {
		t.Fatal("game reset before loading")
	}
	if !strings.Contains(m.View(), "Loading Fake") {
		t.Errorf("View() before load = %q", m.View())
	}

	// Keys are ignored while loading.
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.inputFrame.Len() != 0 {
		t.Error("input queued before load")
	}

	m = loaded(t, m)
	if g.loads != 1 || len(g.resets) != 1 {
		t.Errorf("loads=%d resets=%d, expected 1/1", g.loads, len(g.resets))
	}
	// One row is kept for the help footer.
	if got := g.resets[0]; got.ScreenW != 40 || got.ScreenH != 11 || got.Seed != 7 {
		t.Errorf("reset config = %+v", got)
	}
}

func TestModelLoadError(t *testing.T) {
	g := &fakeGame{loadErr: errors.New("no sprites")}
	m := newTestModel(g)

	msg := m.Init()()
	m, cmd := update(m, msg)

	if m.Err() == nil {
		t.Fatal("load error not recorded")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("load error should quit")
	}
	if len(g.resets) != 0 {
		t.Error("game reset after a failed load")
	}
}

func TestModelInputReachesGameInOrder(t *testing.T) {
	g := &fakeGame{}
	m := loaded(t, newTestModel(g))

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(m, TickMsg(time.Now()))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	want := []core.Action{core.ActionLeft, core.ActionJump, core.ActionLeft}
	got := g.inputs[len(g.inputs)-1]
	if len(got) != len(want) {
		t.Fatalf("game got %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, got[i], want[i])
		}
	}

	// The frame is cleared after each tick.
	update(m, TickMsg(time.Now()))
	if n := len(g.inputs[len(g.inputs)-1]); n != 0 {
		t.Errorf("second tick got %d actions, expected 0", n)
	}
}

func TestModelClock(t *testing.T) {
	g := &fakeGame{}
	m := loaded(t, newTestModel(g))

	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = update(m, ClockMsg(time.Now()))
		if cmd == nil {
			t.Fatal("clock should reschedule itself")
		}
	}
	if g.clocks != 3 {
		t.Errorf("clocks = %d, expected 3", g.clocks)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := loaded(t, newTestModel(g))
	runID := m.runID

	g.state.GameOver = true
	m, _ = update(m, TickMsg(time.Now()))
	if !m.gameState.GameOver {
		t.Fatal("model missed game over")
	}

	m, _ = update(m, runeKey('x'))
	m, _ = update(m, TickMsg(time.Now()))

	if len(g.resets) != 2 {
		t.Fatalf("resets = %d, expected 2", len(g.resets))
	}
	if m.gameState.GameOver {
		t.Error("state still game over after restart")
	}
	if m.runID == runID {
		t.Error("restart should start a new run ID")
	}
	if m.inputFrame.Len() != 0 {
		t.Error("restart key leaked into the next run")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name   string
		loaded bool
	}{
		{"while loading", false},
		{"while playing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&fakeGame{})
			if tt.loaded {
				m = loaded(t, m)
			}
			m, cmd := update(m, runeKey('q'))
			if cmd == nil {
				t.Fatal("q should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("q should quit")
			}
			if m.View() != "" {
				t.Error("View() should be empty after quitting")
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := loaded(t, newTestModel(g))

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	last := g.resets[len(g.resets)-1]
	if last.ScreenW != 100 || last.ScreenH != 29 {
		t.Errorf("game reset with %dx%d, expected 100x29", last.ScreenW, last.ScreenH)
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := loaded(t, newTestModel(g))

	view := m.View()
	if !strings.Contains(view, "slope") {
		t.Error("View() should contain the game frame")
	}
	if !strings.Contains(view, "left") {
		t.Error("View() should contain the help footer")
	}
}
