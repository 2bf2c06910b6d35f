// Package ski implements a SkiFree-style downhill game.
// The skier steers around trees and rocks on an endless slope, jumps off
// ramps, and after a while a rhino gives chase. The session ends when the
// skier crashes or the rhino catches up; the score is the elapsed time.
package ski

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/registry"
)

// HUD text sizes and placement, in world units relative to the viewport.
const (
	timerTextSize    = 30
	timerOffsetRight = 150
	timerOffsetTop   = 50

	gameOverTextSize  = 50
	restartTextSize   = 25
	messageOffsetLeft = 100
	gameOverOffsetBot = 150
	restartOffsetBot  = 100
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Option customizes a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading one from disk.
func WithConfig(cfg config.SkiConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgFixed = true
	}
}

// WithAssets uses provider instead of loading the built-in sprites.
func WithAssets(provider AssetProvider) Option {
	return func(g *Game) {
		g.provider = provider
	}
}

// Game implements the ski game logic.
type Game struct {
	cfg      config.SkiConfig
	cfgFixed bool
	provider AssetProvider
	runtime  core.RuntimeConfig

	skier    *Skier
	rhino    *Rhino
	field    ObstacleField
	viewport Viewport

	timer    int
	gameOver bool
	paused   bool

	frame *core.Screen // last simulated frame, kept while paused
}

// New creates a new ski game instance.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultSkiConfig()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ski"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "SkiFree"
}

// Load reads the tuning config and the sprites. It must succeed before the
// first Reset.
func (g *Game) Load(ctx context.Context) error {
	if !g.cfgFixed {
		cfg, err := config.LoadSki(configPath)
		if err != nil {
			return fmt.Errorf("ski: %w", err)
		}
		g.cfg = cfg
	}

	if g.provider == nil {
		lib, err := assets.LoadDefault(ctx)
		if err != nil {
			return fmt.Errorf("ski: %w", err)
		}
		g.provider = lib
	}
	return nil
}

// Reset starts a fresh session. Nothing from the previous session survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.timer = 0
	g.gameOver = false
	g.paused = false

	g.frame = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	size := g.frame.WorldExtent()
	g.viewport = NewViewport(size)

	animTicks := g.cfg.AnimationTicks()
	g.skier = NewSkier(g.cfg.Skier, animTicks, g.endGame)
	g.rhino = NewRhino(g.cfg.Pursuer, g.rhinoOffset(), animTicks, g.endGame)

	field := NewObstacleManager(cfg.Seed, g.cfg.Obstacles, size, g.provider)
	field.PlaceInitial()
	g.field = field
}

// rhinoOffset is where the rhino waits relative to the skier: off the
// viewport, up and to the right.
func (g *Game) rhinoOffset() core.Vec {
	size := g.viewport.Size()
	return core.Vec{
		X: size.Width * g.cfg.Pursuer.OffsetXRatio,
		Y: size.Height * g.cfg.Pursuer.OffsetYRatio,
	}
}

// endGame is the one-way signal entities use to finish the session.
func (g *Game) endGame() {
	g.gameOver = true
}

// Step applies the queued input in order, then advances one frame.
// While paused the frame is frozen.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.apply(a)
	}

	if !g.paused {
		g.update()
		g.draw()
	}

	return core.StepResult{State: g.State()}
}

// apply handles one player action. Input is ignored once the game is over.
func (g *Game) apply(a core.Action) {
	if g.gameOver {
		return
	}

	switch a {
	case core.ActionLeft:
		g.skier.TurnLeft()
	case core.ActionRight:
		g.skier.TurnRight()
	case core.ActionUp:
		g.skier.TurnUp()
	case core.ActionDown:
		g.skier.TurnDown()
	case core.ActionJump:
		g.skier.Jump()
	case core.ActionPause:
		g.paused = !g.paused
	}
}

func (g *Game) update() {
	if !g.gameOver {
		g.skier.Move()

		g.viewport.Recenter(g.skier.Position())
		if prev, ok := g.viewport.Previous(); ok {
			g.field.UpdateForViewport(g.viewport.Current(), prev)
		}

		g.skier.CheckObstacleCollision(g.field, g.provider)
	}

	if g.rhino.Chasing() {
		g.rhino.ChaseTarget(g.skier.Position())
		g.rhino.CheckCaught(g.provider, g.skier)
	}
}

func (g *Game) draw() {
	vp := g.viewport.Current()

	g.frame.Clear()
	g.frame.SetOffset(vp.Left, vp.Top)

	// Once caught, the rhino's eating frames show the skier.
	if !g.rhino.Caught() {
		g.skier.Render(g.frame, g.provider)
	}
	g.field.RenderAll(g.frame, g.provider)
	g.rhino.Render(g.frame, g.provider)

	g.frame.DrawText(fmt.Sprintf("%06d", g.timer), timerTextSize, vp.Right-timerOffsetRight, vp.Top+timerOffsetTop)

	if g.gameOver {
		g.frame.DrawText("Game Over", gameOverTextSize, vp.Left+messageOffsetLeft, vp.Bottom-gameOverOffsetBot)
		g.frame.DrawText("Press any key to restart", restartTextSize, vp.Left+messageOffsetLeft, vp.Bottom-restartOffsetBot)
	}
}

// Clock advances the elapsed timer by one interval. The timer stops at game
// over; the rhino starts chasing once it passes ChaseStartAt. Pausing does
// not stop the clock. Animations advance on every tick.
func (g *Game) Clock() {
	if !g.gameOver {
		g.timer++
		if g.timer > g.cfg.Timer.ChaseStartAt && !g.rhino.Chasing() {
			g.rhino.StartChase(g.skier.Position(), g.rhinoOffset())
		}
	}

	g.skier.Animate()
	g.rhino.Animate()
}

// ClockInterval returns the wall-clock duration of one Clock tick.
func (g *Game) ClockInterval() time.Duration {
	return g.cfg.ClockInterval()
}

// Render draws the last simulated frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.frame == nil {
		return
	}
	dst.CopyFrom(g.frame)

	if g.paused {
		msg := " PAUSED - press Enter to resume "
		w := len(msg) + 2
		x := core.Max((dst.Width()-w)/2, 0)
		y := core.Clamp(dst.Height()/2-1, 0, core.Max(dst.Height()-3, 0))
		dst.FillCells(x, y, w, 3, ' ')
		dst.DrawBox(x, y, w, 3)
		dst.DrawTextAt(x+1, y+1, msg)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.timer,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("ski", func() registry.Game {
		return New()
	})
}
