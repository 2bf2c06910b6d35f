package ski

import (
	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// testExtent is the size of every fake asset: 3x2 cells.
var testExtent = core.Extent{Width: 24, Height: 32}

// fakeProvider returns a one-glyph sprite of testExtent for any name.
type fakeProvider struct{}

func (fakeProvider) Asset(name string) assets.Asset {
	return assets.Asset{
		Name:   name,
		Extent: testExtent,
		Sprite: core.Sprite{Rows: []string{"###", "###"}},
	}
}

// fakeField reports a fixed collision and records viewport updates.
type fakeField struct {
	hit     *Obstacle
	updates int
	placed  bool
}

func (f *fakeField) PlaceInitial() { f.placed = true }

func (f *fakeField) UpdateForViewport(current, previous core.Rect) { f.updates++ }

func (f *fakeField) DetectCollision(bounds core.Rect) (Obstacle, bool) {
	if f.hit == nil {
		return Obstacle{}, false
	}
	return *f.hit, true
}

func (f *fakeField) RenderAll(dst *core.Screen, provider AssetProvider) {}

func hitting(name string) *fakeField {
	o := NewObstacle(name, core.Vec{})
	return &fakeField{hit: &o}
}

// testConfig returns default tuning with a short chase delay and a two-tick
// animation cadence.
func testConfig() config.SkiConfig {
	cfg := config.DefaultSkiConfig()
	cfg.Timer.IntervalMs = 10
	cfg.Animation.FrameMs = 20
	cfg.Timer.ChaseStartAt = 5
	return cfg
}

// newTestGame returns a reset game on an 80x24 screen with an empty fake field.
func newTestGame() (*Game, *fakeField) {
	g := New(WithConfig(testConfig()), WithAssets(fakeProvider{}))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	field := &fakeField{}
	g.field = field
	return g, field
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.NewInputFrame(actions...))
}
