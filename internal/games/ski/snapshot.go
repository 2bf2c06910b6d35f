package ski

import "github.com/vovakirdan/tui-ski/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Timer        int
	SkierPos     core.Vec
	SkierDir     Direction
	SkierAsset   string
	Jumping      bool
	RhinoPos     core.Vec
	RhinoAsset   string
	RhinoChasing bool
	RhinoCaught  bool
	Viewport     core.Rect
	Obstacles    int
	GameOver     bool
	Paused       bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Timer:    g.timer,
		Viewport: g.viewport.Current(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}

	if g.skier != nil {
		s.SkierPos = g.skier.Position()
		s.SkierDir = g.skier.Direction()
		s.SkierAsset = g.skier.AssetName()
		s.Jumping = g.skier.Jumping()
	}
	if g.rhino != nil {
		s.RhinoPos = g.rhino.Position()
		s.RhinoAsset = g.rhino.AssetName()
		s.RhinoChasing = g.rhino.Chasing()
		s.RhinoCaught = g.rhino.Caught()
	}
	if m, ok := g.field.(*ObstacleManager); ok {
		s.Obstacles = m.Len()
	}
	return s
}
