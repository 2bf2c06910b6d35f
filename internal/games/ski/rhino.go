package ski

import (
	"math"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// The run cycle alternates with rhinoRunLeft1, which is shown until the
// first frame elapses.
var rhinoRunFrames = []string{
	assets.RhinoRunLeft2,
	assets.RhinoRunLeft1,
}

var rhinoEatFrames = []string{
	assets.RhinoLiftMouthOpen,
	assets.RhinoLiftEat1,
	assets.RhinoLiftEat2,
	assets.RhinoLiftEat3,
	assets.RhinoLiftEat4,
}

// Rhino pursues the skier once the chase starts.
// It moves from idle to chasing to caught, and caught is final.
type Rhino struct {
	pos             core.Vec
	speed           float64
	diagonalReducer float64
	tolerance       float64

	chasing bool
	caught  bool

	run     core.Sequence
	eat     core.Sequence
	onCatch func()
}

// NewRhino creates an idle rhino at pos. onCatch fires when it reaches the skier.
func NewRhino(cfg config.PursuerConfig, pos core.Vec, animTicks int, onCatch func()) *Rhino {
	if onCatch == nil {
		onCatch = func() {}
	}
	return &Rhino{
		pos:             pos,
		speed:           cfg.StartingSpeed,
		diagonalReducer: cfg.DiagonalSpeedReducer,
		tolerance:       cfg.ProximityTolerance,
		run:             core.NewSequence(rhinoRunFrames, animTicks, true),
		eat:             core.NewSequence(rhinoEatFrames, animTicks, false),
		onCatch:         onCatch,
	}
}

// Position returns the rhino's current coordinates.
func (r *Rhino) Position() core.Vec {
	return r.pos
}

// Chasing reports whether the rhino is pursuing.
func (r *Rhino) Chasing() bool {
	return r.chasing
}

// Caught reports whether the rhino has caught the skier.
func (r *Rhino) Caught() bool {
	return r.caught
}

// AssetName returns the sprite for the rhino's current pose.
func (r *Rhino) AssetName() string {
	switch {
	case r.caught:
		if frame, ok := r.eat.Current(); ok {
			return frame
		}
		return assets.RhinoDefault
	case r.chasing:
		if frame, ok := r.run.Current(); ok {
			return frame
		}
	}
	return assets.RhinoRunLeft1
}

// Bounds returns the rhino's hit box for the given asset extent.
func (r *Rhino) Bounds(ext core.Extent) core.Rect {
	return core.HitBox(r.pos, ext)
}

// Render draws the rhino.
func (r *Rhino) Render(dst *core.Screen, provider AssetProvider) {
	renderEntity(dst, provider, r)
}

// StartChase moves the rhino to target+offset and starts running.
// Only an idle rhino can start a chase.
func (r *Rhino) StartChase(target, offset core.Vec) {
	if r.chasing || r.caught {
		return
	}
	r.chasing = true
	r.pos = target.Add(offset)
	r.run.Start()
}

// ChaseTarget moves one tick toward target. Vertically the rhino snaps onto
// the target once within tolerance; horizontally it closes at a reduced rate
// and never passes the target.
func (r *Rhino) ChaseTarget(target core.Vec) {
	if !r.chasing {
		return
	}

	if math.Abs(target.Y-r.pos.Y) < r.tolerance {
		r.pos.Y = target.Y
	} else if target.Y > r.pos.Y {
		r.pos.Y += r.speed
	} else {
		r.pos.Y -= r.speed
	}

	r.pos.X = core.StepToward(r.pos.X, target.X, r.speed/r.diagonalReducer)
}

// CheckCaught ends the chase if the rhino's hit box overlaps the skier's.
func (r *Rhino) CheckCaught(provider AssetProvider, skier Entity) bool {
	if !r.chasing {
		return false
	}

	if !core.Intersects(entityBounds(provider, r), entityBounds(provider, skier)) {
		return false
	}

	r.chasing = false
	r.caught = true
	r.run.Stop()
	r.eat.Start()
	r.onCatch()
	return true
}

// Animate advances the run cycle and the eating sequence by one clock tick.
func (r *Rhino) Animate() {
	r.run.Advance()
	r.eat.Advance()
}
