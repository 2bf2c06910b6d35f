package ski

import (
	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// Direction is the skier's heading. The order matters: turning left steps
// down the list and turning right steps up it.
type Direction int

const (
	DirCrash Direction = iota
	DirLeft
	DirLeftDown
	DirDown
	DirRightDown
	DirRight
)

var directionAssets = map[Direction]string{
	DirCrash:     assets.SkierCrash,
	DirLeft:      assets.SkierLeft,
	DirLeftDown:  assets.SkierLeftDown,
	DirDown:      assets.SkierDown,
	DirRightDown: assets.SkierRightDown,
	DirRight:     assets.SkierRight,
}

// Valid reports whether d is one of the six headings.
func (d Direction) Valid() bool {
	return d >= DirCrash && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirCrash:
		return "Crash"
	case DirLeft:
		return "Left"
	case DirLeftDown:
		return "LeftDown"
	case DirDown:
		return "Down"
	case DirRightDown:
		return "RightDown"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// skierJumpFrames is played once per jump. skierJump5 is loaded but unused.
var skierJumpFrames = []string{
	assets.SkierJump1,
	assets.SkierJump2,
	assets.SkierJump3,
	assets.SkierJump4,
}

// jumpable obstacles are safe to pass over while airborne.
var jumpable = map[string]bool{
	assets.Ramp:  true,
	assets.Rock1: true,
	assets.Rock2: true,
}

// Skier is the player-controlled entity.
type Skier struct {
	pos             core.Vec
	direction       Direction
	speed           float64
	diagonalReducer float64
	jump            core.Sequence
	onCrash         func()
}

// NewSkier creates a skier at the world origin facing downhill.
// animTicks is the number of clock ticks per jump frame; onCrash fires
// when the skier hits an obstacle it cannot pass.
func NewSkier(cfg config.SkierConfig, animTicks int, onCrash func()) *Skier {
	if onCrash == nil {
		onCrash = func() {}
	}
	return &Skier{
		direction:       DirDown,
		speed:           cfg.StartingSpeed,
		diagonalReducer: cfg.DiagonalSpeedReducer,
		jump:            core.NewSequence(skierJumpFrames, animTicks, false),
		onCrash:         onCrash,
	}
}

// Position returns the skier's current coordinates.
func (s *Skier) Position() core.Vec {
	return s.pos
}

// Direction returns the current heading.
func (s *Skier) Direction() Direction {
	return s.direction
}

// Jumping reports whether a jump is in progress.
func (s *Skier) Jumping() bool {
	return s.jump.Active()
}

// Speed returns the per-tick movement speed.
func (s *Skier) Speed() float64 {
	return s.speed
}

// AssetName returns the jump frame on display, or the heading's asset.
func (s *Skier) AssetName() string {
	if frame, ok := s.jump.Current(); ok {
		return frame
	}
	return directionAssets[s.direction]
}

// Bounds returns the skier's hit box for the given asset extent.
func (s *Skier) Bounds(ext core.Extent) core.Rect {
	return core.HitBox(s.pos, ext)
}

// Render draws the skier.
func (s *Skier) Render(dst *core.Screen, provider AssetProvider) {
	renderEntity(dst, provider, s)
}

// SetDirection changes the heading. Values outside the six headings are
// rejected and reported false.
func (s *Skier) SetDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	s.direction = d
	return true
}

// TurnLeft steers one step left. Already facing Left (or crashed), the skier
// sidesteps left instead.
func (s *Skier) TurnLeft() {
	if s.direction == DirLeft || s.direction == DirCrash {
		s.pos.X -= s.speed
		return
	}
	s.SetDirection(s.direction - 1)
}

// TurnRight steers one step right. Already facing Right (or crashed), the
// skier sidesteps right instead.
func (s *Skier) TurnRight() {
	if s.direction == DirRight || s.direction == DirCrash {
		s.pos.X += s.speed
		return
	}
	s.SetDirection(s.direction + 1)
}

// TurnUp climbs uphill, only while traversing.
func (s *Skier) TurnUp() {
	if s.direction == DirLeft || s.direction == DirRight {
		s.pos.Y -= s.speed
	}
}

// TurnDown points the skier straight downhill.
func (s *Skier) TurnDown() {
	s.SetDirection(DirDown)
}

// Jump starts a jump unless one is already in progress.
func (s *Skier) Jump() {
	if s.jump.Active() {
		return
	}
	s.jump.Start()
}

// Move applies one tick of downhill movement for the current heading.
func (s *Skier) Move() {
	switch s.direction {
	case DirLeftDown:
		d := s.speed / s.diagonalReducer
		s.pos.X -= d
		s.pos.Y += d
	case DirDown:
		s.pos.Y += s.speed
	case DirRightDown:
		d := s.speed / s.diagonalReducer
		s.pos.X += d
		s.pos.Y += d
	}
}

// Animate advances the jump by one clock tick.
func (s *Skier) Animate() {
	s.jump.Advance()
}

// CheckObstacleCollision reacts to the first obstacle under the skier.
// A ramp launches a jump, jumpable obstacles are cleared while airborne,
// anything else crashes the skier.
func (s *Skier) CheckObstacleCollision(field ObstacleField, provider AssetProvider) {
	hit, ok := field.DetectCollision(entityBounds(provider, s))
	if !ok {
		return
	}

	name := hit.AssetName()
	switch {
	case name == assets.Ramp:
		s.Jump()
	case s.Jumping() && jumpable[name]:
		// Airborne over it.
	default:
		s.SetDirection(DirCrash)
		s.onCrash()
	}
}
