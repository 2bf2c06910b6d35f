package ski

import "github.com/vovakirdan/tui-ski/internal/core"

// Viewport is the visible window of the world, a fixed-size box that
// follows the skier. The previous window is kept for obstacle spawning.
type Viewport struct {
	size     core.Extent
	current  core.Rect
	previous core.Rect
	ticks    int // number of Recenter calls, capped at 2
}

// NewViewport creates a viewport of the given size in world units.
func NewViewport(size core.Extent) Viewport {
	return Viewport{size: size}
}

// Size returns the viewport dimensions.
func (v *Viewport) Size() core.Extent {
	return v.size
}

// Recenter moves the window onto center, keeping the old one as previous.
func (v *Viewport) Recenter(center core.Vec) {
	v.previous = v.current
	v.current = core.RectFromCenter(center, v.size)
	if v.ticks < 2 {
		v.ticks++
	}
}

// Current returns the window computed by the last Recenter.
func (v *Viewport) Current() core.Rect {
	return v.current
}

// Previous returns the window before the last Recenter. It reports false
// until Recenter has been called twice.
func (v *Viewport) Previous() (core.Rect, bool) {
	return v.previous, v.ticks >= 2
}
