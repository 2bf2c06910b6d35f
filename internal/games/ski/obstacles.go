package ski

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// obstacleKinds are the asset identifiers an obstacle can take.
var obstacleKinds = []string{
	assets.Tree,
	assets.TreeCluster,
	assets.Rock1,
	assets.Rock2,
	assets.Ramp,
}

// openPositionAttempts bounds the search for a free spot; a placement that
// finds none is skipped.
const openPositionAttempts = 10

// Obstacle is a static entity on the slope.
type Obstacle struct {
	pos  core.Vec
	name string
}

// NewObstacle creates an obstacle of the given kind at pos.
func NewObstacle(name string, pos core.Vec) Obstacle {
	return Obstacle{pos: pos, name: name}
}

// Position returns the obstacle's coordinates.
func (o Obstacle) Position() core.Vec {
	return o.pos
}

// AssetName returns the obstacle kind.
func (o Obstacle) AssetName() string {
	return o.name
}

// Bounds returns the obstacle's hit box for the given asset extent.
func (o Obstacle) Bounds(ext core.Extent) core.Rect {
	return core.HitBox(o.pos, ext)
}

// Render draws the obstacle.
func (o Obstacle) Render(dst *core.Screen, provider AssetProvider) {
	renderEntity(dst, provider, o)
}

// ObstacleField owns the obstacles on the slope.
type ObstacleField interface {
	// PlaceInitial seeds the slope below the starting viewport.
	PlaceInitial()
	// UpdateForViewport spawns obstacles along the edges the viewport moved
	// toward and retires the ones left far behind.
	UpdateForViewport(current, previous core.Rect)
	// DetectCollision returns the first obstacle whose hit box intersects bounds.
	DetectCollision(bounds core.Rect) (Obstacle, bool)
	// RenderAll draws every obstacle.
	RenderAll(dst *core.Screen, provider AssetProvider)
}

// ObstacleManager is the seeded ObstacleField used by the game.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstacleConfig
	provider  AssetProvider
	size      core.Extent // viewport size
}

// NewObstacleManager creates an empty field. The viewport size drives initial
// placement and retirement distance.
func NewObstacleManager(seed int64, cfg config.ObstacleConfig, size core.Extent, provider AssetProvider) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 32),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		provider:  provider,
		size:      size,
	}
}

// Obstacles returns a copy of the current obstacles, ordered top to bottom.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return append([]Obstacle(nil), m.obstacles...)
}

// Len returns the number of obstacles on the field.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

// PlaceInitial scatters obstacles in the lower part of the starting viewport,
// which is centered on the world origin.
func (m *ObstacleManager) PlaceInitial() {
	start := core.RectFromCenter(core.Vec{}, m.size)
	margin := m.cfg.EdgeMargin

	n := m.cfg.InitialMin
	if spread := m.cfg.InitialMax - m.cfg.InitialMin; spread > 0 {
		n += m.rng.Intn(spread + 1)
	}

	minY := m.size.Height / 8
	for i := 0; i < n; i++ {
		m.placeRandom(start.Left-margin, start.Right+margin, minY, start.Bottom+margin)
	}
	m.sortByY()
}

// UpdateForViewport retires obstacles more than one viewport away and, with
// a 1 in NewObstacleChance roll, spawns just outside the edges that moved.
func (m *ObstacleManager) UpdateForViewport(current, previous core.Rect) {
	m.retire(current)

	if m.rng.Intn(m.cfg.NewObstacleChance) != 0 {
		return
	}

	margin := m.cfg.EdgeMargin
	placed := false

	switch {
	case current.Left < previous.Left:
		placed = m.placeRandom(current.Left-margin, current.Left, current.Top, current.Bottom) || placed
	case current.Right > previous.Right:
		placed = m.placeRandom(current.Right, current.Right+margin, current.Top, current.Bottom) || placed
	}

	switch {
	case current.Top < previous.Top:
		placed = m.placeRandom(current.Left, current.Right, current.Top-margin, current.Top) || placed
	case current.Bottom > previous.Bottom:
		placed = m.placeRandom(current.Left, current.Right, current.Bottom, current.Bottom+margin) || placed
	}

	if placed {
		m.sortByY()
	}
}

// DetectCollision returns the first obstacle whose hit box intersects bounds.
func (m *ObstacleManager) DetectCollision(bounds core.Rect) (Obstacle, bool) {
	for _, o := range m.obstacles {
		if core.Intersects(entityBounds(m.provider, o), bounds) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// RenderAll draws every obstacle.
func (m *ObstacleManager) RenderAll(dst *core.Screen, provider AssetProvider) {
	for _, o := range m.obstacles {
		o.Render(dst, provider)
	}
}

// placeRandom adds a random obstacle inside the given area if a spot at least
// MinGap away from every other obstacle can be found.
func (m *ObstacleManager) placeRandom(minX, maxX, minY, maxY float64) bool {
	pos, ok := m.openPosition(minX, maxX, minY, maxY)
	if !ok {
		return false
	}
	kind := obstacleKinds[m.rng.Intn(len(obstacleKinds))]
	m.obstacles = append(m.obstacles, NewObstacle(kind, pos))
	return true
}

func (m *ObstacleManager) openPosition(minX, maxX, minY, maxY float64) (core.Vec, bool) {
	for attempt := 0; attempt < openPositionAttempts; attempt++ {
		p := core.Vec{
			X: minX + m.rng.Float64()*(maxX-minX),
			Y: minY + m.rng.Float64()*(maxY-minY),
		}
		if !m.crowded(p) {
			return p, true
		}
	}
	return core.Vec{}, false
}

// crowded reports whether p is within MinGap of an existing obstacle on both axes.
func (m *ObstacleManager) crowded(p core.Vec) bool {
	gap := m.cfg.MinGap
	for _, o := range m.obstacles {
		if p.X > o.pos.X-gap && p.X < o.pos.X+gap && p.Y > o.pos.Y-gap && p.Y < o.pos.Y+gap {
			return true
		}
	}
	return false
}

// retire drops obstacles outside the viewport grown by its own size on every side.
func (m *ObstacleManager) retire(current core.Rect) {
	keep := current.Expand(m.size.Width, m.size.Height)
	valid := m.obstacles[:0]
	for _, o := range m.obstacles {
		if keep.Contains(o.pos) {
			valid = append(valid, o)
		}
	}
	m.obstacles = valid
}

func (m *ObstacleManager) sortByY() {
	sort.SliceStable(m.obstacles, func(i, j int) bool {
		return m.obstacles[i].pos.Y < m.obstacles[j].pos.Y
	})
}
