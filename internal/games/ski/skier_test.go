package ski

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

func newTestSkier(dir Direction) (*Skier, *int) {
	crashes := 0
	s := NewSkier(config.DefaultSkiConfig().Skier, 2, func() { crashes++ })
	s.SetDirection(dir)
	return s, &crashes
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestNewSkier(t *testing.T) {
	s, _ := newTestSkier(DirDown)
	if s.Position() != (core.Vec{}) {
		t.Errorf("start position = %v, expected origin", s.Position())
	}
	if s.Direction() != DirDown || s.AssetName() != assets.SkierDown {
		t.Errorf("start = %v/%s, expected Down/skierDown", s.Direction(), s.AssetName())
	}
	if s.Speed() != 10 {
		t.Errorf("Speed() = %v, expected 10", s.Speed())
	}
}

func TestTurnLeftAtEdgeSidesteps(t *testing.T) {
	for _, d := range []Direction{DirLeft, DirCrash} {
		t.Run(d.String(), func(t *testing.T) {
			s, _ := newTestSkier(d)
			s.TurnLeft()
			if s.Direction() != d {
				t.Errorf("direction = %v, expected unchanged %v", s.Direction(), d)
			}
			if s.Position() != (core.Vec{X: -10}) {
				t.Errorf("position = %v, expected (-10, 0)", s.Position())
			}
		})
	}
}

func TestTurnLeftSteps(t *testing.T) {
	for _, d := range []Direction{DirLeftDown, DirDown, DirRightDown, DirRight} {
		t.Run(d.String(), func(t *testing.T) {
			s, _ := newTestSkier(d)
			s.TurnLeft()
			if s.Direction() != d-1 {
				t.Errorf("direction = %v, expected %v", s.Direction(), d-1)
			}
			if s.AssetName() != directionAssets[d-1] {
				t.Errorf("asset = %s, expected %s", s.AssetName(), directionAssets[d-1])
			}
			if s.Position() != (core.Vec{}) {
				t.Errorf("turning should not move, got %v", s.Position())
			}
		})
	}
}

func TestTurnRightAtEdgeSidesteps(t *testing.T) {
	for _, d := range []Direction{DirRight, DirCrash} {
		t.Run(d.String(), func(t *testing.T) {
			s, _ := newTestSkier(d)
			s.TurnRight()
			if s.Direction() != d {
				t.Errorf("direction = %v, expected unchanged %v", s.Direction(), d)
			}
			if s.Position() != (core.Vec{X: 10}) {
				t.Errorf("position = %v, expected (10, 0)", s.Position())
			}
		})
	}
}

func TestTurnRightSteps(t *testing.T) {
	for _, d := range []Direction{DirLeft, DirLeftDown, DirDown, DirRightDown} {
		t.Run(d.String(), func(t *testing.T) {
			s, _ := newTestSkier(d)
			s.TurnRight()
			if s.Direction() != d+1 {
				t.Errorf("direction = %v, expected %v", s.Direction(), d+1)
			}
			if s.AssetName() != directionAssets[d+1] {
				t.Errorf("asset = %s, expected %s", s.AssetName(), directionAssets[d+1])
			}
		})
	}
}

func TestTurnUp(t *testing.T) {
	tests := []struct {
		dir  Direction
		want core.Vec
	}{
		{DirLeft, core.Vec{Y: -10}},
		{DirRight, core.Vec{Y: -10}},
		{DirCrash, core.Vec{}},
		{DirLeftDown, core.Vec{}},
		{DirDown, core.Vec{}},
		{DirRightDown, core.Vec{}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s, _ := newTestSkier(tt.dir)
			s.TurnUp()
			if s.Position() != tt.want {
				t.Errorf("position = %v, expected %v", s.Position(), tt.want)
			}
			if s.Direction() != tt.dir {
				t.Errorf("TurnUp changed direction to %v", s.Direction())
			}
		})
	}
}

func TestTurnDown(t *testing.T) {
	for _, d := range []Direction{DirCrash, DirLeft, DirRight, DirLeftDown} {
		s, _ := newTestSkier(d)
		s.TurnDown()
		if s.Direction() != DirDown {
			t.Errorf("TurnDown from %v = %v, expected Down", d, s.Direction())
		}
	}
}

func TestMove(t *testing.T) {
	diag := 10 / 1.4142
	tests := []struct {
		dir  Direction
		x, y float64
	}{
		{DirDown, 0, 10},
		{DirLeftDown, -diag, diag},
		{DirRightDown, diag, diag},
		{DirLeft, 0, 0},
		{DirRight, 0, 0},
		{DirCrash, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s, _ := newTestSkier(tt.dir)
			s.Move()
			p := s.Position()
			if !approx(p.X, tt.x) || !approx(p.Y, tt.y) {
				t.Errorf("position = %v, expected (%.3f, %.3f)", p, tt.x, tt.y)
			}
		})
	}

	// LeftDown from the origin lands near (-7.07, 7.07).
	s, _ := newTestSkier(DirLeftDown)
	s.Move()
	if p := s.Position(); math.Abs(p.X+7.07) > 0.01 || math.Abs(p.Y-7.07) > 0.01 {
		t.Errorf("LeftDown move = %v, expected about (-7.07, 7.07)", p)
	}
}

func TestSetDirectionRejectsInvalid(t *testing.T) {
	s, _ := newTestSkier(DirDown)
	for _, d := range []Direction{-1, 6, 42} {
		if s.SetDirection(d) {
			t.Errorf("SetDirection(%d) accepted", d)
		}
	}
	if s.Direction() != DirDown {
		t.Errorf("direction = %v, expected Down", s.Direction())
	}
}

func TestJumpSequence(t *testing.T) {
	s, _ := newTestSkier(DirRightDown)
	s.Jump()

	if !s.Jumping() {
		t.Fatal("Jump() should set jumping")
	}
	if s.AssetName() != assets.SkierRightDown {
		t.Errorf("before first frame asset = %s, expected direction asset", s.AssetName())
	}

	// Cadence is two clock ticks per frame.
	want := []string{assets.SkierJump1, assets.SkierJump2, assets.SkierJump3, assets.SkierJump4}
	for i, frame := range want {
		s.Animate()
		s.Animate()
		if s.AssetName() != frame {
			t.Errorf("frame %d = %s, expected %s", i, s.AssetName(), frame)
		}
		if i == 1 {
			// Jumping again mid-air does not restart the sequence.
			s.Jump()
		}
	}

	s.Animate()
	s.Animate()
	if s.Jumping() {
		t.Error("jump should be over after the last frame")
	}
	if s.AssetName() != assets.SkierRightDown {
		t.Errorf("after jump asset = %s, expected %s", s.AssetName(), assets.SkierRightDown)
	}
}

func TestMoveWhileJumping(t *testing.T) {
	s, _ := newTestSkier(DirDown)
	s.Jump()
	s.Move()
	if s.Position() != (core.Vec{Y: 10}) {
		t.Errorf("position = %v, expected (0, 10)", s.Position())
	}
}

func TestCheckObstacleCollision(t *testing.T) {
	tests := []struct {
		name        string
		obstacle    string // empty for no collision
		jumping     bool
		wantCrash   bool
		wantJumping bool
	}{
		{"no collision", "", false, false, false},
		{"ramp starts jump", assets.Ramp, false, false, true},
		{"ramp while jumping", assets.Ramp, true, false, true},
		{"rock1 while jumping", assets.Rock1, true, false, true},
		{"rock2 while jumping", assets.Rock2, true, false, true},
		{"rock1 on the ground", assets.Rock1, false, true, false},
		{"rock2 on the ground", assets.Rock2, false, true, false},
		{"tree on the ground", assets.Tree, false, true, false},
		{"tree while jumping", assets.Tree, true, true, true},
		{"tree cluster while jumping", assets.TreeCluster, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, crashes := newTestSkier(DirDown)
			if tt.jumping {
				s.Jump()
			}

			field := &fakeField{}
			if tt.obstacle != "" {
				field = hitting(tt.obstacle)
			}
			s.CheckObstacleCollision(field, fakeProvider{})

			crashed := *crashes > 0
			if crashed != tt.wantCrash {
				t.Errorf("crashed = %v, expected %v", crashed, tt.wantCrash)
			}
			if tt.wantCrash && s.Direction() != DirCrash {
				t.Errorf("direction = %v, expected Crash", s.Direction())
			}
			if !tt.wantCrash && s.Direction() != DirDown {
				t.Errorf("direction = %v, expected Down", s.Direction())
			}
			if s.Jumping() != tt.wantJumping {
				t.Errorf("jumping = %v, expected %v", s.Jumping(), tt.wantJumping)
			}
		})
	}
}

func TestSkierBounds(t *testing.T) {
	s, _ := newTestSkier(DirDown)
	s.pos = core.Vec{X: 100, Y: 50}
	got := s.Bounds(testExtent)
	want := core.Rect{Left: 88, Top: 34, Right: 112, Bottom: 42}
	if got != want {
		t.Errorf("Bounds() = %+v, expected %+v", got, want)
	}
}
