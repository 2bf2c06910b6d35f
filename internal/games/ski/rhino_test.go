package ski

import (
	"testing"

	"github.com/vovakirdan/tui-ski/internal/assets"
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

func newChasingRhino(pos core.Vec) (*Rhino, *int) {
	catches := 0
	r := NewRhino(config.DefaultSkiConfig().Pursuer, core.Vec{X: 5000, Y: -5000}, 2, func() { catches++ })
	r.StartChase(pos, core.Vec{})
	return r, &catches
}

func TestRhinoStartsIdle(t *testing.T) {
	r := NewRhino(config.DefaultSkiConfig().Pursuer, core.Vec{X: 320, Y: -192}, 2, nil)
	if r.Chasing() || r.Caught() {
		t.Error("new rhino should be idle")
	}
	if r.Position() != (core.Vec{X: 320, Y: -192}) {
		t.Errorf("position = %v, expected (320, -192)", r.Position())
	}

	// Idle rhinos ignore the target.
	r.ChaseTarget(core.Vec{})
	if r.Position() != (core.Vec{X: 320, Y: -192}) {
		t.Errorf("idle rhino moved to %v", r.Position())
	}
}

func TestStartChaseTeleports(t *testing.T) {
	r := NewRhino(config.DefaultSkiConfig().Pursuer, core.Vec{}, 2, nil)
	r.StartChase(core.Vec{X: 100, Y: 200}, core.Vec{X: 320, Y: -192})

	if !r.Chasing() {
		t.Fatal("StartChase should set chasing")
	}
	if r.Position() != (core.Vec{X: 420, Y: 8}) {
		t.Errorf("position = %v, expected (420, 8)", r.Position())
	}

	// A second start does not teleport again.
	r.StartChase(core.Vec{}, core.Vec{})
	if r.Position() != (core.Vec{X: 420, Y: 8}) {
		t.Errorf("restarted chase moved rhino to %v", r.Position())
	}
}

func TestRunCycle(t *testing.T) {
	r, _ := newChasingRhino(core.Vec{})

	want := []string{
		assets.RhinoRunLeft1, // before the first frame
		assets.RhinoRunLeft2,
		assets.RhinoRunLeft1,
		assets.RhinoRunLeft2,
	}
	for i, w := range want {
		if i > 0 {
			r.Animate()
			r.Animate()
		}
		if r.AssetName() != w {
			t.Errorf("step %d asset = %s, expected %s", i, r.AssetName(), w)
		}
	}
}

func TestChaseVertical(t *testing.T) {
	tests := []struct {
		name    string
		targetY float64
		wantY   float64
	}{
		{"snap below", 15, 15},
		{"snap above", -19, -19},
		{"snap exact", 0, 0},
		{"step down", 20, 15},
		{"step down far", 100, 15},
		{"step up", -100, -15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newChasingRhino(core.Vec{})
			r.ChaseTarget(core.Vec{Y: tt.targetY})
			if got := r.Position().Y; got != tt.wantY {
				t.Errorf("y = %v, expected %v", got, tt.wantY)
			}
		})
	}
}

func TestChaseHorizontal(t *testing.T) {
	step := 15 / 3.5

	tests := []struct {
		name    string
		targetX float64
		wantX   float64
	}{
		{"left", -100, -step},
		{"right", 100, step},
		{"close", 2, 2},
		{"same", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newChasingRhino(core.Vec{})
			r.ChaseTarget(core.Vec{X: tt.targetX})
			if got := r.Position().X; !approx(got, tt.wantX) {
				t.Errorf("x = %v, expected %v", got, tt.wantX)
			}
		})
	}
}

func TestChaseConverges(t *testing.T) {
	r, _ := newChasingRhino(core.Vec{X: 320, Y: -192})
	target := core.Vec{X: 0, Y: 0}
	for i := 0; i < 200; i++ {
		r.ChaseTarget(target)
	}
	if r.Position() != target {
		t.Errorf("after 200 ticks rhino at %v, expected %v", r.Position(), target)
	}
}

func TestCheckCaught(t *testing.T) {
	s := NewSkier(config.DefaultSkiConfig().Skier, 2, nil)

	t.Run("apart", func(t *testing.T) {
		r, catches := newChasingRhino(core.Vec{X: 500})
		if r.CheckCaught(fakeProvider{}, s) {
			t.Error("rhino far away should not catch")
		}
		if *catches != 0 || r.Caught() || !r.Chasing() {
			t.Error("flags changed without a catch")
		}
	})

	t.Run("overlap", func(t *testing.T) {
		r, catches := newChasingRhino(core.Vec{X: 5})
		if !r.CheckCaught(fakeProvider{}, s) {
			t.Fatal("overlapping rhino should catch")
		}
		if !r.Caught() || r.Chasing() {
			t.Errorf("caught=%v chasing=%v, expected true/false", r.Caught(), r.Chasing())
		}
		if *catches != 1 {
			t.Errorf("onCatch fired %d times, expected 1", *catches)
		}
	})

	t.Run("idle rhino never catches", func(t *testing.T) {
		r := NewRhino(config.DefaultSkiConfig().Pursuer, core.Vec{}, 2, nil)
		if r.CheckCaught(fakeProvider{}, s) {
			t.Error("idle rhino caught the skier")
		}
	})
}

func TestCaughtIsTerminal(t *testing.T) {
	s := NewSkier(config.DefaultSkiConfig().Skier, 2, nil)
	r, catches := newChasingRhino(core.Vec{})
	r.CheckCaught(fakeProvider{}, s)
	pos := r.Position()

	r.ChaseTarget(core.Vec{X: 1000, Y: 1000})
	r.CheckCaught(fakeProvider{}, s)
	r.StartChase(core.Vec{X: 50}, core.Vec{X: 50})

	if !r.Caught() || r.Chasing() {
		t.Errorf("caught=%v chasing=%v after further calls", r.Caught(), r.Chasing())
	}
	if r.Position() != pos {
		t.Errorf("caught rhino moved to %v", r.Position())
	}
	if *catches != 1 {
		t.Errorf("onCatch fired %d times, expected 1", *catches)
	}
}

func TestEatSequence(t *testing.T) {
	s := NewSkier(config.DefaultSkiConfig().Skier, 2, nil)
	r, _ := newChasingRhino(core.Vec{})
	r.CheckCaught(fakeProvider{}, s)

	if r.AssetName() != assets.RhinoDefault {
		t.Errorf("asset before first eat frame = %s, expected %s", r.AssetName(), assets.RhinoDefault)
	}

	for i, frame := range rhinoEatFrames {
		r.Animate()
		r.Animate()
		if r.AssetName() != frame {
			t.Errorf("eat frame %d = %s, expected %s", i, r.AssetName(), frame)
		}
	}

	r.Animate()
	r.Animate()
	if r.AssetName() != assets.RhinoDefault {
		t.Errorf("asset after eating = %s, expected %s", r.AssetName(), assets.RhinoDefault)
	}
}
