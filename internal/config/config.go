// Package config provides YAML-based tuning for the ski game.
package config

import "time"

// SkiConfig contains all tuning for a ski session.
type SkiConfig struct {
	Skier     SkierConfig     `yaml:"skier"`
	Pursuer   PursuerConfig   `yaml:"pursuer"`
	Timer     TimerConfig     `yaml:"timer"`
	Animation AnimationConfig `yaml:"animation"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
}

// SkierConfig defines skier movement. Speeds are world units per frame.
type SkierConfig struct {
	StartingSpeed        float64 `yaml:"starting_speed"`
	DiagonalSpeedReducer float64 `yaml:"diagonal_speed_reducer"`
}

// PursuerConfig defines the rhino chase.
type PursuerConfig struct {
	StartingSpeed        float64 `yaml:"starting_speed"`
	DiagonalSpeedReducer float64 `yaml:"diagonal_speed_reducer"`
	ProximityTolerance   float64 `yaml:"proximity_tolerance"`
	OffsetXRatio         float64 `yaml:"offset_x_ratio"` // fraction of viewport width
	OffsetYRatio         float64 `yaml:"offset_y_ratio"` // fraction of viewport height
}

// TimerConfig defines the elapsed-time clock.
type TimerConfig struct {
	IntervalMs   int `yaml:"interval_ms"`
	ChaseStartAt int `yaml:"chase_start_at"` // clock ticks before the rhino gives chase
}

// AnimationConfig defines sprite sequence cadence.
type AnimationConfig struct {
	FrameMs int `yaml:"frame_ms"`
}

// ObstacleConfig defines obstacle field generation.
type ObstacleConfig struct {
	NewObstacleChance int     `yaml:"new_obstacle_chance"` // 1 in N frames spawns while moving
	MinGap            float64 `yaml:"min_gap"`             // minimum distance between obstacles on each axis
	InitialMin        int     `yaml:"initial_min"`
	InitialMax        int     `yaml:"initial_max"`
	EdgeMargin        float64 `yaml:"edge_margin"` // spawn distance beyond the viewport edge
}

// ClockInterval returns the clock tick as a duration.
func (c SkiConfig) ClockInterval() time.Duration {
	return time.Duration(c.Timer.IntervalMs) * time.Millisecond
}

// AnimationTicks returns how many clock ticks each animation frame lasts.
func (c SkiConfig) AnimationTicks() int {
	if c.Timer.IntervalMs <= 0 {
		return 1
	}
	n := c.Animation.FrameMs / c.Timer.IntervalMs
	if n < 1 {
		return 1
	}
	return n
}

// Normalize replaces out-of-range values with defaults.
func (c *SkiConfig) Normalize() {
	d := DefaultSkiConfig()

	if c.Skier.StartingSpeed <= 0 {
		c.Skier.StartingSpeed = d.Skier.StartingSpeed
	}
	if c.Skier.DiagonalSpeedReducer <= 0 {
		c.Skier.DiagonalSpeedReducer = d.Skier.DiagonalSpeedReducer
	}

	if c.Pursuer.StartingSpeed <= 0 {
		c.Pursuer.StartingSpeed = d.Pursuer.StartingSpeed
	}
	if c.Pursuer.DiagonalSpeedReducer <= 0 {
		c.Pursuer.DiagonalSpeedReducer = d.Pursuer.DiagonalSpeedReducer
	}
	if c.Pursuer.ProximityTolerance <= 0 {
		c.Pursuer.ProximityTolerance = d.Pursuer.ProximityTolerance
	}

	if c.Timer.IntervalMs <= 0 {
		c.Timer.IntervalMs = d.Timer.IntervalMs
	}
	if c.Timer.ChaseStartAt < 0 {
		c.Timer.ChaseStartAt = d.Timer.ChaseStartAt
	}
	if c.Animation.FrameMs <= 0 {
		c.Animation.FrameMs = d.Animation.FrameMs
	}

	if c.Obstacles.NewObstacleChance < 1 {
		c.Obstacles.NewObstacleChance = d.Obstacles.NewObstacleChance
	}
	if c.Obstacles.MinGap < 0 {
		c.Obstacles.MinGap = d.Obstacles.MinGap
	}
	if c.Obstacles.InitialMin < 0 {
		c.Obstacles.InitialMin = d.Obstacles.InitialMin
	}
	if c.Obstacles.InitialMax < c.Obstacles.InitialMin {
		c.Obstacles.InitialMax = c.Obstacles.InitialMin
	}
	if c.Obstacles.EdgeMargin < 0 {
		c.Obstacles.EdgeMargin = d.Obstacles.EdgeMargin
	}
}
