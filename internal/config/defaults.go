package config

import (
	_ "embed"
)

//go:embed defaults/ski.yaml
var defaultSkiYAML []byte

// DefaultSkiConfig returns the default ski configuration.
func DefaultSkiConfig() SkiConfig {
	return SkiConfig{
		Skier: SkierConfig{
			StartingSpeed:        10,
			DiagonalSpeedReducer: 1.4142,
		},
		Pursuer: PursuerConfig{
			StartingSpeed:        15,
			DiagonalSpeedReducer: 3.5,
			ProximityTolerance:   20,
			OffsetXRatio:         0.5,
			OffsetYRatio:         -0.5,
		},
		Timer: TimerConfig{
			IntervalMs:   10,
			ChaseStartAt: 200,
		},
		Animation: AnimationConfig{
			FrameMs: 200,
		},
		Obstacles: ObstacleConfig{
			NewObstacleChance: 8,
			MinGap:            50,
			InitialMin:        5,
			InitialMax:        7,
			EdgeMargin:        50,
		},
	}
}
