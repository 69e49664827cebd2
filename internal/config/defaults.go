package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the original game balance.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Field: FieldConfig{
			Width:     705,
			Height:    606,
			PlayWidth: 505,
		},
		Player: PlayerConfig{
			StartX:  202,
			StartY:  400,
			MinX:    2,
			MaxX:    402,
			GoalY:   60,
			StepX:   100,
			StepY:   85,
			Width:   101,
			OffsetX: 10,
		},
		Enemies: EnemyConfig{
			Lanes:     []float64{60, 60, 145, 145, 230, 230},
			Width:     101,
			MinSpeed:  200,
			MaxSpeed:  400,
			SpawnMinX: -500,
			SpawnMaxX: -50,
		},
		Gems: GemConfig{
			Xs:      []float64{2, 102, 202, 302, 402},
			Ys:      []float64{230, 145, 60},
			HiddenX: -100,
			HiddenY: -100,
		},
		Scoring: ScoringConfig{
			Crossing:  5,
			Gem:       5,
			Collision: 5,
			Timeout:   10,
		},
		Timer: TimerConfig{
			Seconds: 10,
		},
		Loop: LoopConfig{
			MaxDelta: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `crossing config dump`.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
