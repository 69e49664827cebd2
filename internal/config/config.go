// Package config provides YAML-based game configuration loading and
// difficulty presets for the crossing game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Validate for configurations the game cannot run with.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// CrossingConfig contains all configuration for the crossing game.
// Distances are logical pixels of the original 705×606 field; times are seconds.
type CrossingConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Gems    GemConfig     `yaml:"gems"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timer   TimerConfig   `yaml:"timer"`
	Loop    LoopConfig    `yaml:"loop"`
}

// FieldConfig defines the play-field geometry.
type FieldConfig struct {
	Width     float64 `yaml:"width"`      // Whole canvas, including the HUD strip
	Height    float64 `yaml:"height"`
	PlayWidth float64 `yaml:"play_width"` // Right bound for enemies; the HUD occupies the rest
}

// PlayerConfig defines player geometry and movement.
type PlayerConfig struct {
	StartX  float64 `yaml:"start_x"`
	StartY  float64 `yaml:"start_y"`
	MinX    float64 `yaml:"min_x"`
	MaxX    float64 `yaml:"max_x"`
	GoalY   float64 `yaml:"goal_y"`
	StepX   float64 `yaml:"step_x"`
	StepY   float64 `yaml:"step_y"`
	Width   float64 `yaml:"width"`
	OffsetX float64 `yaml:"offset_x"` // Transparent margin between sprite edge and hero pixels
}

// EnemyConfig defines the enemy lanes and respawn ranges.
type EnemyConfig struct {
	Lanes     []float64 `yaml:"lanes"` // One enemy per entry, at that y
	Width     float64   `yaml:"width"`
	MinSpeed  int       `yaml:"min_speed"`
	MaxSpeed  int       `yaml:"max_speed"`
	SpawnMinX int       `yaml:"spawn_min_x"`
	SpawnMaxX int       `yaml:"spawn_max_x"`
}

// GemConfig defines the discrete gem slots and the off-field sentinel.
type GemConfig struct {
	Xs      []float64 `yaml:"xs"`
	Ys      []float64 `yaml:"ys"`
	HiddenX float64   `yaml:"hidden_x"`
	HiddenY float64   `yaml:"hidden_y"`
}

// ScoringConfig defines score deltas. Penalties are positive numbers that get subtracted.
type ScoringConfig struct {
	Crossing  int `yaml:"crossing"`
	Gem       int `yaml:"gem"`
	Collision int `yaml:"collision"`
	Timeout   int `yaml:"timeout"`
}

// TimerConfig defines the per-crossing countdown.
type TimerConfig struct {
	Seconds float64 `yaml:"seconds"`
}

// LoopConfig defines frame timing.
type LoopConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // Upper bound for dt; 0 disables the clamp
}

// Validate checks the configuration for values the game cannot run with.
func (c CrossingConfig) Validate() error {
	switch {
	case c.Field.PlayWidth <= 0:
		return fmt.Errorf("%w: field.play_width must be positive", ErrInvalidConfig)
	case c.Player.MinX > c.Player.MaxX:
		return fmt.Errorf("%w: player.min_x greater than player.max_x", ErrInvalidConfig)
	case c.Player.GoalY >= c.Player.StartY:
		return fmt.Errorf("%w: player.goal_y must be above player.start_y", ErrInvalidConfig)
	case c.Player.StepX <= 0 || c.Player.StepY <= 0:
		return fmt.Errorf("%w: player steps must be positive", ErrInvalidConfig)
	case c.Player.StartX < c.Player.MinX || c.Player.StartX > c.Player.MaxX:
		return fmt.Errorf("%w: player.start_x outside [min_x, max_x]", ErrInvalidConfig)
	case !onGrid(c.Player.StartX-c.Player.MinX, c.Player.StepX):
		return fmt.Errorf("%w: player.start_x is not a whole number of step_x from min_x", ErrInvalidConfig)
	case !onGrid(c.Player.StartY-c.Player.GoalY, c.Player.StepY):
		return fmt.Errorf("%w: player.start_y - goal_y is not a multiple of step_y", ErrInvalidConfig)
	case len(c.Enemies.Lanes) == 0:
		return fmt.Errorf("%w: enemies.lanes is empty", ErrInvalidConfig)
	case c.Enemies.MinSpeed > c.Enemies.MaxSpeed:
		return fmt.Errorf("%w: enemies.min_speed greater than enemies.max_speed", ErrInvalidConfig)
	case c.Enemies.SpawnMinX > c.Enemies.SpawnMaxX:
		return fmt.Errorf("%w: enemies.spawn_min_x greater than enemies.spawn_max_x", ErrInvalidConfig)
	case len(c.Gems.Xs) == 0 || len(c.Gems.Ys) == 0:
		return fmt.Errorf("%w: gem slot set is empty", ErrInvalidConfig)
	case c.Timer.Seconds <= 0:
		return fmt.Errorf("%w: timer.seconds must be positive", ErrInvalidConfig)
	case c.Loop.MaxDelta < 0:
		return fmt.Errorf("%w: loop.max_delta must not be negative", ErrInvalidConfig)
	}
	return nil
}

// onGrid reports whether d is a whole number of steps.
func onGrid(d, step float64) bool {
	const eps = 1e-9
	r := math.Mod(d, step)
	return r < eps || step-r < eps
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
