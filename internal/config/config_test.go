package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Errorf("embedded YAML and DefaultCrossingConfig() disagree:\n%+v\n%+v", cfg, DefaultCrossingConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultCrossingConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossingConfig)
	}{
		{"zero play width", func(c *CrossingConfig) { c.Field.PlayWidth = 0 }},
		{"inverted x bounds", func(c *CrossingConfig) { c.Player.MinX = 500 }},
		{"goal below start", func(c *CrossingConfig) { c.Player.GoalY = 500 }},
		{"zero step", func(c *CrossingConfig) { c.Player.StepY = 0 }},
		{"start left of min_x", func(c *CrossingConfig) { c.Player.StartX = -98 }},
		{"start right of max_x", func(c *CrossingConfig) { c.Player.StartX = 502 }},
		{"start off the column grid", func(c *CrossingConfig) { c.Player.StartX = 250 }},
		{"start off the row grid", func(c *CrossingConfig) { c.Player.StartY = 420 }},
		{"goal off the row grid", func(c *CrossingConfig) { c.Player.GoalY = 50 }},
		{"no lanes", func(c *CrossingConfig) { c.Enemies.Lanes = nil }},
		{"inverted speeds", func(c *CrossingConfig) { c.Enemies.MinSpeed = 900 }},
		{"inverted spawn", func(c *CrossingConfig) { c.Enemies.SpawnMinX = 0 }},
		{"no gem slots", func(c *CrossingConfig) { c.Gems.Ys = nil }},
		{"zero timer", func(c *CrossingConfig) { c.Timer.Seconds = 0 }},
		{"negative max delta", func(c *CrossingConfig) { c.Loop.MaxDelta = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateAcceptsShiftedGrid(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Player.StartX = 402
	cfg.Player.StartY = 315
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected a start on the grid to be valid", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("timer:\n  seconds: 20\nenemies:\n  lanes: [145]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Timer.Seconds != 20 {
		t.Errorf("timer.seconds = %v, expected 20", cfg.Timer.Seconds)
	}
	if len(cfg.Enemies.Lanes) != 1 || cfg.Enemies.Lanes[0] != 145 {
		t.Errorf("enemies.lanes = %v, expected [145]", cfg.Enemies.Lanes)
	}
	// Untouched keys keep their defaults
	if cfg.Player.StartX != 202 {
		t.Errorf("player.start_x = %v, expected default 202", cfg.Player.StartX)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("timer: [unterminated")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}

func TestLoadCrossingCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  gem: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing failed: %v", err)
	}
	if cfg.Scoring.Gem != 50 {
		t.Errorf("scoring.gem = %d, expected 50", cfg.Scoring.Gem)
	}
}

func TestLoadCrossingCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCrossing(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timer:\n  seconds: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultCrossingConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultCrossingConfig()) {
		t.Error("normal preset must keep the original balance")
	}

	easy := DefaultCrossingConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Enemies.MaxSpeed >= normal.Enemies.MaxSpeed {
		t.Errorf("easy max speed %d should be below normal %d", easy.Enemies.MaxSpeed, normal.Enemies.MaxSpeed)
	}
	if easy.Timer.Seconds <= normal.Timer.Seconds {
		t.Errorf("easy timer %v should be longer than normal %v", easy.Timer.Seconds, normal.Timer.Seconds)
	}

	hard := DefaultCrossingConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Enemies.MinSpeed <= normal.Enemies.MinSpeed {
		t.Errorf("hard min speed %d should be above normal %d", hard.Enemies.MinSpeed, normal.Enemies.MinSpeed)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}
}
