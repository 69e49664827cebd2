package audio

import (
	"os"
	"strconv"
)

// Config holds audio settings.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	MusicVolume  float64 // Relative to master
	EffectVolume float64 // Relative to master
	SampleRate   int
}

// DefaultConfig returns audio enabled at a moderate level.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		MusicVolume:  0.35,
		EffectVolume: 0.8,
		SampleRate:   44100,
	}
}

// LoadConfig reads overrides from CROSSING_AUDIO_ENABLED (bool) and
// CROSSING_MASTER_VOLUME (0-100). Unparseable values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("CROSSING_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("CROSSING_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
