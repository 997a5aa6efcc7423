package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/bubbles/parameter"
)

// AudioConfig controls the effect cue
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	PopVolume    float64 `yaml:"pop_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		PopVolume:    parameter.AudioPopVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// ApplyEnv overrides cfg from BUBBLES_AUDIO_* environment variables
// Unparseable values are ignored, volumes are clamped to [0, 1]
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv("BUBBLES_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("BUBBLES_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if volume := os.Getenv("BUBBLES_POP_VOLUME"); volume != "" {
		if val, err := strconv.ParseFloat(volume, 64); err == nil {
			cfg.PopVolume = clampVolume(val)
		}
	}

	if sampleRate := os.Getenv("BUBBLES_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
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
