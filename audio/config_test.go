package audio

import "testing"

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected MasterVolume=0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected SampleRate=48000, got %d", cfg.SampleRate)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("BUBBLES_AUDIO_ENABLED", "false")
	t.Setenv("BUBBLES_MASTER_VOLUME", "150")
	t.Setenv("BUBBLES_POP_VOLUME", "0.25")
	t.Setenv("BUBBLES_SAMPLE_RATE", "44100")

	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)

	if cfg.Enabled {
		t.Error("Expected Enabled=false from env")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected MasterVolume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.PopVolume != 0.25 {
		t.Errorf("Expected PopVolume=0.25, got %f", cfg.PopVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected SampleRate=44100, got %d", cfg.SampleRate)
	}
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("BUBBLES_AUDIO_ENABLED", "maybe")
	t.Setenv("BUBBLES_MASTER_VOLUME", "loud")
	t.Setenv("BUBBLES_SAMPLE_RATE", "-1")

	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)

	def := DefaultAudioConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults to survive invalid env, got %+v", cfg)
	}
}
