// Package config assembles runtime settings from defaults, an optional YAML file,
// an optional .env file and BUBBLES_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bubbles/audio"
	"github.com/lixenwraith/bubbles/gesture"
	"github.com/lixenwraith/bubbles/parameter"
	"github.com/lixenwraith/bubbles/physics"
)

// DefaultLabels are the skills shown as bubbles
var DefaultLabels = []string{
	"Python",
	"R",
	"Web Development",
	"NCBI",
	"BLAST",
	"Galaxy",
	"Wet-lab",
}

type PhysicsConfig struct {
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Damping       float64 `yaml:"damping"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

type GestureConfig struct {
	AccelThreshold float64       `yaml:"accel_threshold"`
	Cooldown       time.Duration `yaml:"cooldown"`
}

// Config is the full runtime configuration
type Config struct {
	Labels []string `yaml:"labels"`

	// CellWidth and CellHeight map terminal cells to simulation pixels
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`

	FrameRate int `yaml:"frame_rate"`
	// Seed for body placement; 0 means derive from the clock at startup
	Seed  uint64 `yaml:"seed"`
	Debug bool   `yaml:"debug"`

	Physics PhysicsConfig     `yaml:"physics"`
	Gesture GestureConfig     `yaml:"gesture"`
	Audio   audio.AudioConfig `yaml:"audio"`
}

func Default() *Config {
	return &Config{
		Labels:     append([]string(nil), DefaultLabels...),
		CellWidth:  parameter.CellWidth,
		CellHeight: parameter.CellHeight,
		FrameRate:  parameter.FrameRate,
		Physics: PhysicsConfig{
			MinRadius:     parameter.BubbleMinRadius,
			MaxRadius:     parameter.BubbleMaxRadius,
			MinSpeed:      parameter.BubbleMinSpeed,
			MaxSpeed:      parameter.BubbleMaxSpeed,
			Damping:       parameter.BubbleDamping,
			MaxFrameDelta: parameter.MaxFrameDelta,
		},
		Gesture: GestureConfig{
			AccelThreshold: parameter.FlickAccelThreshold,
			Cooldown:       parameter.FlickCooldown,
		},
		Audio: *audio.DefaultAudioConfig(),
	}
}

// Load builds the configuration; empty paths are skipped and a missing .env file is not an error
func Load(configPath, envPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := cfg.loadFile(configPath); err != nil {
			return nil, err
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays YAML onto the current values; keys absent from the file keep their defaults
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BUBBLES_LABELS"); v != "" {
		var labels []string
		for _, l := range strings.Split(v, ",") {
			if l = strings.TrimSpace(l); l != "" {
				labels = append(labels, l)
			}
		}
		if len(labels) > 0 {
			c.Labels = labels
		}
	}

	if v := os.Getenv("BUBBLES_FRAME_RATE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.FrameRate = val
		}
	}

	if v := os.Getenv("BUBBLES_SEED"); v != "" {
		if val, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = val
		}
	}

	if v := os.Getenv("BUBBLES_DEBUG"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Debug = val
		}
	}

	if v := os.Getenv("BUBBLES_ACCEL_THRESHOLD"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			c.Gesture.AccelThreshold = val
		}
	}

	// Cooldown in milliseconds
	if v := os.Getenv("BUBBLES_COOLDOWN_MS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Gesture.Cooldown = time.Duration(val) * time.Millisecond
		}
	}

	audio.ApplyEnv(&c.Audio)
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case len(c.Labels) == 0:
		return errors.New("config: at least one label is required")
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("config: cell size must be positive, got %vx%v", c.CellWidth, c.CellHeight)
	case c.FrameRate <= 0:
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.FrameRate)
	case c.Physics.MinRadius <= 0 || c.Physics.MinRadius > c.Physics.MaxRadius:
		return fmt.Errorf("config: invalid radius range [%v, %v]", c.Physics.MinRadius, c.Physics.MaxRadius)
	case c.Physics.MinSpeed < 0 || c.Physics.MinSpeed > c.Physics.MaxSpeed:
		return fmt.Errorf("config: invalid speed range [%v, %v]", c.Physics.MinSpeed, c.Physics.MaxSpeed)
	case c.Physics.Damping <= 0 || c.Physics.Damping > 1:
		return fmt.Errorf("config: damping must be in (0, 1], got %v", c.Physics.Damping)
	case c.Physics.MaxFrameDelta <= 0:
		return fmt.Errorf("config: max_frame_delta must be positive, got %v", c.Physics.MaxFrameDelta)
	case c.Gesture.AccelThreshold < 0:
		return fmt.Errorf("config: accel_threshold must not be negative, got %v", c.Gesture.AccelThreshold)
	case c.Gesture.Cooldown < 0:
		return fmt.Errorf("config: cooldown must not be negative, got %v", c.Gesture.Cooldown)
	}
	return nil
}

// Tuning converts the physics section for the registry
func (c *Config) Tuning() physics.Tuning {
	t := physics.DefaultTuning()
	t.MinRadius = c.Physics.MinRadius
	t.MaxRadius = c.Physics.MaxRadius
	t.MinSpeed = c.Physics.MinSpeed
	t.MaxSpeed = c.Physics.MaxSpeed
	t.Damping = c.Physics.Damping
	t.MaxFrameDelta = c.Physics.MaxFrameDelta
	return t
}

// GestureTuning converts the gesture section for the classifier
func (c *Config) GestureTuning() gesture.Config {
	g := gesture.DefaultConfig()
	g.AccelThreshold = c.Gesture.AccelThreshold
	g.Cooldown = c.Gesture.Cooldown
	return g
}

// FrameInterval returns the host tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
