// Package gesture turns one pointer's raw samples into rate-limited flick effects.
//
// A flick is a sudden change of pointer speed (not speed itself) over a qualifying
// region; a steady fast drag never fires. Effects of one track are spaced by a cooldown.
package gesture

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/bubbles/parameter"
)

// Sample is one pointer report
type Sample struct {
	PointerID int
	Pos       mgl64.Vec2
	Time      time.Time
}

// EffectRequest asks the renderer to spawn a visual effect at (X, Y)
type EffectRequest struct {
	X, Y float64
}

// RegionFunc reports whether a point lies inside the qualifying region
type RegionFunc func(p mgl64.Vec2) bool

// Config tunes the classifier
type Config struct {
	// AccelThreshold in px/s²; acceleration must strictly exceed it
	AccelThreshold float64
	// Cooldown between two effects of one track
	Cooldown time.Duration
	// MinInterval floors the elapsed time between samples
	MinInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		AccelThreshold: parameter.FlickAccelThreshold,
		Cooldown:       parameter.FlickCooldown,
		MinInterval:    parameter.MinSampleInterval,
	}
}

// Track is the state of the one active pointer
type Track struct {
	PointerID int
	Active    bool

	LastTime  time.Time
	LastPos   mgl64.Vec2
	LastSpeed float64 // px/s

	// LastTrigger is meaningful only once Triggered is set
	LastTrigger time.Time
	Triggered   bool

	// Speed and Accel of the most recent sample, kept for diagnostics
	Speed float64
	Accel float64
}
