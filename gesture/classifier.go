package gesture

import (
	"math"

	"github.com/lixenwraith/bubbles/vmath"
)

// Classifier tracks a single pointer and decides when a flick fires
// Not safe for concurrent use; samples must arrive in order from one goroutine
type Classifier struct {
	cfg   Config
	track Track
}

func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// BeginTrack starts tracking s.PointerID from rest
// Clears the previous trigger so the first qualifying sample may fire immediately
func (c *Classifier) BeginTrack(s Sample) {
	c.track = Track{
		PointerID: s.PointerID,
		Active:    true,
		LastTime:  s.Time,
		LastPos:   s.Pos,
	}
}

// OnSample feeds one pointer sample and returns an effect request when the flick conditions hold:
// inside region, acceleration above threshold, cooldown elapsed since the last effect
// Samples for an inactive track or another pointer are ignored
func (c *Classifier) OnSample(s Sample, inRegion RegionFunc) (EffectRequest, bool) {
	tr := &c.track
	if !tr.Active || s.PointerID != tr.PointerID {
		return EffectRequest{}, false
	}

	elapsed := s.Time.Sub(tr.LastTime)
	if elapsed < c.cfg.MinInterval {
		elapsed = c.cfg.MinInterval
	}
	dt := elapsed.Seconds()

	var speed float64
	if s.Pos != tr.LastPos {
		speed = vmath.Distance(s.Pos, tr.LastPos) / dt
	}
	accel := math.Abs(speed-tr.LastSpeed) / dt

	var (
		req   EffectRequest
		fired bool
	)
	if accel > c.cfg.AccelThreshold && c.cooledDown(s) && inRegion != nil && inRegion(s.Pos) {
		req = EffectRequest{X: s.Pos[0], Y: s.Pos[1]}
		fired = true
		tr.LastTrigger = s.Time
		tr.Triggered = true
	}

	tr.LastTime = s.Time
	tr.LastPos = s.Pos
	tr.LastSpeed = speed
	tr.Speed = speed
	tr.Accel = accel
	return req, fired
}

// cooledDown reports whether enough time passed since the last effect of this track
func (c *Classifier) cooledDown(s Sample) bool {
	if !c.track.Triggered {
		return true
	}
	return s.Time.Sub(c.track.LastTrigger) >= c.cfg.Cooldown
}

// EndTrack stops tracking; safe to call when no track is active
func (c *Classifier) EndTrack() {
	c.track.Active = false
}

// Active reports whether a track is in progress
func (c *Classifier) Active() bool {
	return c.track.Active
}

// PointerID returns the tracked pointer, meaningful only while Active
func (c *Classifier) PointerID() int {
	return c.track.PointerID
}

// Track returns a copy of the current track state
func (c *Classifier) Track() Track {
	return c.track
}

// Config returns the classifier tuning
func (c *Classifier) Config() Config {
	return c.cfg
}
