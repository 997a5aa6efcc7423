package parameter

import "time"

// Frame loop
const (
	// FrameRate is the host tick rate in frames per second
	FrameRate = 60

	// EventChannelSize buffers terminal events between the poller and the loop
	EventChannelSize = 100
)

// Effect lifetime
const (
	// EffectLifetime is how long a spawned bubble effect stays on screen
	EffectLifetime = 1200 * time.Millisecond

	// EffectRise is how far an effect drifts upward over its lifetime, in px
	EffectRise = 48.0
)
