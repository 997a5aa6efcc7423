package parameter

import "time"

// Flick gesture
const (
	// FlickAccelThreshold is the minimum |Δspeed|/Δt in px/s² for an effect
	FlickAccelThreshold = 600.0

	// FlickCooldown is the minimum spacing between two effects of one track
	FlickCooldown = 420 * time.Millisecond

	// MinSampleInterval floors the elapsed time between two pointer samples
	MinSampleInterval = time.Millisecond
)
