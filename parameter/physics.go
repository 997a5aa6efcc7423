package parameter

// Bubble sizing
const (
	// BubbleMinRadius and BubbleMaxRadius bound the radius derived from a label's measured size
	BubbleMinRadius = 18.0
	BubbleMaxRadius = 60.0

	// BubbleRadiusFactor maps the larger measured dimension to a radius (pill-ish labels)
	BubbleRadiusFactor = 0.5
)

// Bubble motion
const (
	// BubbleMinSpeed and BubbleMaxSpeed bound the initial speed in px/sec
	BubbleMinSpeed = 18.0
	BubbleMaxSpeed = 42.0

	// BubbleDamping is the per-frame velocity multiplier
	BubbleDamping = 0.999

	// MaxFrameDelta caps a single simulation advance in seconds
	MaxFrameDelta = 0.03
)

// MinBound is the smallest width/height accepted for the simulation rectangle
const MinBound = 1.0
