package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/bubbles/parameter"
	"github.com/lixenwraith/bubbles/vmath"
)

// Body is one simulated circular bubble
// Radius is fixed after initialization; Pos and Vel are in px and px/sec
type Body struct {
	Label  string
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64
}

// BodySpec is the externally measured size of a labeled bubble
type BodySpec struct {
	Label  string
	Width  float64
	Height float64
}

// Bounds is the simulation rectangle, origin at the top-left corner
type Bounds struct {
	Width  float64
	Height float64
}

// Clamped returns b with each dimension raised to at least minSize
func (b Bounds) Clamped(minSize float64) Bounds {
	return Bounds{
		Width:  math.Max(b.Width, minSize),
		Height: math.Max(b.Height, minSize),
	}
}

// Tuning holds the simulation constants; zero value is not usable, start from DefaultTuning
type Tuning struct {
	MinRadius    float64
	MaxRadius    float64
	RadiusFactor float64
	MinSpeed     float64
	MaxSpeed     float64
	Damping      float64
	// MaxFrameDelta caps dt in seconds for a single Step
	MaxFrameDelta float64
}

func DefaultTuning() Tuning {
	return Tuning{
		MinRadius:     parameter.BubbleMinRadius,
		MaxRadius:     parameter.BubbleMaxRadius,
		RadiusFactor:  parameter.BubbleRadiusFactor,
		MinSpeed:      parameter.BubbleMinSpeed,
		MaxSpeed:      parameter.BubbleMaxSpeed,
		Damping:       parameter.BubbleDamping,
		MaxFrameDelta: parameter.MaxFrameDelta,
	}
}

// RadiusFor derives a clamped radius from the larger measured dimension
func (t Tuning) RadiusFor(s BodySpec) float64 {
	r := math.Max(s.Width, s.Height) * t.RadiusFactor
	return vmath.Clamp(r, t.MinRadius, t.MaxRadius)
}
