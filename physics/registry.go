package physics

import (
	"github.com/lixenwraith/bubbles/parameter"
	"github.com/lixenwraith/bubbles/vmath"
)

// Registry owns the fixed set of bodies and the rectangle they live in
// Not safe for concurrent use; the frame driver is the single owner
type Registry struct {
	bodies []Body
	bounds Bounds
	tuning Tuning
	rng    *vmath.FastRand
}

// NewRegistry creates an empty registry; rng drives initial placement only
func NewRegistry(tuning Tuning, rng *vmath.FastRand) *Registry {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &Registry{
		tuning: tuning,
		rng:    rng,
	}
}

// Initialize creates one body per spec with a radius derived from its measured size,
// then scatters all bodies inside bounds with random headings
// Overlapping placement is allowed; the first steps push bodies apart
func (r *Registry) Initialize(specs []BodySpec, bounds Bounds) {
	r.bodies = make([]Body, len(specs))
	for i, s := range specs {
		r.bodies[i] = Body{
			Label:  s.Label,
			Radius: r.tuning.RadiusFor(s),
		}
	}
	r.Reinitialize(bounds)
}

// Reinitialize resets position and velocity of every body for new bounds, keeping radii
func (r *Registry) Reinitialize(bounds Bounds) {
	r.bounds = bounds.Clamped(parameter.MinBound)
	for i := range r.bodies {
		r.scatter(&r.bodies[i])
	}
}

// scatter samples position uniformly in [r, dim-r] per axis and a random velocity
func (r *Registry) scatter(b *Body) {
	b.Pos[0] = r.sampleAxis(b.Radius, r.bounds.Width)
	b.Pos[1] = r.sampleAxis(b.Radius, r.bounds.Height)

	speed := r.rng.Range(r.tuning.MinSpeed, r.tuning.MaxSpeed)
	b.Vel = vmath.FromAngle(r.rng.Angle(), speed)
}

// sampleAxis centers the body when the dimension cannot hold its diameter
func (r *Registry) sampleAxis(radius, dim float64) float64 {
	if dim < 2*radius {
		return dim / 2
	}
	return r.rng.Range(radius, dim-radius)
}

// Bodies returns the live body slice for rendering
// The slice is owned by the registry and is rewritten by every Step
func (r *Registry) Bodies() []Body {
	return r.bodies
}

// Len returns the fixed body count
func (r *Registry) Len() int {
	return len(r.bodies)
}

// Bounds returns the clamped simulation rectangle
func (r *Registry) Bounds() Bounds {
	return r.bounds
}

// Tuning returns the constants the registry was built with
func (r *Registry) Tuning() Tuning {
	return r.tuning
}
