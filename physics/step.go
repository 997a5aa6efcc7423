package physics

import (
	"math"

	"github.com/lixenwraith/bubbles/vmath"
)

// Step advances every body by dt seconds
// Order: clamp dt, integrate, wall containment, damping, single pass of pair resolution,
// final position clamp so pair pushes never leave a body outside the rectangle
func (r *Registry) Step(dt float64) {
	if math.IsNaN(dt) {
		dt = 0
	}
	dt = vmath.Clamp(dt, 0, r.tuning.MaxFrameDelta)

	for i := range r.bodies {
		b := &r.bodies[i]
		Integrate(b, dt)
		ReflectBounds(b, r.bounds)
		ApplyDamping(b, r.tuning.Damping)
	}

	if ResolveAll(r.bodies) == 0 {
		return
	}

	for i := range r.bodies {
		ClampToBounds(&r.bodies[i], r.bounds)
	}
}
