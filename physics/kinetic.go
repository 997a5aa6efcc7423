package physics

import (
	"github.com/lixenwraith/bubbles/vmath"
)

// Integrate performs explicit Euler integration: p = p + v*dt
func Integrate(b *Body, dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

// ReflectBoundsX handles left/right wall contact, returns true if reflection occurred
// Position is hard-clamped to [r, width-r]; only the X velocity flips
func ReflectBoundsX(b *Body, width float64) bool {
	var reflected bool
	b.Pos[0], reflected = reflectAxis(b.Pos[0], b.Radius, width)
	if reflected {
		b.Vel = vmath.ReflectAxisX(b.Vel)
	}
	return reflected
}

// ReflectBoundsY handles top/bottom wall contact, returns true if reflection occurred
func ReflectBoundsY(b *Body, height float64) bool {
	var reflected bool
	b.Pos[1], reflected = reflectAxis(b.Pos[1], b.Radius, height)
	if reflected {
		b.Vel = vmath.ReflectAxisY(b.Vel)
	}
	return reflected
}

// reflectAxis contains one coordinate and reports whether that axis' velocity must flip
// An axis narrower than the diameter pins the body at its center with no flip
func reflectAxis(p, r, dim float64) (float64, bool) {
	if dim < 2*r {
		return dim / 2, false
	}
	if p < r {
		return r, true
	}
	if p > dim-r {
		return dim - r, true
	}
	return p, false
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
func ReflectBounds(b *Body, bounds Bounds) bool {
	rx := ReflectBoundsX(b, bounds.Width)
	ry := ReflectBoundsY(b, bounds.Height)
	return rx || ry
}

// ClampToBounds pulls the position back inside [r, dim-r] without touching velocity
// Used after pair resolution, which can push a wall-hugging body past the wall
func ClampToBounds(b *Body, bounds Bounds) {
	b.Pos[0] = clampAxis(b.Pos[0], b.Radius, bounds.Width)
	b.Pos[1] = clampAxis(b.Pos[1], b.Radius, bounds.Height)
}

// clampAxis is reflectAxis without the velocity side
func clampAxis(p, r, dim float64) float64 {
	p, _ = reflectAxis(p, r, dim)
	return p
}

// ApplyDamping scales velocity by factor
func ApplyDamping(b *Body, factor float64) {
	b.Vel = b.Vel.Mul(factor)
}
