package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DistanceEpsilon stands in for the distance between coincident points
// Keeps every distance usable as a divisor when building contact normals
const DistanceEpsilon = 0.0001

// Clamp restricts v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Distance returns the Euclidean distance between a and b, floored to DistanceEpsilon when they coincide
func Distance(a, b mgl64.Vec2) float64 {
	d := b.Sub(a).Len()
	if d == 0 {
		return DistanceEpsilon
	}
	return d
}

// Normal returns the unit vector pointing from a to b and the (floored) distance between them
// Coincident points yield a zero normal with DistanceEpsilon distance
func Normal(a, b mgl64.Vec2) (n mgl64.Vec2, dist float64) {
	dist = Distance(a, b)
	return b.Sub(a).Mul(1 / dist), dist
}

// Overlap returns how far two circles interpenetrate along their center line, 0 when apart or tangent
func Overlap(a, b mgl64.Vec2, ra, rb float64) float64 {
	gap := ra + rb - Distance(a, b)
	if gap <= 0 {
		return 0
	}
	return gap
}
