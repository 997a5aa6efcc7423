package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FromAngle returns a vector of magnitude mag pointing at angle radians (0 = +X, counter-clockwise)
func FromAngle(angle, mag float64) mgl64.Vec2 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec2{cos * mag, sin * mag}
}

// Project returns the scalar projection of v onto unit vector n
func Project(v, n mgl64.Vec2) float64 {
	return v.Dot(n)
}

// ReflectAxisX returns velocity reflected off a vertical wall
func ReflectAxisX(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[0], v[1]}
}

// ReflectAxisY returns velocity reflected off a horizontal wall
func ReflectAxisY(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v[0], -v[1]}
}
