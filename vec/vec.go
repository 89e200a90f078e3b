// Package vec provides 2D vector math for the simulation. All operations are
// value-based and allocate a new result; Set is the only in-place mutator.
package vec

import "math"

// Vec is a 2D vector. Depending on context it is a position, a velocity, an
// acceleration, or a unit normal.
type Vec struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(u Vec) Vec {
	return Vec{v.X + u.X, v.Y + u.Y}
}

func (v Vec) Sub(u Vec) Vec {
	return Vec{v.X - u.X, v.Y - u.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Div divides by a scalar. Division by zero follows IEEE float semantics.
func (v Vec) Div(s float64) Vec {
	return Vec{v.X / s, v.Y / s}
}

func (v Vec) Dot(u Vec) float64 {
	return v.X*u.X + v.Y*u.Y
}

func (v Vec) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// MagnitudeSquared avoids the square root when only comparison is needed.
func (v Vec) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has zero magnitude.
func (v Vec) Normalize() Vec {
	m := v.Magnitude()
	if m == 0 {
		return Vec{}
	}
	return Vec{v.X / m, v.Y / m}
}

func (v Vec) Distance(u Vec) float64 {
	return v.Sub(u).Magnitude()
}

// Rotate returns v rotated by angle radians (standard 2D rotation matrix).
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Reflect mirrors v across the plane defined by the unit normal n:
// v' = v - 2(v·n)n.
func (v Vec) Reflect(n Vec) Vec {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Set overwrites the vector in place. Used only for resetting or relocating
// state.
func (v *Vec) Set(x, y float64) {
	v.X = x
	v.Y = y
}
