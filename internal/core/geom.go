// Package core provides fundamental types and utilities shared by the
// simulation and its hosts. It has no external dependencies so that game
// logic stays pure and testable.
package core

import "math"

// Vec is a point or displacement in world space.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the bearing from a to b in radians.
func Angle(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Step moves from by distance along the straight-line bearing towards to.
// Overshooting is allowed; callers decide when a waypoint counts as reached.
func Step(from, to Vec, distance float64) Vec {
	angle := Angle(from, to)
	return Vec{
		X: from.X + math.Cos(angle)*distance,
		Y: from.Y + math.Sin(angle)*distance,
	}
}

// DistToRay returns the perpendicular distance from p to the ray that starts
// at origin and passes through through, and the projection of p onto that ray.
// A negative projection means p lies behind origin.
func DistToRay(origin, through, p Vec) (perp float64, along float64) {
	dir := through.Sub(origin)
	l := dir.Len()
	if l == 0 {
		return Dist(origin, p), 0
	}
	unit := dir.Scale(1 / l)
	rel := p.Sub(origin)
	along = rel.Dot(unit)
	perp = math.Abs(rel.X*unit.Y - rel.Y*unit.X)
	return perp, along
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
