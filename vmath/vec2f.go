package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector on the ground plane
// All simulation positions use world units with the protected asset at the origin
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FNormalize returns the unit vector, or zero for a zero-length input
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FDist returns the euclidean distance between two points
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(a, b))
}

// V2FFromAngle returns the point at distance r along angle (radians) from origin
func V2FFromAngle(angle, r float64) Vec2F {
	return Vec2F{math.Cos(angle) * r, math.Sin(angle) * r}
}

// V2FStepToward moves from toward to by step, never overshooting
// Zero distance yields no movement
func V2FStepToward(from, to Vec2F, step float64) Vec2F {
	d := V2FSub(to, from)
	dist := V2FMag(d)
	if dist == 0 {
		return from
	}
	if step >= dist {
		return to
	}
	return V2FAdd(from, V2FScale(d, step/dist))
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapDegrees maps any angle into [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
