package vmath

import "math"

// Vec2 is a float64 2D point or vector in arena units
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Distance returns the Euclidean distance between two points
func V2Distance(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Within reports whether b lies within radius of a, boundary inclusive
func V2Within(a, b Vec2, radius float64) bool {
	return V2Distance(a, b) <= radius
}
