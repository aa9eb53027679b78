package vmath

// Clamp restricts v to [lo, hi]; NaN maps to lo
func Clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToArena constrains p to the rectangle [0, width] x [0, height]
// Idempotent: clamping an in-bounds point returns it unchanged
func ClampToArena(p Vec2, width, height float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, 0, width),
		Y: Clamp(p.Y, 0, height),
	}
}

// InArena reports whether p lies inside [0, width] x [0, height]
func InArena(p Vec2, width, height float64) bool {
	return p.X >= 0 && p.X <= width && p.Y >= 0 && p.Y <= height
}
