package common

import "github.com/chewxy/math32"

// AABB is an axis-aligned bounding box. The zero value from EmptyAABB is the
// identity for Expand/Union: it contains nothing and disappears when merged.
type AABB struct {
	Min, Max Vec3f
}

// EmptyAABB returns the empty box (Min at +Inf, Max at -Inf).
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: Vec3f{X: inf, Y: inf, Z: inf},
		Max: Vec3f{X: -inf, Y: -inf, Z: -inf},
	}
}

// NewAABB returns the smallest box containing all the given points.
func NewAABB(points ...Vec3f) AABB {
	b := EmptyAABB()
	for _, p := range points {
		b = b.Expand(p)
	}
	return b
}

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Expand returns the box grown to contain p.
func (b AABB) Expand(p Vec3f) AABB {
	return AABB{
		Min: Vec3f{X: math32.Min(b.Min.X, p.X), Y: math32.Min(b.Min.Y, p.Y), Z: math32.Min(b.Min.Z, p.Z)},
		Max: Vec3f{X: math32.Max(b.Max.X, p.X), Y: math32.Max(b.Max.Y, p.Y), Z: math32.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both boxes.
func (b AABB) Union(other AABB) AABB {
	if other.IsEmpty() {
		return b
	}
	return b.Expand(other.Min).Expand(other.Max)
}

// Center returns the box's center point. Meaningless for empty boxes.
func (b AABB) Center() Vec3f {
	return Vec3Scale(Vec3Add(b.Min, b.Max), 0.5)
}

// Size returns the box's extent along each axis.
func (b AABB) Size() Vec3f {
	return Vec3Sub(b.Max, b.Min)
}

// Transform returns the axis-aligned box containing this box's eight corners
// transformed by m.
func (b AABB) Transform(m Mat4f) AABB {
	if b.IsEmpty() {
		return b
	}
	out := EmptyAABB()
	for _, x := range []float32{b.Min.X, b.Max.X} {
		for _, y := range []float32{b.Min.Y, b.Max.Y} {
			for _, z := range []float32{b.Min.Z, b.Max.Z} {
				// w assumed 1 (affine transform)
				p := Vec3f{
					X: m[0]*x + m[4]*y + m[8]*z + m[12],
					Y: m[1]*x + m[5]*y + m[9]*z + m[13],
					Z: m[2]*x + m[6]*y + m[10]*z + m[14],
				}
				out = out.Expand(p)
			}
		}
	}
	return out
}
