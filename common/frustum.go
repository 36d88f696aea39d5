package common

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   Vec3f
	Distance float32
}

// SignedDistance returns the signed distance from p to the plane: positive on
// the normal's side.
func (pl Plane) SignedDistance(p Vec3f) float32 {
	return Vec3Dot(pl.Normal, p) + pl.Distance
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum plane indices.
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustum extracts frustum planes from a combined view-projection
// matrix using the Gribb/Hartmann method.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined View * Projection matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustum(viewProj Mat4f) Frustum {
	var f Frustum

	// For column-major matrix M, element M[row][col] is at index col*4 + row.
	row := func(r int) Vec4f {
		return Vec4f{X: viewProj[r], Y: viewProj[4+r], Z: viewProj[8+r], W: viewProj[12+r]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	set := func(i int, a, b Vec4f, sign float32) {
		f.Planes[i] = Plane{
			Normal:   Vec3f{X: a.X + sign*b.X, Y: a.Y + sign*b.Y, Z: a.Z + sign*b.Z},
			Distance: a.W + sign*b.W,
		}
	}
	set(FrustumLeft, r3, r0, 1)
	set(FrustumRight, r3, r0, -1)
	set(FrustumBottom, r3, r1, 1)
	set(FrustumTop, r3, r1, -1)
	set(FrustumNear, r3, r2, 1)
	set(FrustumFar, r3, r2, -1)

	for i := range f.Planes {
		f.normalizePlane(i)
	}
	return f
}

// ContainsAABB reports whether any part of the box is inside the frustum,
// testing the box's positive vertex against each plane. Conservative: may
// report true for boxes that only nearly intersect.
//
// Parameters:
//   - box: the axis-aligned box to test
//
// Returns:
//   - bool: false only when the box is fully outside some plane
func (f *Frustum) ContainsAABB(box AABB) bool {
	if box.IsEmpty() {
		return false
	}
	for _, pl := range f.Planes {
		// Positive vertex: the box corner furthest along the plane normal.
		p := Vec3f{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z}
		if pl.Normal.X >= 0 {
			p.X = box.Max.X
		}
		if pl.Normal.Y >= 0 {
			p.Y = box.Max.Y
		}
		if pl.Normal.Z >= 0 {
			p.Z = box.Max.Z
		}
		if pl.SignedDistance(p) < 0 {
			return false
		}
	}
	return true
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := Vec3Length(p.Normal)
	if length > 0 {
		invLen := 1.0 / length
		p.Normal = Vec3Scale(p.Normal, invLen)
		p.Distance *= invLen
	}
}
