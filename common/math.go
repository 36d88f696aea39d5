package common

import (
	"github.com/chewxy/math32"
)

// Vec2 is a 2-component vector of any primitive scalar kind.
type Vec2[T Primitive] struct {
	X, Y T
}

// Vec3 is a 3-component vector of any primitive scalar kind.
type Vec3[T Primitive] struct {
	X, Y, Z T
}

// Vec4 is a 4-component vector of any primitive scalar kind.
type Vec4[T Primitive] struct {
	X, Y, Z, W T
}

// Quat is a quaternion with vector part (X, Y, Z) and scalar (real) part W.
// For GPU transfer it behaves as a 4-component vector with the scalar part
// flattened LAST: (x, y, z, w).
type Quat[T Primitive] struct {
	X, Y, Z, W T
}

// Mat2 is a 2x2 matrix stored column-major: elements 0-1 are column 0.
type Mat2[T Primitive] [4]T

// Mat3 is a 3x3 matrix stored column-major: elements 0-2 are column 0.
type Mat3[T Primitive] [9]T

// Mat4 is a 4x4 matrix stored column-major: elements 0-3 are column 0.
// Same storage convention as the flat matrix slices used throughout the
// window/camera layers, so the two interconvert by plain copy.
type Mat4[T Primitive] [16]T

// Float32 shorthands for the overwhelmingly common case.
type (
	// Vec2f is Vec2[float32].
	Vec2f = Vec2[float32]
	// Vec3f is Vec3[float32].
	Vec3f = Vec3[float32]
	// Vec4f is Vec4[float32].
	Vec4f = Vec4[float32]
	// Quatf is Quat[float32].
	Quatf = Quat[float32]
	// Mat2f is Mat2[float32].
	Mat2f = Mat2[float32]
	// Mat3f is Mat3[float32].
	Mat3f = Mat3[float32]
	// Mat4f is Mat4[float32].
	Mat4f = Mat4[float32]
)

// DataFormat classifies Vec2[T] as a 2-component vector of T's kind.
func (Vec2[T]) DataFormat() Format {
	return Format{Kind: KindOf[T](), Rank: RankVec2}
}

// Flatten appends (x, y).
func (v Vec2[T]) Flatten(dst *Flattener) {
	Append(dst, v.X)
	Append(dst, v.Y)
}

// DataFormat classifies Vec3[T] as a 3-component vector of T's kind.
func (Vec3[T]) DataFormat() Format {
	return Format{Kind: KindOf[T](), Rank: RankVec3}
}

// Flatten appends (x, y, z).
func (v Vec3[T]) Flatten(dst *Flattener) {
	Append(dst, v.X)
	Append(dst, v.Y)
	Append(dst, v.Z)
}

// DataFormat classifies Vec4[T] as a 4-component vector of T's kind.
func (Vec4[T]) DataFormat() Format {
	return Format{Kind: KindOf[T](), Rank: RankVec4}
}

// Flatten appends (x, y, z, w).
func (v Vec4[T]) Flatten(dst *Flattener) {
	Append(dst, v.X)
	Append(dst, v.Y)
	Append(dst, v.Z)
	Append(dst, v.W)
}

// DataFormat classifies Quat[T] as a 4-component vector of T's kind.
func (Quat[T]) DataFormat() Format {
	return Format{Kind: KindOf[T](), Rank: RankVec4}
}

// Flatten appends (x, y, z, w) — vector part first, scalar part last.
func (q Quat[T]) Flatten(dst *Flattener) {
	Append(dst, q.X)
	Append(dst, q.Y)
	Append(dst, q.Z)
	Append(dst, q.W)
}

// DataFormat classifies Mat2[T] as a 2x2 matrix of T's kind. Its storage
// format resolves with 4 components, as a quad-channel type.
func (Mat2[T]) DataFormat() Format {
	return Format{Kind: KindOf[T](), Rank: RankMat2}
}

// Flatten appends the 4 elements in column-major storage order.
func (m Mat2[T]) Flatten(dst *Flattener) {
	for _, v := range m {
		Append(dst, v)
	}
}

// DataFormat classifies Mat3[T] as a 3x3 matrix of T's kind (9 components).
func (Mat3[T]) DataFormat() Format {
	return Format{Kind: KindOf[T](), Rank: RankMat3}
}

// Flatten appends the 9 elements in column-major storage order.
func (m Mat3[T]) Flatten(dst *Flattener) {
	for _, v := range m {
		Append(dst, v)
	}
}

// DataFormat classifies Mat4[T] as a 4x4 matrix of T's kind (16 components).
func (Mat4[T]) DataFormat() Format {
	return Format{Kind: KindOf[T](), Rank: RankMat4}
}

// Flatten appends the 16 elements in column-major storage order.
func (m Mat4[T]) Flatten(dst *Flattener) {
	for _, v := range m {
		Append(dst, v)
	}
}

// Mat2FromColumns builds a 2x2 matrix from its columns.
func Mat2FromColumns[T Primitive](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{c0.X, c0.Y, c1.X, c1.Y}
}

// Mat3FromColumns builds a 3x3 matrix from its columns.
func Mat3FromColumns[T Primitive](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{c0.X, c0.Y, c0.Z, c1.X, c1.Y, c1.Z, c2.X, c2.Y, c2.Z}
}

// Mat4FromColumns builds a 4x4 matrix from its columns.
func Mat4FromColumns[T Primitive](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4f {
	var m Mat4f
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Mul4 multiplies two 4x4 matrices, both column-major. Result: a * b.
//
// Parameters:
//   - a: left-hand matrix
//   - b: right-hand matrix
//
// Returns:
//   - Mat4f: the product
func Mul4(a, b Mat4f) Mat4f {
	var out Mat4f
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// Perspective creates a perspective projection matrix for OpenGL clip space
// [-1, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - Mat4f: the projection matrix
func Perspective(fovY, aspect, near, far float32) Mat4f {
	f := 1.0 / math32.Tan(fovY/2.0)
	var out Mat4f
	out[0] = f / aspect
	out[5] = f
	out[10] = (far + near) / (near - far)
	out[11] = -1.0
	out[14] = (2 * near * far) / (near - far)
	return out
}

// Orthographic creates an orthographic projection matrix for OpenGL clip
// space [-1, 1].
//
// Parameters:
//   - left, right, bottom, top: view volume extents
//   - near, far: clipping plane distances
//
// Returns:
//   - Mat4f: the projection matrix
func Orthographic(left, right, bottom, top, near, far float32) Mat4f {
	var out Mat4f
	out[0] = 2 / (right - left)
	out[5] = 2 / (top - bottom)
	out[10] = -2 / (far - near)
	out[12] = -(right + left) / (right - left)
	out[13] = -(top + bottom) / (top - bottom)
	out[14] = -(far + near) / (far - near)
	out[15] = 1
	return out
}

// LookAt creates a view matrix that positions and orients the camera. The
// resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
//
// Returns:
//   - Mat4f: the view matrix
func LookAt(eye, center, up Vec3f) Mat4f {
	z := Vec3Sub(eye, center)
	if Vec3Dot(z, z) == 0 {
		z.Z = 1
	}
	z = Vec3Normalize(z)

	x := Vec3Cross(up, z)
	if Vec3Dot(x, x) == 0 {
		x.X = 1
	}
	x = Vec3Normalize(x)

	y := Vec3Cross(z, x)

	var out Mat4f
	out[0], out[4], out[8], out[12] = x.X, x.Y, x.Z, -Vec3Dot(x, eye)
	out[1], out[5], out[9], out[13] = y.X, y.Y, y.Z, -Vec3Dot(y, eye)
	out[2], out[6], out[10], out[14] = z.X, z.Y, z.Z, -Vec3Dot(z, eye)
	out[15] = 1
	return out
}

// ModelMatrix constructs a 4x4 model matrix from position, Euler rotation and
// scale. The rotation order is Y * X * Z (yaw-pitch-roll), column-major.
//
// Parameters:
//   - pos: translation in world space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
//
// Returns:
//   - Mat4f: the model matrix
func ModelMatrix(pos, rot, scale Vec3f) Mat4f {
	cx, sx := math32.Cos(rot.X), math32.Sin(rot.X)
	cy, sy := math32.Cos(rot.Y), math32.Sin(rot.Y)
	cz, sz := math32.Cos(rot.Z), math32.Sin(rot.Z)

	var out Mat4f
	// R = Ry * Rx * Rz, column-major
	out[0] = (cy*cz + sy*sx*sz) * scale.X
	out[1] = (cx * sz) * scale.X
	out[2] = (-sy*cz + cy*sx*sz) * scale.X

	out[4] = (cy*-sz + sy*sx*cz) * scale.Y
	out[5] = (cx * cz) * scale.Y
	out[6] = (sy*sz + cy*sx*cz) * scale.Y

	out[8] = (sy * cx) * scale.Z
	out[9] = (-sx) * scale.Z
	out[10] = (cy * cx) * scale.Z

	out[12] = pos.X
	out[13] = pos.Y
	out[14] = pos.Z
	out[15] = 1
	return out
}

// Invert4 computes the inverse of a 4x4 column-major matrix using the Laplace
// expansion (cofactor) method.
//
// Parameters:
//   - m: source matrix
//
// Returns:
//   - Mat4f: the inverse (zero matrix if singular)
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(m Mat4f) (Mat4f, bool) {
	// 2x2 sub-determinants of the upper-left and lower-right quadrants.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Mat4f{}, false
	}

	invDet := 1.0 / det

	var out Mat4f
	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet

	return out, true
}

// Vec3Add returns a + b.
func Vec3Add(a, b Vec3f) Vec3f {
	return Vec3f{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Vec3Sub returns a - b.
func Vec3Sub(a, b Vec3f) Vec3f {
	return Vec3f{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Vec3Scale returns v * s.
func Vec3Scale(v Vec3f, s float32) Vec3f {
	return Vec3f{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Vec3Dot returns the dot product of a and b.
func Vec3Dot(a, b Vec3f) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Vec3Cross returns the cross product a x b.
func Vec3Cross(a, b Vec3f) Vec3f {
	return Vec3f{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Vec3Length returns the Euclidean length of v.
func Vec3Length(v Vec3f) float32 {
	return math32.Sqrt(Vec3Dot(v, v))
}

// Vec3Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func Vec3Normalize(v Vec3f) Vec3f {
	l := Vec3Length(v)
	if l == 0 {
		return v
	}
	return Vec3Scale(v, 1/l)
}

// QuatFromAxisAngle builds a rotation quaternion from a unit axis and an angle
// in radians. The scalar part lands in W.
//
// Parameters:
//   - axis: rotation axis (should be normalized)
//   - angle: rotation angle in radians
//
// Returns:
//   - Quatf: the rotation quaternion
func QuatFromAxisAngle(axis Vec3f, angle float32) Quatf {
	s := math32.Sin(angle / 2)
	return Quatf{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math32.Cos(angle / 2),
	}
}
