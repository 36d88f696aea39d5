package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMat4InDelta(t *testing.T, expected, actual Mat4f, delta float64) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "element %d", i)
	}
}

func TestMul4Identity(t *testing.T) {
	m := Mat4f{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	assert.Equal(t, m, Mul4(Mat4Identity(), m))
	assert.Equal(t, m, Mul4(m, Mat4Identity()))
}

func TestMul4Translation(t *testing.T) {
	// Two translations compose by addition.
	ta := ModelMatrix(Vec3f{X: 1, Y: 2, Z: 3}, Vec3f{}, Vec3f{X: 1, Y: 1, Z: 1})
	tb := ModelMatrix(Vec3f{X: 4, Y: 5, Z: 6}, Vec3f{}, Vec3f{X: 1, Y: 1, Z: 1})
	product := Mul4(ta, tb)
	assert.InDelta(t, 5.0, product[12], 1e-6)
	assert.InDelta(t, 7.0, product[13], 1e-6)
	assert.InDelta(t, 9.0, product[14], 1e-6)
}

func TestLookAtAtOriginLookingDownNegZ(t *testing.T) {
	view := LookAt(Vec3f{X: 0, Y: 0, Z: 5}, Vec3f{}, Vec3f{Y: 1})

	// A point at the origin lands 5 units in front of the camera (view -Z).
	x := view[0]*0 + view[4]*0 + view[8]*0 + view[12]
	y := view[1]*0 + view[5]*0 + view[9]*0 + view[13]
	z := view[2]*0 + view[6]*0 + view[10]*0 + view[14]
	assert.InDelta(t, 0.0, x, 1e-6)
	assert.InDelta(t, 0.0, y, 1e-6)
	assert.InDelta(t, -5.0, z, 1e-6)
}

func TestPerspectiveShape(t *testing.T) {
	p := Perspective(float32(math.Pi/2), 2.0, 1.0, 100.0)

	// fov 90 degrees puts f = 1.
	assert.InDelta(t, 0.5, p[0], 1e-6) // f / aspect
	assert.InDelta(t, 1.0, p[5], 1e-6)
	assert.InDelta(t, -1.0, p[11], 1e-6)

	// Near plane maps to clip -1, far plane to +1 after perspective divide.
	nearZ := (p[10]*-1 + p[14]) / 1
	farZ := (p[10]*-100 + p[14]) / 100
	assert.InDelta(t, -1.0, nearZ, 1e-4)
	assert.InDelta(t, 1.0, farZ, 1e-4)
}

func TestOrthographicMapsExtents(t *testing.T) {
	o := Orthographic(-2, 2, -1, 1, 0.1, 10)

	// Right edge maps to clip x = +1.
	assert.InDelta(t, 1.0, o[0]*2+o[12], 1e-6)
	// Top edge maps to clip y = +1.
	assert.InDelta(t, 1.0, o[5]*1+o[13], 1e-6)
	assert.InDelta(t, 1.0, o[15], 1e-6)
}

func TestInvert4RoundTrip(t *testing.T) {
	m := ModelMatrix(
		Vec3f{X: 1, Y: -2, Z: 3},
		Vec3f{X: 0.3, Y: 1.2, Z: -0.7},
		Vec3f{X: 2, Y: 2, Z: 2},
	)
	inv, ok := Invert4(m)
	require.True(t, ok)
	assertMat4InDelta(t, Mat4Identity(), Mul4(m, inv), 1e-5)
}

func TestInvert4Singular(t *testing.T) {
	_, ok := Invert4(Mat4f{}) // zero matrix
	assert.False(t, ok)
}

func TestVec3Helpers(t *testing.T) {
	a := Vec3f{X: 1, Y: 0, Z: 0}
	b := Vec3f{X: 0, Y: 1, Z: 0}

	assert.Equal(t, Vec3f{X: 0, Y: 0, Z: 1}, Vec3Cross(a, b))
	assert.Equal(t, float32(0), Vec3Dot(a, b))
	assert.Equal(t, Vec3f{X: 1, Y: 1, Z: 0}, Vec3Add(a, b))
	assert.InDelta(t, 5.0, Vec3Length(Vec3f{X: 3, Y: 4}), 1e-6)

	n := Vec3Normalize(Vec3f{X: 0, Y: 0, Z: 10})
	assert.InDelta(t, 1.0, Vec3Length(n), 1e-6)

	// The zero vector normalizes to itself instead of NaN.
	assert.Equal(t, Vec3f{}, Vec3Normalize(Vec3f{}))
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3f{Y: 1}, float32(math.Pi))
	assert.InDelta(t, 0.0, q.X, 1e-6)
	assert.InDelta(t, 1.0, q.Y, 1e-6)
	assert.InDelta(t, 0.0, q.Z, 1e-6)
	assert.InDelta(t, 0.0, q.W, 1e-6)
}
