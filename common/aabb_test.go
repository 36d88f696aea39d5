package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBExpand(t *testing.T) {
	b := EmptyAABB()
	assert.True(t, b.IsEmpty())

	b = b.Expand(Vec3f{X: 1, Y: 2, Z: 3})
	b = b.Expand(Vec3f{X: -1, Y: 0, Z: 5})
	require.False(t, b.IsEmpty())
	assert.Equal(t, Vec3f{X: -1, Y: 0, Z: 3}, b.Min)
	assert.Equal(t, Vec3f{X: 1, Y: 2, Z: 5}, b.Max)
	assert.Equal(t, Vec3f{X: 0, Y: 1, Z: 4}, b.Center())
	assert.Equal(t, Vec3f{X: 2, Y: 2, Z: 2}, b.Size())
}

func TestAABBUnionWithEmpty(t *testing.T) {
	b := NewAABB(Vec3f{X: 0, Y: 0, Z: 0}, Vec3f{X: 1, Y: 1, Z: 1})
	assert.Equal(t, b, b.Union(EmptyAABB()))

	other := NewAABB(Vec3f{X: 2, Y: 2, Z: 2})
	merged := b.Union(other)
	assert.Equal(t, Vec3f{X: 0, Y: 0, Z: 0}, merged.Min)
	assert.Equal(t, Vec3f{X: 2, Y: 2, Z: 2}, merged.Max)
}

func TestAABBTransform(t *testing.T) {
	b := NewAABB(Vec3f{X: -1, Y: -1, Z: -1}, Vec3f{X: 1, Y: 1, Z: 1})

	moved := b.Transform(ModelMatrix(Vec3f{X: 10, Y: 0, Z: 0}, Vec3f{}, Vec3f{X: 1, Y: 1, Z: 1}))
	assert.InDelta(t, 9.0, moved.Min.X, 1e-6)
	assert.InDelta(t, 11.0, moved.Max.X, 1e-6)

	// A rotated box stays axis-aligned by growing to its rotated corners.
	rotated := b.Transform(ModelMatrix(Vec3f{}, Vec3f{Y: float32(math.Pi / 4)}, Vec3f{X: 1, Y: 1, Z: 1}))
	assert.InDelta(t, float64(math.Sqrt2), float64(rotated.Max.X), 1e-5)
}

func TestFrustumContainsAABB(t *testing.T) {
	proj := Perspective(float32(math.Pi/2), 1.0, 0.1, 100.0)
	view := LookAt(Vec3f{X: 0, Y: 0, Z: 10}, Vec3f{}, Vec3f{Y: 1})
	frustum := ExtractFrustum(Mul4(proj, view))

	inside := NewAABB(Vec3f{X: -1, Y: -1, Z: -1}, Vec3f{X: 1, Y: 1, Z: 1})
	assert.True(t, frustum.ContainsAABB(inside))

	behind := NewAABB(Vec3f{X: -1, Y: -1, Z: 20}, Vec3f{X: 1, Y: 1, Z: 22})
	assert.False(t, frustum.ContainsAABB(behind))

	farAway := NewAABB(Vec3f{X: 500, Y: 0, Z: 0}, Vec3f{X: 501, Y: 1, Z: 1})
	assert.False(t, frustum.ContainsAABB(farAway))

	assert.False(t, frustum.ContainsAABB(EmptyAABB()))
}
