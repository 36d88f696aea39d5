package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceToBytesRoundTrip(t *testing.T) {
	src := []Vec3f{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 5, Z: 6},
	}
	raw := SliceToBytes(src)
	require.Len(t, raw, 24)

	back, err := BytesToSlice[Vec3f](raw)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestSliceToBytesEmpty(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32(nil)))

	back, err := BytesToSlice[float32](nil)
	require.NoError(t, err)
	assert.Nil(t, back)
}

func TestBytesToSlicePartialElement(t *testing.T) {
	raw := SliceToBytes([]float32{1, 2, 3})
	_, err := BytesToSlice[float32](raw[:10])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a multiple")
}

func TestBytesToSliceMisaligned(t *testing.T) {
	// Byte slice allocations are word-aligned, so shifting the view by one
	// byte guarantees a misaligned base for a 4-byte element type.
	raw := make([]byte, 17)
	shifted, err := BytesToSlice[uint32](raw[1:])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not aligned")
	assert.Nil(t, shifted)

	aligned, err := BytesToSlice[uint32](raw[:16])
	require.NoError(t, err)
	assert.Len(t, aligned, 4)
}

func TestStructToBytes(t *testing.T) {
	v := Vec4f{X: 1, Y: 2, Z: 3, W: 4}
	raw := StructToBytes(&v)
	require.Len(t, raw, 16)

	back, err := BytesToSlice[float32](raw)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, back)
}

func TestVecSliceViews(t *testing.T) {
	v2 := Vec2Slice([][2]float32{{1, 2}, {3, 4}})
	assert.Equal(t, []Vec2[float32]{{X: 1, Y: 2}, {X: 3, Y: 4}}, v2)

	v3 := Vec3Slice([][3]uint8{{1, 2, 3}})
	assert.Equal(t, []Vec3[uint8]{{X: 1, Y: 2, Z: 3}}, v3)

	v4 := Vec4Slice([][4]float32{{1, 2, 3, 4}})
	assert.Equal(t, []Vec4[float32]{{X: 1, Y: 2, Z: 3, W: 4}}, v4)

	assert.Nil(t, Vec3Slice([][3]float32(nil)))
}
