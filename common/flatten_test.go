package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFlattenVec3Order(t *testing.T) {
	f := &Flattener{}
	Vec3[float32]{X: 1, Y: 2, Z: 3}.Flatten(f)
	assert.Equal(t, []float32{1, 2, 3}, f.F)
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, ClassFloat, f.Class())
}

func TestFlattenQuatScalarPartLast(t *testing.T) {
	// The scalar (real) part W always lands last, after the vector part.
	f := &Flattener{}
	Quat[float32]{X: 1, Y: 0, Z: 0, W: 5}.Flatten(f)
	assert.Equal(t, []float32{1, 0, 0, 5}, f.F)
}

func TestFlattenMat2ColumnMajor(t *testing.T) {
	// Columns (1,2) and (3,4) concatenate in storage order.
	f := &Flattener{}
	m := Mat2FromColumns(Vec2[float32]{X: 1, Y: 2}, Vec2[float32]{X: 3, Y: 4})
	m.Flatten(f)
	assert.Equal(t, []float32{1, 2, 3, 4}, f.F)
}

func TestFlattenPromotesNarrowKinds(t *testing.T) {
	// 8-bit unsigned widens to uint32 and lands in the unsigned slice.
	f := &Flattener{}
	Vec2[uint8]{X: 7, Y: 255}.Flatten(f)
	assert.Equal(t, []uint32{7, 255}, f.U)
	assert.Empty(t, f.I)
	assert.Empty(t, f.F)
	assert.Equal(t, ClassUnsigned, f.Class())

	// 16-bit signed widens to int32, keeping the sign.
	f = &Flattener{}
	Vec2[int16]{X: -5, Y: 300}.Flatten(f)
	assert.Equal(t, []int32{-5, 300}, f.I)
	assert.Equal(t, ClassSigned, f.Class())

	// Half floats widen through their IEEE 754 value.
	f = &Flattener{}
	Append(f, float16.Fromfloat32(1.5))
	require.Len(t, f.F, 1)
	assert.InDelta(t, 1.5, f.F[0], 1e-6)
}

func TestFlattenSlice(t *testing.T) {
	f := FlattenSlice([]uint8{1, 2, 3})
	assert.Equal(t, []uint32{1, 2, 3}, f.U)
	assert.Equal(t, ClassUnsigned, f.Class())

	f = FlattenSlice([]float32{0.5, 1.5})
	assert.Equal(t, []float32{0.5, 1.5}, f.F)
	assert.Equal(t, ClassFloat, f.Class())
}

func TestEmptyFlattenerClassIsFloat(t *testing.T) {
	f := &Flattener{}
	assert.Equal(t, ClassFloat, f.Class())
	assert.Equal(t, 0, f.Len())
}
