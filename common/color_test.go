package common

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFlattenNormalizes(t *testing.T) {
	f := &Flattener{}
	Color{R: 255, G: 128, B: 0, A: 255}.Flatten(f)
	require.Len(t, f.F, 4)

	// Channels divide by 255, so precision is within one step of the byte scale.
	delta := 1.0 / 255.0
	assert.InDelta(t, 1.0, f.F[0], delta)
	assert.InDelta(t, 0.50196, f.F[1], delta)
	assert.InDelta(t, 0.0, f.F[2], delta)
	assert.InDelta(t, 1.0, f.F[3], delta)

	// Flattened colors dispatch as floats regardless of their byte storage.
	assert.Equal(t, ClassFloat, f.Class())
}

func TestColorStorageFormat(t *testing.T) {
	// Color textures and buffers store as normalized RGBA8 with byte transfer.
	f := Color{}.DataFormat()
	assert.Equal(t, int32(gl.RGBA8), f.InternalFormat())
	assert.Equal(t, uint32(gl.RGBA), f.ImageFormat())
	assert.Equal(t, uint32(gl.UNSIGNED_BYTE), f.WireType())
	assert.Equal(t, 4, f.SizeBytes())
}

func TestColorToVec4(t *testing.T) {
	v := NewColorRGB(255, 0, 128).ToVec4()
	assert.InDelta(t, 1.0, v.X, 1e-6)
	assert.InDelta(t, 0.0, v.Y, 1e-6)
	assert.InDelta(t, 128.0/255.0, v.Z, 1e-6)
	assert.InDelta(t, 1.0, v.W, 1e-6)
}
