package common

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestBaseKindSizeAndClass(t *testing.T) {
	tests := []struct {
		kind  BaseKind
		size  int
		class Class
	}{
		{KindUint8, 1, ClassUnsigned},
		{KindUint16, 2, ClassUnsigned},
		{KindUint32, 4, ClassUnsigned},
		{KindInt8, 1, ClassSigned},
		{KindInt16, 2, ClassSigned},
		{KindInt32, 4, ClassSigned},
		{KindFloat16, 2, ClassFloat},
		{KindFloat32, 4, ClassFloat},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.kind.Size(), "size of %s", tt.kind)
		assert.Equal(t, tt.class, tt.kind.Class(), "class of %s", tt.kind)
	}
}

func TestBaseKindPromote(t *testing.T) {
	assert.Equal(t, KindUint32, KindUint8.Promote())
	assert.Equal(t, KindUint32, KindUint16.Promote())
	assert.Equal(t, KindInt32, KindInt8.Promote())
	assert.Equal(t, KindInt32, KindInt16.Promote())
	assert.Equal(t, KindFloat32, KindFloat16.Promote())

	// 32-bit kinds are their own promotion target.
	assert.Equal(t, KindUint32, KindUint32.Promote())
	assert.Equal(t, KindInt32, KindInt32.Promote())
	assert.Equal(t, KindFloat32, KindFloat32.Promote())
}

func TestStorageFormatDeterministic(t *testing.T) {
	// The same (kind, components) input always resolves to the same format tag.
	for k := KindUint8; k <= KindFloat32; k++ {
		for c := 1; c <= 4; c++ {
			first := k.StorageFormat(c)
			assert.Equal(t, first, k.StorageFormat(c), "kind %s components %d", k, c)
		}
	}
}

func TestStorageFormatKnownValues(t *testing.T) {
	// 8-bit unsigned resolves to the normalized R8 family.
	assert.Equal(t, int32(gl.R8), KindUint8.StorageFormat(1))
	assert.Equal(t, int32(gl.RGBA8), KindUint8.StorageFormat(4))

	// Wider integers keep their exact-width integer formats.
	assert.Equal(t, int32(gl.R16UI), KindUint16.StorageFormat(1))
	assert.Equal(t, int32(gl.RGB32UI), KindUint32.StorageFormat(3))
	assert.Equal(t, int32(gl.RG8I), KindInt8.StorageFormat(2))
	assert.Equal(t, int32(gl.RGBA16I), KindInt16.StorageFormat(4))
	assert.Equal(t, int32(gl.R32I), KindInt32.StorageFormat(1))

	// Floats resolve to the float families.
	assert.Equal(t, int32(gl.RG16F), KindFloat16.StorageFormat(2))
	assert.Equal(t, int32(gl.RGBA32F), KindFloat32.StorageFormat(4))
}

func TestStorageFormatPanicsOutsideComponentRange(t *testing.T) {
	assert.Panics(t, func() { KindFloat32.StorageFormat(0) })
	assert.Panics(t, func() { KindFloat32.StorageFormat(5) })
	assert.Panics(t, func() { ImageFormat(0) })
	assert.Panics(t, func() { ImageFormat(5) })
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, uint32(gl.RED), ImageFormat(1))
	assert.Equal(t, uint32(gl.RG), ImageFormat(2))
	assert.Equal(t, uint32(gl.RGB), ImageFormat(3))
	assert.Equal(t, uint32(gl.RGBA), ImageFormat(4))
}

func TestRankComponents(t *testing.T) {
	assert.Equal(t, 1, RankScalar.Components())
	assert.Equal(t, 2, RankVec2.Components())
	assert.Equal(t, 3, RankVec3.Components())
	assert.Equal(t, 4, RankVec4.Components())
	assert.Equal(t, 4, RankMat2.Components())
	assert.Equal(t, 9, RankMat3.Components())
	assert.Equal(t, 16, RankMat4.Components())

	assert.False(t, RankVec4.IsMatrix())
	assert.True(t, RankMat2.IsMatrix())
	assert.True(t, RankMat4.IsMatrix())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUint8, KindOf[uint8]())
	assert.Equal(t, KindUint16, KindOf[uint16]())
	assert.Equal(t, KindUint32, KindOf[uint32]())
	assert.Equal(t, KindInt8, KindOf[int8]())
	assert.Equal(t, KindInt16, KindOf[int16]())
	assert.Equal(t, KindInt32, KindOf[int32]())
	assert.Equal(t, KindFloat16, KindOf[float16.Float16]())
	assert.Equal(t, KindFloat32, KindOf[float32]())
}

func TestFormatDerivedTags(t *testing.T) {
	f := Vec3[float32]{}.DataFormat()
	require.Equal(t, Format{Kind: KindFloat32, Rank: RankVec3}, f)
	assert.Equal(t, 3, f.Components())
	assert.Equal(t, int32(gl.RGB32F), f.InternalFormat())
	assert.Equal(t, uint32(gl.RGB), f.ImageFormat())
	assert.Equal(t, uint32(gl.FLOAT), f.WireType())
	assert.Equal(t, 12, f.SizeBytes())
	assert.Equal(t, "vec3<float32>", f.String())

	// A Mat2 resolves its storage through 4 components, like a quad-channel type.
	m := Mat2[float32]{}.DataFormat()
	assert.Equal(t, int32(gl.RGBA32F), m.InternalFormat())
	assert.Equal(t, "mat2<float32>", m.String())

	s := FormatOf[uint16]()
	assert.Equal(t, "uint16", s.String())
	assert.Equal(t, 2, s.SizeBytes())
}
