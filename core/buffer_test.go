package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillElementBufferRejectsPartialTriangles(t *testing.T) {
	// Length validation happens before any GL call, so a bare buffer works here.
	b := &ElementBuffer{}
	err := FillElementBuffer(b, []uint16{0, 1, 2, 3})

	var invalid *InvalidNumberOfVerticesError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 4, invalid.Count)
	assert.Contains(t, err.Error(), "divisable by 3")
	assert.Equal(t, 0, b.Count())
}

func TestUniformBlockBufferUpdateErrors(t *testing.T) {
	b := &UniformBlockBuffer{
		offsets: []int{0, 16},
		sizes:   []int{16, 4},
	}

	err := b.Update(5, []float32{1})
	var outOfRange *IndexOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 5, outOfRange.Index)
	assert.Equal(t, 1, outOfRange.Max)

	err = b.Update(1, []float32{1, 2, 3})
	var badLength *InvalidUniformBufferElementLengthError
	require.ErrorAs(t, err, &badLength)
	assert.Equal(t, uint32(1), badLength.Index)
	assert.Equal(t, 3, badLength.Got)
	assert.Equal(t, 4, badLength.Expected)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t,
		"position buffer length must be 9, actual length is 6",
		(&InvalidBufferLengthError{Name: "position", Expected: 9, Actual: 6}).Error())
	assert.Equal(t,
		"invalid size of texture data (got 12 pixels but expected 16 pixels)",
		(&InvalidTextureLengthError{Got: 12, Expected: 16}).Error())
	assert.Equal(t,
		"the uniform lightColor is sent to the shader but not defined or never used",
		(&UnusedUniformError{Name: "lightColor"}).Error())
	assert.Equal(t,
		"the render call requires the normal vertex buffer which is missing on the given mesh",
		(&MissingMeshBufferError{Name: "normal"}).Error())
}
