package model

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUTextureDecodeEmbedded(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	tex := &CPUTexture{Name: "test", Data: buf.Bytes()}
	require.NoError(t, tex.Decode())

	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 1, tex.Height)
	require.Len(t, tex.Pixels, 2)
	assert.Equal(t, common.Color{R: 255, G: 0, B: 0, A: 255}, tex.Pixels[0])
	assert.Equal(t, common.Color{R: 0, G: 0, B: 255, A: 255}, tex.Pixels[1])
}

func TestCPUTextureDecodeMissingSource(t *testing.T) {
	tex := &CPUTexture{Name: "empty"}
	err := tex.Decode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no embedded data and no path")
}

func TestDefaultMaterial(t *testing.T) {
	mat := DefaultMaterial()
	assert.Equal(t, common.ColorWhite, mat.Albedo)
	assert.Equal(t, float32(0), mat.Metallic)
	assert.Equal(t, float32(1.0), mat.Roughness)
	assert.Nil(t, mat.AlbedoTexture)
}
