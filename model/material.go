package model

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// CPUTexture is image data staged in host memory pending GPU upload. Either
// Data holds embedded raw image bytes (PNG/JPEG) or Path names a file on
// disk; Pixels and the dimensions are populated by Decode.
type CPUTexture struct {
	// Name is an identifier for this texture (e.g., "albedo", "normal").
	Name string

	// Path is the file path for external textures (empty for embedded).
	Path string

	// Data contains raw image bytes for embedded textures (PNG/JPEG).
	Data []byte

	// Pixels is the decoded RGBA pixel data, row-major from the top-left.
	Pixels []common.Color

	// Width is the texture width in pixels (populated after Decode).
	Width int

	// Height is the texture height in pixels (populated after Decode).
	Height int
}

// Decode decodes the texture to raw RGBA pixel data, using either the
// embedded Data bytes or loading from Path on disk. Supports PNG and JPEG.
//
// Returns:
//   - error: if the source is missing or the image cannot be decoded
func (t *CPUTexture) Decode() error {
	data := t.Data
	if data == nil {
		if t.Path == "" {
			return fmt.Errorf("texture %q has no embedded data and no path", t.Name)
		}
		fileData, err := os.ReadFile(t.Path)
		if err != nil {
			return fmt.Errorf("failed to read texture file %q: %w", t.Path, err)
		}
		data = fileData
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode texture %q: %w", t.Name, err)
	}

	bounds := img.Bounds()
	t.Width = bounds.Dx()
	t.Height = bounds.Dy()
	t.Pixels = make([]common.Color, 0, t.Width*t.Height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			t.Pixels = append(t.Pixels, common.Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return nil
}

// CPUMaterial holds PBR material properties staged in host memory.
type CPUMaterial struct {
	// Name is the material identifier.
	Name string

	// Albedo is the base color, multiplied with the albedo texture if present.
	Albedo common.Color

	// Metallic factor (0.0 = dielectric, 1.0 = metal).
	Metallic float32

	// Roughness factor (0.0 = smooth, 1.0 = rough).
	Roughness float32

	// Emissive color added after lighting.
	Emissive common.Color

	// AlbedoTexture holds staged albedo texture data (if present).
	AlbedoTexture *CPUTexture

	// NormalTexture holds staged normal map data (if present).
	NormalTexture *CPUTexture

	// MetallicRoughnessTexture holds staged metallic (B) and roughness (G)
	// channel data (if present).
	MetallicRoughnessTexture *CPUTexture
}

// DefaultMaterial returns an opaque white dielectric material.
func DefaultMaterial() CPUMaterial {
	return CPUMaterial{
		Name:      "default",
		Albedo:    common.ColorWhite,
		Metallic:  0.0,
		Roughness: 1.0,
		Emissive:  common.Color{R: 0, G: 0, B: 0, A: 255},
	}
}
