package core

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Interpolation selects a texture filtering mode.
type Interpolation int32

const (
	// InterpolationNearest selects nearest-neighbor filtering.
	InterpolationNearest Interpolation = gl.NEAREST
	// InterpolationLinear selects linear filtering.
	InterpolationLinear Interpolation = gl.LINEAR
)

// Wrapping selects the wrap behavior of texture coordinates outside [0, 1].
type Wrapping int32

const (
	// WrapClampToEdge clamps coordinates to the edge texel.
	WrapClampToEdge Wrapping = gl.CLAMP_TO_EDGE
	// WrapRepeat tiles the texture.
	WrapRepeat Wrapping = gl.REPEAT
	// WrapMirroredRepeat tiles the texture, mirroring every other tile.
	WrapMirroredRepeat Wrapping = gl.MIRRORED_REPEAT
)

// textureParams holds the configurable texture state, set by TextureOption
// values before creation.
type textureParams struct {
	minFilter Interpolation
	magFilter Interpolation
	wrapS     Wrapping
	wrapT     Wrapping
	mipmaps   bool
}

// TextureOption configures texture creation.
type TextureOption func(*textureParams)

// WithFilter sets the minification and magnification filters.
//
// Parameters:
//   - minFilter: filter for minification
//   - magFilter: filter for magnification
//
// Returns:
//   - TextureOption: a function that sets the filters
func WithFilter(minFilter, magFilter Interpolation) TextureOption {
	return func(p *textureParams) {
		p.minFilter = minFilter
		p.magFilter = magFilter
	}
}

// WithWrap sets the wrap mode for both texture coordinate axes.
//
// Parameters:
//   - s: wrap mode along U
//   - t: wrap mode along V
//
// Returns:
//   - TextureOption: a function that sets the wrap modes
func WithWrap(s, t Wrapping) TextureOption {
	return func(p *textureParams) {
		p.wrapS = s
		p.wrapT = t
	}
}

// WithMipmaps enables mipmap generation after upload and mipmapped
// minification filtering.
//
// Returns:
//   - TextureOption: a function that enables mipmaps
func WithMipmaps() TextureOption {
	return func(p *textureParams) {
		p.mipmaps = true
	}
}

// Texture2D is a 2D texture whose storage and transfer formats derive from the
// pixel value type it was created with: channel count picks the transfer
// format (red/RG/RGB/RGBA), kind and channel count pick the sized internal
// format.
type Texture2D struct {
	ctx    *Context
	id     uint32
	width  int
	height int
	format common.Format
}

// NewTexture2D creates a texture from composite pixel values (vectors of any
// primitive kind, or Color for classic normalized RGBA8).
//
// Parameters:
//   - ctx: the GL context
//   - width, height: texture dimensions in pixels
//   - pixels: exactly width*height values
//   - options: filtering/wrapping/mipmap configuration
//
// Returns:
//   - *Texture2D: the texture
//   - error: *InvalidTextureLengthError on a pixel count mismatch, or a
//     creation error
func NewTexture2D[T common.DataType](ctx *Context, width, height int, pixels []T, options ...TextureOption) (*Texture2D, error) {
	var zero T
	return newTexture2D(ctx, width, height, common.SliceToBytes(pixels), len(pixels), zero.DataFormat(), options)
}

// NewTexture2DScalars creates a single-channel texture from primitive scalar
// pixels.
func NewTexture2DScalars[T common.Primitive](ctx *Context, width, height int, pixels []T, options ...TextureOption) (*Texture2D, error) {
	return newTexture2D(ctx, width, height, common.SliceToBytes(pixels), len(pixels), common.FormatOf[T](), options)
}

func newTexture2D(ctx *Context, width, height int, bytes []byte, pixelCount int, format common.Format, options []TextureOption) (*Texture2D, error) {
	if pixelCount != width*height {
		return nil, &InvalidTextureLengthError{Got: pixelCount, Expected: width * height}
	}

	params := textureParams{
		minFilter: InterpolationLinear,
		magFilter: InterpolationLinear,
		wrapS:     WrapClampToEdge,
		wrapT:     WrapClampToEdge,
	}
	for _, option := range options {
		option(&params)
	}
	// Integer formats cannot be linearly filtered.
	if format.Kind.Class() != common.ClassFloat && format.Kind != common.KindUint8 {
		params.minFilter = InterpolationNearest
		params.magFilter = InterpolationNearest
	}

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, fmt.Errorf("failed creating a new texture: %w", ctx.Error())
	}

	t := &Texture2D{ctx: ctx, id: id, width: width, height: height, format: format}
	gl.BindTexture(gl.TEXTURE_2D, id)
	// Row alignment: tight rows regardless of width*channels*size.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, format.InternalFormat(),
		int32(width), int32(height), 0,
		format.ImageFormat(), format.WireType(), gl.Ptr(bytes),
	)
	ctx.countTextureUpload()

	minFilter := params.minFilter
	if params.mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		if minFilter == InterpolationLinear {
			minFilter = gl.LINEAR_MIPMAP_LINEAR
		} else {
			minFilter = gl.NEAREST_MIPMAP_NEAREST
		}
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(minFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(params.magFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(params.wrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(params.wrapT))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Width returns the texture width in pixels.
func (t *Texture2D) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture2D) Height() int {
	return t.height
}

// Format returns the pixel value format the texture was created with.
func (t *Texture2D) Format() common.Format {
	return t.format
}

// BindToUnit binds the texture to a texture unit for sampling.
//
// Parameters:
//   - unit: the texture unit index (0-based)
func (t *Texture2D) BindToUnit(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Destroy deletes the GL texture object.
func (t *Texture2D) Destroy() {
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}

// DepthTexture2D is a depth-renderable texture used as a render target
// attachment.
type DepthTexture2D struct {
	ctx    *Context
	id     uint32
	width  int
	height int
}

// NewDepthTexture2D creates a 32-bit float depth texture.
//
// Parameters:
//   - ctx: the GL context
//   - width, height: texture dimensions in pixels
//
// Returns:
//   - *DepthTexture2D: the texture
//   - error: non-nil if the GL object could not be created
func NewDepthTexture2D(ctx *Context, width, height int) (*DepthTexture2D, error) {
	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, fmt.Errorf("failed creating a new texture: %w", ctx.Error())
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT32F, int32(width), int32(height), 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &DepthTexture2D{ctx: ctx, id: id, width: width, height: height}, nil
}

// Width returns the texture width in pixels.
func (t *DepthTexture2D) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *DepthTexture2D) Height() int {
	return t.height
}

// BindToUnit binds the depth texture to a texture unit for sampling.
func (t *DepthTexture2D) BindToUnit(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Destroy deletes the GL texture object.
func (t *DepthTexture2D) Destroy() {
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
