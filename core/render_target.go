package core

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTarget is a framebuffer with an optional color attachment and an
// optional depth attachment. The zero-framebuffer screen target is available
// through ScreenRenderTarget.
type RenderTarget struct {
	ctx    *Context
	fbo    uint32
	color  *Texture2D
	depth  *DepthTexture2D
	width  int
	height int
}

// NewRenderTarget creates a framebuffer rendering into the given attachments.
// At least one attachment must be provided and their dimensions must agree.
//
// Parameters:
//   - ctx: the GL context
//   - color: the color attachment, or nil for depth-only rendering
//   - depth: the depth attachment, or nil for color-only rendering
//
// Returns:
//   - *RenderTarget: the target
//   - error: non-nil when attachments are missing/mismatched or the
//     framebuffer is incomplete
func NewRenderTarget(ctx *Context, color *Texture2D, depth *DepthTexture2D) (*RenderTarget, error) {
	if color == nil && depth == nil {
		return nil, fmt.Errorf("failed creating a new render target: no attachments")
	}
	width, height := 0, 0
	if color != nil {
		width, height = color.width, color.height
	}
	if depth != nil {
		if color != nil && (depth.width != width || depth.height != height) {
			return nil, fmt.Errorf("failed creating a new render target: attachment sizes differ (%dx%d vs %dx%d)",
				width, height, depth.width, depth.height)
		}
		width, height = depth.width, depth.height
	}

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	if color != nil {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, color.id, 0)
		gl.DrawBuffer(gl.COLOR_ATTACHMENT0)
	} else {
		gl.DrawBuffer(gl.NONE)
		gl.ReadBuffer(gl.NONE)
	}
	if depth != nil {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, depth.id, 0)
	}
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &fbo)
		return nil, fmt.Errorf("failed creating a new render target: framebuffer incomplete (status 0x%04x)", status)
	}
	return &RenderTarget{ctx: ctx, fbo: fbo, color: color, depth: depth, width: width, height: height}, nil
}

// ScreenRenderTarget returns the window's default framebuffer as a render
// target. It carries no texture attachments; reads come from the back buffer.
//
// Parameters:
//   - ctx: the GL context
//   - width, height: current framebuffer size in pixels
//
// Returns:
//   - *RenderTarget: the screen target
func ScreenRenderTarget(ctx *Context, width, height int) *RenderTarget {
	return &RenderTarget{ctx: ctx, fbo: 0, width: width, height: height}
}

// Width returns the target width in pixels.
func (r *RenderTarget) Width() int {
	return r.width
}

// Height returns the target height in pixels.
func (r *RenderTarget) Height() int {
	return r.height
}

// Clear clears the target's color and depth to the given values.
//
// Parameters:
//   - color: clear color
//   - depth: clear depth in [0, 1]
func (r *RenderTarget) Clear(color common.Color, depth float32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	v := color.ToVec4()
	gl.ClearColor(v.X, v.Y, v.Z, v.W)
	gl.ClearDepth(float64(depth))
	mask := uint32(gl.DEPTH_BUFFER_BIT)
	if r.color != nil || r.fbo == 0 {
		mask |= gl.COLOR_BUFFER_BIT
	}
	gl.Clear(mask)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ClearPartially clears only the given scissor rectangle of the target.
//
// Parameters:
//   - scissor: the rectangle to clear
//   - color: clear color
//   - depth: clear depth in [0, 1]
func (r *RenderTarget) ClearPartially(scissor ScissorBox, color common.Color, depth float32) {
	gl.Enable(gl.SCISSOR_TEST)
	scissor.apply()
	r.Clear(color, depth)
	gl.Disable(gl.SCISSOR_TEST)
}

// Write binds the target, applies its full viewport and runs render. Errors
// from the closure bubble to the caller, aborting the rest of the frame work
// the closure would have done.
//
// Parameters:
//   - render: the frame closure issuing draws against this target
//
// Returns:
//   - error: whatever render returns
func (r *RenderTarget) Write(render func() error) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	err := render()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return err
}

// ReadColor reads back the color attachment as packed RGBA8 pixels, bottom
// row first. Only RGBA8 color attachments (and the screen target) support
// reads.
//
// Returns:
//   - []common.Color: width*height pixels
//   - error: ErrReadWrongFormat for non-RGBA8 attachments
func (r *RenderTarget) ReadColor() ([]common.Color, error) {
	if r.fbo != 0 {
		if r.color == nil {
			return nil, ErrReadWrongFormat
		}
		f := r.color.Format()
		if f.Kind != common.KindUint8 || f.Components() != 4 {
			return nil, ErrReadWrongFormat
		}
	}
	pixels := make([]common.Color, r.width*r.height)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.fbo)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(common.SliceToBytes(pixels)))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return pixels, nil
}

// CopyTo blits this target's color and depth into another target of the same
// size, without going through a shader.
//
// Parameters:
//   - dst: the destination target
//
// Returns:
//   - error: non-nil on size mismatch
func (r *RenderTarget) CopyTo(dst *RenderTarget) error {
	if r.width != dst.width || r.height != dst.height {
		return fmt.Errorf("cannot copy %dx%d from a %dx%d texture", dst.width, dst.height, r.width, r.height)
	}
	mask := uint32(0)
	if r.fbo == 0 || r.color != nil {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if r.fbo == 0 || r.depth != nil {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, dst.fbo)
	gl.BlitFramebuffer(0, 0, int32(r.width), int32(r.height), 0, 0, int32(dst.width), int32(dst.height), mask, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	return nil
}

// Destroy deletes the framebuffer object. Attachments are owned by the caller
// and survive.
func (r *RenderTarget) Destroy() {
	if r.fbo != 0 {
		gl.DeleteFramebuffers(1, &r.fbo)
		r.fbo = 0
	}
}
