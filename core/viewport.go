package core

import "github.com/go-gl/gl/v4.1-core/gl"

// Viewport is a rectangle in physical pixels, origin at the bottom-left.
type Viewport struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewViewport returns a viewport covering a width x height area at origin.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height}
}

// AspectRatio returns width/height. Zero-height viewports report 1 to keep
// projection math finite.
func (v Viewport) AspectRatio() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Apply sets the GL viewport to this rectangle.
func (v Viewport) Apply() {
	gl.Viewport(int32(v.X), int32(v.Y), int32(v.Width), int32(v.Height))
}

// ScissorBox restricts clears to a rectangle in physical pixels, origin at
// the bottom-left.
type ScissorBox struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewScissorBox returns a box covering a width x height area at origin.
func NewScissorBox(width, height int) ScissorBox {
	return ScissorBox{Width: width, Height: height}
}

// Intersection returns the overlap of the two boxes. Disjoint boxes produce a
// zero-area result.
func (s ScissorBox) Intersection(other ScissorBox) ScissorBox {
	x := max(s.X, other.X)
	y := max(s.Y, other.Y)
	w := max(min(s.X+s.Width, other.X+other.Width)-x, 0)
	h := max(min(s.Y+s.Height, other.Y+other.Height)-y, 0)
	return ScissorBox{X: x, Y: y, Width: w, Height: h}
}

func (s ScissorBox) apply() {
	gl.Scissor(int32(s.X), int32(s.Y), int32(s.Width), int32(s.Height))
}

// DrawArrays draws count vertices from the bound attribute arrays as
// triangles.
//
// Parameters:
//   - ctx: the GL context
//   - count: vertex count (must describe whole triangles)
//
// Returns:
//   - error: *InvalidNumberOfVerticesError when count is not a multiple of 3
func DrawArrays(ctx *Context, count int) error {
	if count%3 != 0 {
		return &InvalidNumberOfVerticesError{Count: count}
	}
	ctx.countDraw()
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	return nil
}

// DrawElements draws indexed triangles using the given element buffer and the
// bound attribute arrays.
//
// Parameters:
//   - ctx: the GL context
//   - elements: the index buffer
func DrawElements(ctx *Context, elements *ElementBuffer) {
	elements.Bind()
	ctx.countDraw()
	gl.DrawElements(gl.TRIANGLES, int32(elements.Count()), elements.WireType(), nil)
}
