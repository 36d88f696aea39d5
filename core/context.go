package core

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Context owns the process-wide GL function pointers and the per-context
// bookkeeping the higher layers share. It is NOT safe for concurrent use:
// command submission order is significant, so callers must serialize all
// dispatches against the same context externally. Nothing here blocks or
// suspends - every call runs to completion on the calling thread.
//
// The wrapper is intentionally thin. Callers may interleave raw gl calls with
// the typed layers, as long as any state they change is reset afterwards.
type Context struct {
	// Version is the GL_VERSION string reported by the driver.
	Version string

	// vao is the context-wide vertex array object. The core profile refuses
	// attribute pointers without one bound, so a single shared VAO is created
	// up front and stays bound for the context's lifetime.
	vao uint32

	// frame counters, reset by ResetStats; read by the stats package
	drawCalls        uint64
	uniformTransfers uint64
	bufferUploads    uint64
	textureUploads   uint64
}

// NewContext loads the OpenGL function pointers and wraps the current
// context. The calling goroutine must hold the thread that owns the GL
// context (window.NewWindow arranges this via LockOSThread).
//
// Returns:
//   - *Context: the wrapped context
//   - error: non-nil if the function pointers could not be loaded
func NewContext() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed creating context with error: %w", err)
	}
	c := &Context{
		Version: gl.GoStr(gl.GetString(gl.VERSION)),
	}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	return c, nil
}

// Error polls the GL error flag and maps it to a Go error. Returns nil when no
// error has been recorded since the last poll.
//
// Returns:
//   - error: the oldest recorded GL error, or nil
func (c *Context) Error() error {
	switch code := gl.GetError(); code {
	case gl.NO_ERROR:
		return nil
	case gl.INVALID_ENUM:
		return errors.New("gl: invalid enum")
	case gl.INVALID_VALUE:
		return errors.New("gl: invalid value")
	case gl.INVALID_OPERATION:
		return errors.New("gl: invalid operation")
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return errors.New("gl: invalid framebuffer operation")
	case gl.OUT_OF_MEMORY:
		return errors.New("gl: out of memory")
	default:
		return fmt.Errorf("gl: error code 0x%04x", code)
	}
}

// Stats is a snapshot of the context's per-frame submission counters.
type Stats struct {
	DrawCalls        uint64
	UniformTransfers uint64
	BufferUploads    uint64
	TextureUploads   uint64
}

// Stats returns the counters accumulated since the last ResetStats.
func (c *Context) Stats() Stats {
	return Stats{
		DrawCalls:        c.drawCalls,
		UniformTransfers: c.uniformTransfers,
		BufferUploads:    c.bufferUploads,
		TextureUploads:   c.textureUploads,
	}
}

// ResetStats zeroes the submission counters. Typically called once per frame
// by the stats ticker.
func (c *Context) ResetStats() {
	c.drawCalls = 0
	c.uniformTransfers = 0
	c.bufferUploads = 0
	c.textureUploads = 0
}

func (c *Context) countDraw() {
	if c != nil {
		c.drawCalls++
	}
}

func (c *Context) countUniform() {
	if c != nil {
		c.uniformTransfers++
	}
}

func (c *Context) countBufferUpload() {
	if c != nil {
		c.bufferUploads++
	}
}

func (c *Context) countTextureUpload() {
	if c != nil {
		c.textureUploads++
	}
}
