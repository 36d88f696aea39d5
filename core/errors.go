// package core provides typed mid-level wrappers over the raw OpenGL binding:
// context, shader programs, uniform transfer, buffers, textures and render
// targets. It can be combined with low-level gl calls as long as any state
// changes are reset.
package core

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// Sentinel errors for conditions carrying no parameters.
var (
	// ErrReadWrongFormat: render target color reads only support RGBA targets.
	ErrReadWrongFormat = errors.New("cannot read color from anything else but an RGBA texture")
	// ErrFailedComputingTangents: tangent generation needs normals and uv coordinates.
	ErrFailedComputingTangents = errors.New("mesh must have both normals and uv coordinates to be able to compute tangents")
)

func className(c common.Class) string {
	switch c {
	case common.ClassUnsigned:
		return "unsigned integer"
	case common.ClassSigned:
		return "signed integer"
	default:
		return "float"
	}
}

// The error types below are returned for recoverable mismatches between host
// data and GPU-side expectations. Internal invariant violations (component
// counts outside 1-4) panic instead; see common.ImageFormat.

// ShaderCompilationError reports a failed shader compile with the driver's log.
type ShaderCompilationError struct {
	// Stage is "vertex" or "fragment".
	Stage string
	// Log is the driver's info log.
	Log string
}

func (e *ShaderCompilationError) Error() string {
	return fmt.Sprintf("failed compiling %s shader: %s", e.Stage, e.Log)
}

// ShaderLinkError reports a failed program link with the driver's log.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link shader program: %s", e.Log)
}

// UnusedUniformError is returned when a uniform is sent to a shader that does
// not declare it, or declares it but the compiler optimized it out.
type UnusedUniformError struct {
	Name string
}

func (e *UnusedUniformError) Error() string {
	return fmt.Sprintf("the uniform %s is sent to the shader but not defined or never used", e.Name)
}

// UnusedAttributeError is returned when a vertex attribute is bound that the
// shader does not declare or never uses.
type UnusedAttributeError struct {
	Name string
}

func (e *UnusedAttributeError) Error() string {
	return fmt.Sprintf("the attribute %s is sent to the shader but not defined or never used", e.Name)
}

// UnsupportedUniformTypeError is returned when no transfer entry point exists
// for a (kind, rank) pair. The raw binding only has float matrix uploads, so
// integer matrices land here instead of being silently accepted.
type UnsupportedUniformTypeError struct {
	Class common.Class
	Rank  common.Rank
}

func (e *UnsupportedUniformTypeError) Error() string {
	return fmt.Sprintf("unsupported uniform type: %s data with rank %s has no transfer entry point", className(e.Class), e.Rank)
}

// InvalidBufferLengthError reports a host array whose length does not match
// the layout a draw or upload expects.
type InvalidBufferLengthError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *InvalidBufferLengthError) Error() string {
	return fmt.Sprintf("%s buffer length must be %d, actual length is %d", e.Name, e.Expected, e.Actual)
}

// InvalidTextureLengthError reports pixel data whose length does not match the
// texture dimensions.
type InvalidTextureLengthError struct {
	Got      int
	Expected int
}

func (e *InvalidTextureLengthError) Error() string {
	return fmt.Sprintf("invalid size of texture data (got %d pixels but expected %d pixels)", e.Got, e.Expected)
}

// InvalidUniformBufferElementLengthError reports a uniform block element whose
// flat length does not match the declared layout slot.
type InvalidUniformBufferElementLengthError struct {
	Index    uint32
	Got      int
	Expected int
}

func (e *InvalidUniformBufferElementLengthError) Error() string {
	return fmt.Sprintf("data for element at index %d has length %d but a length of %d was expected", e.Index, e.Got, e.Expected)
}

// IndexOutOfRangeError reports an index outside [0, Max].
type IndexOutOfRangeError struct {
	Index int
	Max   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("the index %d is outside the expected range [0, %d]", e.Index, e.Max)
}

// MissingMeshBufferError reports a draw that requires a vertex buffer the mesh
// does not carry.
type MissingMeshBufferError struct {
	Name string
}

func (e *MissingMeshBufferError) Error() string {
	return fmt.Sprintf("the render call requires the %s vertex buffer which is missing on the given mesh", e.Name)
}

// InvalidNumberOfVerticesError reports a triangle mesh whose vertex count is
// not divisible by 3.
type InvalidNumberOfVerticesError struct {
	Count int
}

func (e *InvalidNumberOfVerticesError) Error() string {
	return fmt.Sprintf("the number of vertices must be divisable by 3, actual count is %d", e.Count)
}
