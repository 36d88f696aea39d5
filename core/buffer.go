package core

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Index is the set of scalar kinds usable as element buffer indices.
type Index interface {
	uint8 | uint16 | uint32
}

// VertexBuffer holds per-vertex attribute data on the GPU. The buffer
// remembers the format of the last fill so programs can bind it to an
// attribute without the caller restating component count or wire type.
type VertexBuffer struct {
	ctx    *Context
	id     uint32
	count  int
	format common.Format
}

// NewVertexBuffer creates an empty vertex buffer object.
//
// Parameters:
//   - ctx: the GL context
//
// Returns:
//   - *VertexBuffer: the buffer
//   - error: non-nil if the GL object could not be created
func NewVertexBuffer(ctx *Context) (*VertexBuffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, fmt.Errorf("failed creating buffer: %w", ctx.Error())
	}
	return &VertexBuffer{ctx: ctx, id: id}, nil
}

// FillVertexBuffer uploads an array of composite values (vectors, colors) to
// the buffer. The data crosses the boundary as a raw byte view of the host
// slice - no copy on the CPU side, ownership stays with the caller.
//
// Parameters:
//   - b: the destination buffer
//   - data: the values to upload
func FillVertexBuffer[T common.DataType](b *VertexBuffer, data []T) {
	var zero T
	b.upload(common.SliceToBytes(data), len(data), zero.DataFormat())
}

// FillVertexBufferScalars uploads an array of primitive scalars to the buffer.
func FillVertexBufferScalars[T common.Primitive](b *VertexBuffer, data []T) {
	b.upload(common.SliceToBytes(data), len(data), common.FormatOf[T]())
}

func (b *VertexBuffer) upload(bytes []byte, count int, format common.Format) {
	b.count = count
	b.format = format
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(bytes), gl.Ptr(bytes), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	b.ctx.countBufferUpload()
}

// Count returns the number of logical values in the buffer.
func (b *VertexBuffer) Count() int {
	return b.count
}

// Format returns the format of the last filled data.
func (b *VertexBuffer) Format() common.Format {
	return b.format
}

// bindAttribute points the given attribute index at this buffer's data.
// Integer kinds bind through the integer attribute pointer so they arrive in
// the shader unconverted; float kinds (and normalized u8 color data) go
// through the float pointer.
func (b *VertexBuffer) bindAttribute(index uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.EnableVertexAttribArray(index)
	size := int32(b.format.Components())
	wire := b.format.WireType()
	switch b.format.Kind.Class() {
	case common.ClassFloat:
		gl.VertexAttribPointer(index, size, wire, false, 0, nil)
	default:
		if b.format.Kind == common.KindUint8 {
			// u8 data stores normalized (R8 family); present it as floats.
			gl.VertexAttribPointer(index, size, wire, true, 0, nil)
		} else {
			gl.VertexAttribIPointer(index, size, wire, 0, nil)
		}
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Destroy deletes the GL buffer object.
func (b *VertexBuffer) Destroy() {
	gl.DeleteBuffers(1, &b.id)
	b.id = 0
	b.count = 0
}

// ElementBuffer holds triangle indices on the GPU.
type ElementBuffer struct {
	ctx   *Context
	id    uint32
	count int
	wire  uint32
}

// NewElementBuffer creates an empty element (index) buffer object.
func NewElementBuffer(ctx *Context) (*ElementBuffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, fmt.Errorf("failed creating buffer: %w", ctx.Error())
	}
	return &ElementBuffer{ctx: ctx, id: id}, nil
}

// FillElementBuffer uploads an index array. The index width is recorded so
// draws pass the right wire type.
//
// Parameters:
//   - b: the destination buffer
//   - data: the indices to upload; length must describe whole triangles
//
// Returns:
//   - error: *InvalidNumberOfVerticesError when len(data) is not a multiple of 3
func FillElementBuffer[T Index](b *ElementBuffer, data []T) error {
	if len(data)%3 != 0 {
		return &InvalidNumberOfVerticesError{Count: len(data)}
	}
	b.count = len(data)
	b.wire = common.KindOf[T]().WireType()
	bytes := common.SliceToBytes(data)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(bytes), gl.Ptr(bytes), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	b.ctx.countBufferUpload()
	return nil
}

// Count returns the number of indices in the buffer.
func (b *ElementBuffer) Count() int {
	return b.count
}

// Bind binds the element buffer for an indexed draw.
func (b *ElementBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
}

// WireType returns the GL index type for draw calls.
func (b *ElementBuffer) WireType() uint32 {
	return b.wire
}

// Destroy deletes the GL buffer object.
func (b *ElementBuffer) Destroy() {
	gl.DeleteBuffers(1, &b.id)
	b.id = 0
	b.count = 0
}

// UniformBlockBuffer is a uniform buffer object carved into fixed-length flat
// float element slots, declared up front. Each slot updates independently with
// strict length checking against its declared size.
type UniformBlockBuffer struct {
	ctx     *Context
	id      uint32
	offsets []int
	sizes   []int
}

// NewUniformBlockBuffer allocates a uniform buffer with one slot per entry of
// sizes, each size counted in float scalars.
//
// Parameters:
//   - ctx: the GL context
//   - sizes: flat float length of each element slot
//
// Returns:
//   - *UniformBlockBuffer: the buffer, zero-initialized
//   - error: non-nil if the GL object could not be created
func NewUniformBlockBuffer(ctx *Context, sizes ...int) (*UniformBlockBuffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, fmt.Errorf("failed creating buffer: %w", ctx.Error())
	}
	offsets := make([]int, len(sizes))
	total := 0
	for i, s := range sizes {
		offsets[i] = total
		total += s
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, id)
	gl.BufferData(gl.UNIFORM_BUFFER, total*4, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return &UniformBlockBuffer{ctx: ctx, id: id, offsets: offsets, sizes: append([]int(nil), sizes...)}, nil
}

// Update replaces the data of one element slot.
//
// Parameters:
//   - index: the slot to update
//   - data: flat float data, length must equal the slot's declared size
//
// Returns:
//   - error: *IndexOutOfRangeError or *InvalidUniformBufferElementLengthError
func (b *UniformBlockBuffer) Update(index uint32, data []float32) error {
	if int(index) >= len(b.sizes) {
		return &IndexOutOfRangeError{Index: int(index), Max: len(b.sizes) - 1}
	}
	if len(data) != b.sizes[index] {
		return &InvalidUniformBufferElementLengthError{Index: index, Got: len(data), Expected: b.sizes[index]}
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.id)
	gl.BufferSubData(gl.UNIFORM_BUFFER, b.offsets[index]*4, len(data)*4, gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	b.ctx.countBufferUpload()
	return nil
}

// Bind attaches the buffer to a uniform block binding point.
func (b *UniformBlockBuffer) Bind(bindingPoint uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindingPoint, b.id)
}

// Destroy deletes the GL buffer object.
func (b *UniformBlockBuffer) Destroy() {
	gl.DeleteBuffers(1, &b.id)
	b.id = 0
}
