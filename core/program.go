package core

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// programImpl is the implementation of the Program interface.
type programImpl struct {
	ctx *Context
	id  uint32

	// uniforms maps active uniform names to their locations, resolved once at
	// link time. Array uniforms are stored without the trailing "[0]".
	uniforms map[string]UniformLocation
	// attributes maps active attribute names to their indices.
	attributes map[string]uint32
}

// Program wraps a linked GL shader program. It resolves and caches the
// program's active uniform and attribute bindings at link time, so sending to
// a name the shader never uses surfaces as an UnusedUniformError instead of a
// silent no-op.
type Program interface {
	// ID returns the raw GL program object name.
	//
	// Returns:
	//   - uint32: the GL program id
	ID() uint32

	// Use binds the program to the context for subsequent uniform sends and
	// draws.
	Use()

	// UniformLocation resolves an active uniform by name.
	//
	// Parameters:
	//   - name: the uniform's name as declared in the shader
	//
	// Returns:
	//   - UniformLocation: the location to dispatch against
	//   - error: *UnusedUniformError if the shader does not use the uniform
	UniformLocation(name string) (UniformLocation, error)

	// AttributeIndex resolves an active vertex attribute by name.
	//
	// Parameters:
	//   - name: the attribute's name as declared in the vertex shader
	//
	// Returns:
	//   - uint32: the attribute index for vertex attrib pointers
	//   - error: *UnusedAttributeError if the shader does not use the attribute
	AttributeIndex(name string) (uint32, error)

	// UsesUniform reports whether the shader declares and uses the uniform.
	UsesUniform(name string) bool

	// UsesAttribute reports whether the shader declares and uses the attribute.
	UsesAttribute(name string) bool

	// BindVertexBuffer binds buf's data to the named attribute, enabling the
	// attribute array with the buffer's wire type and component count.
	//
	// Parameters:
	//   - name: the attribute name
	//   - buf: the vertex buffer to source from
	//
	// Returns:
	//   - error: *UnusedAttributeError if the attribute is not active
	BindVertexBuffer(name string, buf *VertexBuffer) error

	// Destroy deletes the GL program object. The Program must not be used
	// afterwards.
	Destroy()
}

// Ensure programImpl implements Program.
var _ Program = &programImpl{}

// NewProgram compiles the vertex and fragment sources, links them and caches
// the program's active uniform and attribute bindings.
//
// Parameters:
//   - ctx: the GL context
//   - vertexSrc: GLSL vertex shader source (without trailing NUL)
//   - fragmentSrc: GLSL fragment shader source (without trailing NUL)
//
// Returns:
//   - Program: the linked program
//   - error: *ShaderCompilationError, *ShaderLinkError, or a creation error
func NewProgram(ctx *Context, vertexSrc, fragmentSrc string) (Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, "vertex", vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, "fragment", fragmentSrc)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}

	id := gl.CreateProgram()
	if id == 0 {
		gl.DeleteShader(vs)
		gl.DeleteShader(fs)
		return nil, fmt.Errorf("failed creating program: %w", ctx.Error())
	}
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	// Shaders are owned by the program after linking.
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(id)
		gl.DeleteProgram(id)
		return nil, &ShaderLinkError{Log: log}
	}

	p := &programImpl{
		ctx:        ctx,
		id:         id,
		uniforms:   make(map[string]UniformLocation),
		attributes: make(map[string]uint32),
	}
	p.resolveBindings()
	return p, nil
}

// compileShader compiles one shader stage and returns its object name.
func compileShader(stage uint32, stageName, src string) (uint32, error) {
	shader := gl.CreateShader(stage)
	sources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, sources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logBuf := strings.Repeat("\x00", int(logLength)+1)
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logBuf))
		gl.DeleteShader(shader)
		return 0, &ShaderCompilationError{Stage: stageName, Log: strings.TrimRight(logBuf, "\x00")}
	}
	return shader, nil
}

// programInfoLog fetches the link info log for a program object.
func programInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	logBuf := strings.Repeat("\x00", int(logLength)+1)
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(logBuf))
	return strings.TrimRight(logBuf, "\x00")
}

// resolveBindings enumerates the program's active uniforms and attributes
// once, so every later send is a map lookup.
func (p *programImpl) resolveBindings() {
	var count int32
	var nameBuf [256]uint8

	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORMS, &count)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(p.id, uint32(i), int32(len(nameBuf)), &length, &size, &xtype, &nameBuf[0])
		name := string(nameBuf[:length])
		// Array uniforms report as "name[0]"; resolve and store the bare name.
		name = strings.TrimSuffix(name, "[0]")
		loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		if loc >= 0 {
			p.uniforms[name] = UniformLocation(loc)
		}
	}

	gl.GetProgramiv(p.id, gl.ACTIVE_ATTRIBUTES, &count)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(p.id, uint32(i), int32(len(nameBuf)), &length, &size, &xtype, &nameBuf[0])
		name := string(nameBuf[:length])
		idx := gl.GetAttribLocation(p.id, gl.Str(name+"\x00"))
		if idx >= 0 {
			p.attributes[name] = uint32(idx)
		}
	}
}

func (p *programImpl) ID() uint32 {
	return p.id
}

func (p *programImpl) Use() {
	gl.UseProgram(p.id)
}

func (p *programImpl) UniformLocation(name string) (UniformLocation, error) {
	loc, ok := p.uniforms[name]
	if !ok {
		return 0, &UnusedUniformError{Name: name}
	}
	return loc, nil
}

func (p *programImpl) AttributeIndex(name string) (uint32, error) {
	idx, ok := p.attributes[name]
	if !ok {
		return 0, &UnusedAttributeError{Name: name}
	}
	return idx, nil
}

func (p *programImpl) UsesUniform(name string) bool {
	_, ok := p.uniforms[name]
	return ok
}

func (p *programImpl) UsesAttribute(name string) bool {
	_, ok := p.attributes[name]
	return ok
}

func (p *programImpl) BindVertexBuffer(name string, buf *VertexBuffer) error {
	idx, err := p.AttributeIndex(name)
	if err != nil {
		return err
	}
	buf.bindAttribute(idx)
	return nil
}

func (p *programImpl) Destroy() {
	gl.DeleteProgram(p.id)
	p.id = 0
}

// Uniform sends a single composite value to the named uniform of p. The
// program must be in use.
//
// Parameters:
//   - ctx: the GL context
//   - p: the program whose uniform is targeted
//   - name: the uniform name
//   - value: the value to send
//
// Returns:
//   - error: *UnusedUniformError or *UnsupportedUniformTypeError
func Uniform[T common.DataType](ctx *Context, p Program, name string, value T) error {
	return UniformArray(ctx, p, name, []T{value})
}

// UniformArray sends an array of composite values to the named uniform of p.
func UniformArray[T common.DataType](ctx *Context, p Program, name string, values []T) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	return SendUniform(ctx, loc, values)
}

// UniformScalar sends a single primitive scalar to the named uniform of p.
func UniformScalar[T common.Primitive](ctx *Context, p Program, name string, value T) error {
	return UniformScalars(ctx, p, name, []T{value})
}

// UniformScalars sends an array of primitive scalars to the named uniform of p.
func UniformScalars[T common.Primitive](ctx *Context, p Program, name string, values []T) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	return SendScalars(ctx, loc, values)
}
