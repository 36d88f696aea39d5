// package common contains common types that are used throughout this library. They are not interface-wrapped structs, just plain types that express
// the value-type system shared by the uniform, buffer and texture layers.
package common

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/x448/float16"
)

// Primitive is the closed set of scalar kinds that can cross the GPU boundary.
// The set is deliberately exact (no ~approximation elements): classification is
// resolved from the concrete type, and a named type wrapping one of these would
// silently classify as its underlying kind otherwise.
type Primitive interface {
	uint8 | uint16 | uint32 | int8 | int16 | int32 | float16.Float16 | float32
}

// BaseKind identifies a GPU-compatible scalar numeric kind.
type BaseKind uint8

const (
	// KindUint8 is an 8-bit unsigned integer.
	KindUint8 BaseKind = iota
	// KindUint16 is a 16-bit unsigned integer.
	KindUint16
	// KindUint32 is a 32-bit unsigned integer.
	KindUint32
	// KindInt8 is an 8-bit signed integer.
	KindInt8
	// KindInt16 is a 16-bit signed integer.
	KindInt16
	// KindInt32 is a 32-bit signed integer.
	KindInt32
	// KindFloat16 is an IEEE 754 half-precision float (see github.com/x448/float16).
	KindFloat16
	// KindFloat32 is an IEEE 754 single-precision float.
	KindFloat32
)

// Class partitions the base kinds by the scalar family the raw binding
// transfers natively. Narrow kinds promote into one of these three.
type Class uint8

const (
	// ClassUnsigned covers the unsigned integer kinds (transferred as uint32).
	ClassUnsigned Class = iota
	// ClassSigned covers the signed integer kinds (transferred as int32).
	ClassSigned
	// ClassFloat covers the float kinds (transferred as float32).
	ClassFloat
)

// String returns a human-readable name for the kind.
//
// Returns:
//   - string: the kind name (e.g. "uint8", "float16")
func (k BaseKind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindFloat16:
		return "float16"
	case KindFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// Size returns the byte size of one scalar of this kind.
//
// Returns:
//   - int: the size in bytes
func (k BaseKind) Size() int {
	switch k {
	case KindUint8, KindInt8:
		return 1
	case KindUint16, KindInt16, KindFloat16:
		return 2
	default:
		return 4
	}
}

// Class returns the scalar family this kind belongs to.
//
// Returns:
//   - Class: ClassUnsigned, ClassSigned or ClassFloat
func (k BaseKind) Class() Class {
	switch k {
	case KindUint8, KindUint16, KindUint32:
		return ClassUnsigned
	case KindInt8, KindInt16, KindInt32:
		return ClassSigned
	default:
		return ClassFloat
	}
}

// Promote returns the kind actually used on the wire for uniform transfer.
// Narrow integer and half-float uniforms are never sent in their native width:
// 8/16-bit integers widen to their 32-bit counterpart and half floats widen to
// full floats before dispatch.
//
// Returns:
//   - BaseKind: the promotion target (identity for 32-bit kinds)
func (k BaseKind) Promote() BaseKind {
	switch k {
	case KindUint8, KindUint16:
		return KindUint32
	case KindInt8, KindInt16:
		return KindInt32
	case KindFloat16:
		return KindFloat32
	default:
		return k
	}
}

// WireType returns the GL data-type tag identifying this kind's on-wire scalar
// representation, used for vertex attribute pointers and pixel transfer.
//
// Returns:
//   - uint32: the GL data type constant (e.g. gl.UNSIGNED_BYTE, gl.HALF_FLOAT)
func (k BaseKind) WireType() uint32 {
	switch k {
	case KindUint8:
		return gl.UNSIGNED_BYTE
	case KindUint16:
		return gl.UNSIGNED_SHORT
	case KindUint32:
		return gl.UNSIGNED_INT
	case KindInt8:
		return gl.BYTE
	case KindInt16:
		return gl.SHORT
	case KindInt32:
		return gl.INT
	case KindFloat16:
		return gl.HALF_FLOAT
	default:
		return gl.FLOAT
	}
}

// StorageFormat returns the sized GL internal format for this kind at the given
// component count. 8-bit unsigned data maps to the normalized R8 family (the
// common case for color data); every other kind maps to its exact-width sized
// format. Component counts outside {1, 2, 3, 4} are a programmer error and
// panic: the rank system cannot produce them.
//
// Parameters:
//   - components: number of channels (1-4)
//
// Returns:
//   - int32: the GL sized internal format constant
func (k BaseKind) StorageFormat(components int) int32 {
	switch k {
	case KindUint8:
		return pick4(components, gl.R8, gl.RG8, gl.RGB8, gl.RGBA8)
	case KindUint16:
		return pick4(components, gl.R16UI, gl.RG16UI, gl.RGB16UI, gl.RGBA16UI)
	case KindUint32:
		return pick4(components, gl.R32UI, gl.RG32UI, gl.RGB32UI, gl.RGBA32UI)
	case KindInt8:
		return pick4(components, gl.R8I, gl.RG8I, gl.RGB8I, gl.RGBA8I)
	case KindInt16:
		return pick4(components, gl.R16I, gl.RG16I, gl.RGB16I, gl.RGBA16I)
	case KindInt32:
		return pick4(components, gl.R32I, gl.RG32I, gl.RGB32I, gl.RGBA32I)
	case KindFloat16:
		return pick4(components, gl.R16F, gl.RG16F, gl.RGB16F, gl.RGBA16F)
	default:
		return pick4(components, gl.R32F, gl.RG32F, gl.RGB32F, gl.RGBA32F)
	}
}

// pick4 selects the format constant for a 1-4 channel count and panics on
// anything else. The closed component-count set is an internal invariant, so
// an out-of-range count here means a bug in a DataType implementation, not a
// recoverable caller error.
func pick4(components int, c1, c2, c3, c4 int32) int32 {
	switch components {
	case 1:
		return c1
	case 2:
		return c2
	case 3:
		return c3
	case 4:
		return c4
	default:
		panic(fmt.Sprintf("common: unreachable component count %d (must be 1-4)", components))
	}
}

// ImageFormat returns the GL pixel transfer format for a channel count:
// 1 is single-channel red, 2 is red/green, 3 is RGB and 4 is RGBA.
// Counts outside {1, 2, 3, 4} panic, matching StorageFormat.
//
// Parameters:
//   - components: number of channels (1-4)
//
// Returns:
//   - uint32: gl.RED, gl.RG, gl.RGB or gl.RGBA
func ImageFormat(components int) uint32 {
	switch components {
	case 1:
		return gl.RED
	case 2:
		return gl.RG
	case 3:
		return gl.RGB
	case 4:
		return gl.RGBA
	default:
		panic(fmt.Sprintf("common: unreachable component count %d (must be 1-4)", components))
	}
}

// Rank is the shape category of a value: how many flat scalars one logical
// value expands to and which transfer entry point family applies.
type Rank uint8

const (
	// RankScalar is a single scalar value.
	RankScalar Rank = iota
	// RankVec2 is a 2-component vector.
	RankVec2
	// RankVec3 is a 3-component vector.
	RankVec3
	// RankVec4 is a 4-component vector (also quaternions and colors).
	RankVec4
	// RankMat2 is a 2x2 matrix (4 flat scalars, column-major).
	RankMat2
	// RankMat3 is a 3x3 matrix (9 flat scalars, column-major).
	RankMat3
	// RankMat4 is a 4x4 matrix (16 flat scalars, column-major).
	RankMat4
)

// Components returns the number of flat scalars one value of this rank expands
// to. Matrix ranks report their element count, not their column width, so a
// Mat2 storage format resolves as a 4-component type rather than a Vec2.
//
// Returns:
//   - int: 1, 2, 3, 4, 4, 9 or 16
func (r Rank) Components() int {
	switch r {
	case RankScalar:
		return 1
	case RankVec2:
		return 2
	case RankVec3:
		return 3
	case RankVec4, RankMat2:
		return 4
	case RankMat3:
		return 9
	default:
		return 16
	}
}

// IsMatrix reports whether this rank dispatches through the matrix transfer
// entry points.
func (r Rank) IsMatrix() bool {
	return r == RankMat2 || r == RankMat3 || r == RankMat4
}

// String returns a human-readable name for the rank.
func (r Rank) String() string {
	switch r {
	case RankScalar:
		return "scalar"
	case RankVec2:
		return "vec2"
	case RankVec3:
		return "vec3"
	case RankVec4:
		return "vec4"
	case RankMat2:
		return "mat2"
	case RankMat3:
		return "mat3"
	default:
		return "mat4"
	}
}

// Format fully describes how a value type is represented on the GPU side:
// its scalar kind plus its shape. All derived tags (internal storage format,
// pixel transfer format, wire type) are computed from these two.
type Format struct {
	// Kind is the scalar base kind of each component.
	Kind BaseKind
	// Rank is the value's shape category.
	Rank Rank
}

// Components returns the flat scalar count of one value.
func (f Format) Components() int {
	return f.Rank.Components()
}

// InternalFormat returns the GL sized internal format for textures or buffers
// holding this value type.
//
// Returns:
//   - int32: the GL sized internal format constant
func (f Format) InternalFormat() int32 {
	return f.Kind.StorageFormat(f.Rank.Components())
}

// ImageFormat returns the GL pixel transfer format for this value type.
//
// Returns:
//   - uint32: gl.RED, gl.RG, gl.RGB or gl.RGBA
func (f Format) ImageFormat() uint32 {
	return ImageFormat(f.Rank.Components())
}

// WireType returns the GL data-type tag of this value type's components.
func (f Format) WireType() uint32 {
	return f.Kind.WireType()
}

// SizeBytes returns the byte size of one value of this format in host memory.
func (f Format) SizeBytes() int {
	return f.Kind.Size() * f.Rank.Components()
}

// String returns a human-readable description like "vec3<float32>".
func (f Format) String() string {
	if f.Rank == RankScalar {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s<%s>", f.Rank, f.Kind)
}

// DataType is implemented by every composite value type that can be sent to a
// shader uniform or packed into a buffer/texture: vectors, matrices,
// quaternions and colors. Classification is static — it depends only on the
// type's shape, never on the value.
type DataType interface {
	// DataFormat returns the value type's scalar kind and rank.
	//
	// Returns:
	//   - Format: the classification of this value type
	DataFormat() Format

	// Flatten appends this value's components to dst in the fixed component
	// order of its rank (x,y / x,y,z / x,y,z,w for vectors, concatenated
	// columns for matrices), widened to the kind's promotion target.
	//
	// Parameters:
	//   - dst: the transient per-transfer sink
	Flatten(dst *Flattener)
}

// KindOf returns the BaseKind of a primitive scalar type. The switch is over
// the exact closed Primitive set, so every instantiation resolves to exactly
// one case.
//
// Returns:
//   - BaseKind: the kind of T
func KindOf[T Primitive]() BaseKind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case float16.Float16:
		return KindFloat16
	default:
		return KindFloat32
	}
}

// FormatOf returns the Format of a slice of primitive scalars, i.e. a
// scalar-ranked format of T's kind.
//
// Returns:
//   - Format: {KindOf[T](), RankScalar}
func FormatOf[T Primitive]() Format {
	return Format{Kind: KindOf[T](), Rank: RankScalar}
}
