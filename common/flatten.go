package common

import "github.com/x448/float16"

// Flattener is the transient scalar sink used during a uniform transfer. A
// dispatch call flattens its whole value array into one of the three promoted
// slices, hands the slice to the raw uniform call, and drops the Flattener;
// nothing here survives the transfer.
//
// Exactly one slice is populated per transfer, selected by the promoted class
// of the value type's kind. Widening happens on append, so narrow kinds never
// reach the slices in their native width.
type Flattener struct {
	// U holds flattened unsigned integer components, promoted to 32 bits.
	U []uint32
	// I holds flattened signed integer components, promoted to 32 bits.
	I []int32
	// F holds flattened float components, promoted to full floats.
	F []float32
}

// NewFlattener returns a Flattener with capacity reserved in the slice
// matching class for n promoted scalars.
//
// Parameters:
//   - class: the promoted class the transfer will populate
//   - n: total flat scalar count (value count * rank components)
//
// Returns:
//   - *Flattener: the sink, with one slice pre-allocated
func NewFlattener(class Class, n int) *Flattener {
	f := &Flattener{}
	switch class {
	case ClassUnsigned:
		f.U = make([]uint32, 0, n)
	case ClassSigned:
		f.I = make([]int32, 0, n)
	default:
		f.F = make([]float32, 0, n)
	}
	return f
}

// Len returns the number of scalars appended so far across all classes.
func (f *Flattener) Len() int {
	return len(f.U) + len(f.I) + len(f.F)
}

// Class returns the class of the slice a transfer populated. A single
// transfer flattens a single value type, so at most one slice is non-empty;
// an empty Flattener reports ClassFloat.
func (f *Flattener) Class() Class {
	switch {
	case len(f.U) > 0:
		return ClassUnsigned
	case len(f.I) > 0:
		return ClassSigned
	default:
		return ClassFloat
	}
}

// PutFloat appends an already-promoted float component. Used by value types
// that normalize during flattening (Color channels divide by 255 here).
func (f *Flattener) PutFloat(v float32) {
	f.F = append(f.F, v)
}

// Append widens a primitive scalar to its kind's promotion target and appends
// it to the matching slice: unsigned kinds land in U as uint32, signed kinds
// in I as int32, float kinds in F as float32 (half floats convert through
// their IEEE 754 value, not their bit pattern).
//
// Parameters:
//   - f: the sink
//   - v: the scalar to widen and append
func Append[T Primitive](f *Flattener, v T) {
	switch x := any(v).(type) {
	case uint8:
		f.U = append(f.U, uint32(x))
	case uint16:
		f.U = append(f.U, uint32(x))
	case uint32:
		f.U = append(f.U, x)
	case int8:
		f.I = append(f.I, int32(x))
	case int16:
		f.I = append(f.I, int32(x))
	case int32:
		f.I = append(f.I, x)
	case float16.Float16:
		f.F = append(f.F, x.Float32())
	case float32:
		f.F = append(f.F, x)
	}
}

// FlattenSlice flattens a slice of primitive scalars into a fresh Flattener,
// the scalar-rank counterpart of DataType.Flatten.
//
// Parameters:
//   - values: the scalars to flatten
//
// Returns:
//   - *Flattener: the populated sink
func FlattenSlice[T Primitive](values []T) *Flattener {
	f := NewFlattener(KindOf[T]().Class(), len(values))
	for _, v := range values {
		Append(f, v)
	}
	return f
}
