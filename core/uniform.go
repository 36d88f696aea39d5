package core

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// UniformLocation identifies a uniform slot in a linked program. Locations
// are handed out by Program and assumed valid for the program currently in
// use; upstream link logic is responsible for that pairing.
type UniformLocation int32

// transferOp identifies one raw transfer entry point: send 1-4 scalars per
// element, or send a 2x2/3x3/4x4 matrix per element.
type transferOp uint8

const (
	opScalars1 transferOp = iota
	opScalars2
	opScalars3
	opScalars4
	opMatrix2
	opMatrix3
	opMatrix4
)

// selectOp picks the transfer entry point for a promoted class and rank.
// Matrix ranks only exist for float data in the raw binding; an integer
// matrix is an explicit UnsupportedUniformTypeError, never a silent accept.
//
// Parameters:
//   - class: the promoted scalar class of the flattened data
//   - rank: the value type's rank
//
// Returns:
//   - transferOp: the selected entry point
//   - error: non-nil when no entry point exists for the pair
func selectOp(class common.Class, rank common.Rank) (transferOp, error) {
	switch rank {
	case common.RankScalar:
		return opScalars1, nil
	case common.RankVec2:
		return opScalars2, nil
	case common.RankVec3:
		return opScalars3, nil
	case common.RankVec4:
		return opScalars4, nil
	}
	if class != common.ClassFloat {
		return 0, &UnsupportedUniformTypeError{Class: class, Rank: rank}
	}
	switch rank {
	case common.RankMat2:
		return opMatrix2, nil
	case common.RankMat3:
		return opMatrix3, nil
	default:
		return opMatrix4, nil
	}
}

// SendUniform flattens an array of composite values into one flat run of
// promoted scalars (in the component order fixed by the value's rank) and
// invokes the matching raw transfer call against loc. The flattened buffer is
// transient: allocated here, dropped when the call returns. The GPU-side
// effect is a mutation of the bound program's uniform state.
//
// Parameters:
//   - ctx: the GL context (used for submission counters; may be nil in tests
//     that stop before submission)
//   - loc: the target uniform location
//   - values: the values to send; a nil/empty slice is a no-op
//
// Returns:
//   - error: non-nil when the value type has no transfer entry point
func SendUniform[T common.DataType](ctx *Context, loc UniformLocation, values []T) error {
	if len(values) == 0 {
		return nil
	}
	var zero T
	format := zero.DataFormat()
	flat := &common.Flattener{}
	for _, v := range values {
		v.Flatten(flat)
	}
	return submit(ctx, loc, flat, format.Rank)
}

// SendScalars is the scalar-rank counterpart of SendUniform for plain
// primitive arrays. Narrow kinds widen to their promotion target before
// submission, so an 8-bit array always reaches the driver as 32-bit data.
//
// Parameters:
//   - ctx: the GL context
//   - loc: the target uniform location
//   - values: the scalars to send; a nil/empty slice is a no-op
//
// Returns:
//   - error: always nil today (scalar ranks have entry points for every
//     class); kept for symmetry with SendUniform
func SendScalars[T common.Primitive](ctx *Context, loc UniformLocation, values []T) error {
	if len(values) == 0 {
		return nil
	}
	return submit(ctx, loc, common.FlattenSlice(values), common.RankScalar)
}

// submit selects the entry point from the flattened data's class and the rank
// and performs the raw call. Matrices upload non-transposed: the flat data is
// already column-major.
func submit(ctx *Context, loc UniformLocation, flat *common.Flattener, rank common.Rank) error {
	class := flat.Class()
	op, err := selectOp(class, rank)
	if err != nil {
		return err
	}

	location := int32(loc)
	count := int32(flat.Len() / rank.Components())
	ctx.countUniform()

	switch class {
	case common.ClassUnsigned:
		switch op {
		case opScalars1:
			gl.Uniform1uiv(location, count, &flat.U[0])
		case opScalars2:
			gl.Uniform2uiv(location, count, &flat.U[0])
		case opScalars3:
			gl.Uniform3uiv(location, count, &flat.U[0])
		case opScalars4:
			gl.Uniform4uiv(location, count, &flat.U[0])
		}
	case common.ClassSigned:
		switch op {
		case opScalars1:
			gl.Uniform1iv(location, count, &flat.I[0])
		case opScalars2:
			gl.Uniform2iv(location, count, &flat.I[0])
		case opScalars3:
			gl.Uniform3iv(location, count, &flat.I[0])
		case opScalars4:
			gl.Uniform4iv(location, count, &flat.I[0])
		}
	default:
		switch op {
		case opScalars1:
			gl.Uniform1fv(location, count, &flat.F[0])
		case opScalars2:
			gl.Uniform2fv(location, count, &flat.F[0])
		case opScalars3:
			gl.Uniform3fv(location, count, &flat.F[0])
		case opScalars4:
			gl.Uniform4fv(location, count, &flat.F[0])
		case opMatrix2:
			gl.UniformMatrix2fv(location, count, false, &flat.F[0])
		case opMatrix3:
			gl.UniformMatrix3fv(location, count, false, &flat.F[0])
		case opMatrix4:
			gl.UniformMatrix4fv(location, count, false, &flat.F[0])
		}
	}
	return nil
}
