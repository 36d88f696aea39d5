package core

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOpScalarRanks(t *testing.T) {
	// Scalar and vector ranks have entry points for every class.
	classes := []common.Class{common.ClassUnsigned, common.ClassSigned, common.ClassFloat}
	expected := map[common.Rank]transferOp{
		common.RankScalar: opScalars1,
		common.RankVec2:   opScalars2,
		common.RankVec3:   opScalars3,
		common.RankVec4:   opScalars4,
	}
	for _, class := range classes {
		for rank, want := range expected {
			op, err := selectOp(class, rank)
			require.NoError(t, err, "class %d rank %s", class, rank)
			assert.Equal(t, want, op)
		}
	}
}

func TestSelectOpFloatMatrices(t *testing.T) {
	op, err := selectOp(common.ClassFloat, common.RankMat2)
	require.NoError(t, err)
	assert.Equal(t, opMatrix2, op)

	op, err = selectOp(common.ClassFloat, common.RankMat3)
	require.NoError(t, err)
	assert.Equal(t, opMatrix3, op)

	op, err = selectOp(common.ClassFloat, common.RankMat4)
	require.NoError(t, err)
	assert.Equal(t, opMatrix4, op)
}

func TestSelectOpRejectsIntegerMatrices(t *testing.T) {
	for _, class := range []common.Class{common.ClassUnsigned, common.ClassSigned} {
		for _, rank := range []common.Rank{common.RankMat2, common.RankMat3, common.RankMat4} {
			_, err := selectOp(class, rank)
			require.Error(t, err, "class %d rank %s", class, rank)

			var unsupported *UnsupportedUniformTypeError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, class, unsupported.Class)
			assert.Equal(t, rank, unsupported.Rank)
		}
	}
}

func TestUnsupportedUniformTypeErrorMessage(t *testing.T) {
	err := &UnsupportedUniformTypeError{Class: common.ClassSigned, Rank: common.RankMat4}
	assert.Equal(t, "unsupported uniform type: signed integer data with rank mat4 has no transfer entry point", err.Error())
}

func TestSendUniformIntegerMatrixFails(t *testing.T) {
	// The full dispatch path surfaces the same error before any raw call.
	err := SendUniform(nil, 0, []common.Mat4[int32]{{}})
	var unsupported *UnsupportedUniformTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, common.ClassSigned, unsupported.Class)
	assert.Equal(t, common.RankMat4, unsupported.Rank)
}

func TestSendUniformEmptyIsNoOp(t *testing.T) {
	assert.NoError(t, SendUniform(nil, 0, []common.Vec3f(nil)))
	assert.NoError(t, SendScalars(nil, 0, []float32(nil)))
}
