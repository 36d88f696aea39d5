package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportAspectRatio(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, NewViewport(1920, 1080).AspectRatio(), 1e-6)
	assert.InDelta(t, 1.0, NewViewport(100, 0).AspectRatio(), 1e-6)
}

func TestScissorBoxIntersection(t *testing.T) {
	a := ScissorBox{X: 0, Y: 0, Width: 100, Height: 100}
	b := ScissorBox{X: 50, Y: 25, Width: 100, Height: 100}
	assert.Equal(t, ScissorBox{X: 50, Y: 25, Width: 50, Height: 75}, a.Intersection(b))

	disjoint := ScissorBox{X: 200, Y: 200, Width: 10, Height: 10}
	got := a.Intersection(disjoint)
	assert.Zero(t, got.Width)
	assert.Zero(t, got.Height)
}

func TestDrawArraysRejectsPartialTriangles(t *testing.T) {
	err := DrawArrays(nil, 7)
	var invalid *InvalidNumberOfVerticesError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 7, invalid.Count)
}
