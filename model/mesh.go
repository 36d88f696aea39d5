// package model contains CPU-side staging types for mesh and material data
// pending GPU upload, plus the geometry processing that runs before upload
// (normal and tangent generation, validation, bounds).
package model

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/core"
)

// Indices holds a mesh's triangle indices in exactly one of three widths.
// A zero Indices means the mesh is non-indexed (consecutive vertex triples).
type Indices struct {
	U8  []uint8
	U16 []uint16
	U32 []uint32
}

// Count returns the number of indices, 0 for non-indexed meshes.
func (i Indices) Count() int {
	switch {
	case i.U8 != nil:
		return len(i.U8)
	case i.U16 != nil:
		return len(i.U16)
	default:
		return len(i.U32)
	}
}

// At returns the index at position n, widened to int.
func (i Indices) At(n int) int {
	switch {
	case i.U8 != nil:
		return int(i.U8[n])
	case i.U16 != nil:
		return int(i.U16[n])
	default:
		return int(i.U32[n])
	}
}

// CPUMesh is a triangle mesh staged in host memory. Positions are required;
// every other attribute is optional but must match the position count when
// present. All attribute slices upload through the byte bridge unchanged, so
// their layouts are exactly what the GPU sees.
type CPUMesh struct {
	Positions []common.Vec3f
	Normals   []common.Vec3f
	UVs       []common.Vec2f
	Tangents  []common.Vec4f
	Colors    []common.Color
	Indices   Indices
}

// Validate checks attribute lengths against the position count and, for
// non-indexed meshes, that the vertex count describes whole triangles.
//
// Returns:
//   - error: *core.InvalidBufferLengthError, *core.InvalidNumberOfVerticesError
//     or *core.IndexOutOfRangeError describing the first mismatch
func (m *CPUMesh) Validate() error {
	n := len(m.Positions)
	check := func(name string, length int) error {
		if length != 0 && length != n {
			return &core.InvalidBufferLengthError{Name: name, Expected: n, Actual: length}
		}
		return nil
	}
	if err := check("normal", len(m.Normals)); err != nil {
		return err
	}
	if err := check("uv", len(m.UVs)); err != nil {
		return err
	}
	if err := check("tangent", len(m.Tangents)); err != nil {
		return err
	}
	if err := check("color", len(m.Colors)); err != nil {
		return err
	}
	if m.Indices.Count() == 0 {
		if n%3 != 0 {
			return &core.InvalidNumberOfVerticesError{Count: n}
		}
		return nil
	}
	if m.Indices.Count()%3 != 0 {
		return &core.InvalidNumberOfVerticesError{Count: m.Indices.Count()}
	}
	for i := 0; i < m.Indices.Count(); i++ {
		if idx := m.Indices.At(i); idx >= n {
			return &core.IndexOutOfRangeError{Index: idx, Max: n - 1}
		}
	}
	return nil
}

// TriangleCount returns the number of triangles in the mesh.
func (m *CPUMesh) TriangleCount() int {
	if c := m.Indices.Count(); c > 0 {
		return c / 3
	}
	return len(m.Positions) / 3
}

// triangle returns the three vertex indices of triangle t.
func (m *CPUMesh) triangle(t int) (int, int, int) {
	if m.Indices.Count() > 0 {
		return m.Indices.At(3 * t), m.Indices.At(3*t + 1), m.Indices.At(3*t + 2)
	}
	return 3 * t, 3*t + 1, 3*t + 2
}

// BoundingBox returns the axis-aligned bounds of the mesh positions.
func (m *CPUMesh) BoundingBox() common.AABB {
	b := common.EmptyAABB()
	for _, p := range m.Positions {
		b = b.Expand(p)
	}
	return b
}

// ComputeNormals replaces the mesh normals with area-weighted face normal
// averages.
//
// Returns:
//   - error: validation errors from the mesh
func (m *CPUMesh) ComputeNormals() error {
	m.Normals = nil
	if err := m.Validate(); err != nil {
		return err
	}
	normals := make([]common.Vec3f, len(m.Positions))
	for t := 0; t < m.TriangleCount(); t++ {
		i0, i1, i2 := m.triangle(t)
		e1 := common.Vec3Sub(m.Positions[i1], m.Positions[i0])
		e2 := common.Vec3Sub(m.Positions[i2], m.Positions[i0])
		// Unnormalized cross product: weight by triangle area.
		face := common.Vec3Cross(e1, e2)
		normals[i0] = common.Vec3Add(normals[i0], face)
		normals[i1] = common.Vec3Add(normals[i1], face)
		normals[i2] = common.Vec3Add(normals[i2], face)
	}
	for i := range normals {
		normals[i] = common.Vec3Normalize(normals[i])
	}
	m.Normals = normals
	return nil
}

// tangentChunk is one worker's accumulation range and scratch space.
type tangentChunk struct {
	first, last int // triangle range [first, last)
	tan1, tan2  []common.Vec3f
}

// ComputeTangents replaces the mesh tangents with per-vertex tangents derived
// from the UV parameterization (Lengyel's method), with handedness in W.
// Requires both normals and UV coordinates.
//
// Triangle accumulation runs in parallel on a worker pool, one scratch
// accumulator per chunk, merged serially afterwards so no accumulation races.
//
// Returns:
//   - error: core.ErrFailedComputingTangents when normals or UVs are missing,
//     or validation errors from the mesh
func (m *CPUMesh) ComputeTangents() error {
	m.Tangents = nil
	if err := m.Validate(); err != nil {
		return err
	}
	if len(m.Normals) == 0 || len(m.UVs) == 0 {
		return core.ErrFailedComputingTangents
	}

	triangles := m.TriangleCount()
	workers := max(runtime.NumCPU()-1, 1)
	chunkSize := max((triangles+workers-1)/workers, 1)
	var chunks []*tangentChunk
	for first := 0; first < triangles; first += chunkSize {
		chunks = append(chunks, &tangentChunk{
			first: first,
			last:  min(first+chunkSize, triangles),
			tan1:  make([]common.Vec3f, len(m.Positions)),
			tan2:  make([]common.Vec3f, len(m.Positions)),
		})
	}

	pool := worker.NewDynamicWorkerPool(workers, max(len(chunks), 1), 1*time.Second)
	var wg sync.WaitGroup
	for id, chunk := range chunks {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				m.accumulateTangents(chunk)
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Merge the per-chunk accumulators.
	tan1 := make([]common.Vec3f, len(m.Positions))
	tan2 := make([]common.Vec3f, len(m.Positions))
	for _, c := range chunks {
		for i := range tan1 {
			tan1[i] = common.Vec3Add(tan1[i], c.tan1[i])
			tan2[i] = common.Vec3Add(tan2[i], c.tan2[i])
		}
	}

	tangents := make([]common.Vec4f, len(m.Positions))
	for i := range tangents {
		n := m.Normals[i]
		t := tan1[i]
		// Gram-Schmidt orthogonalize against the normal.
		ortho := common.Vec3Normalize(common.Vec3Sub(t, common.Vec3Scale(n, common.Vec3Dot(n, t))))
		handedness := float32(1)
		if common.Vec3Dot(common.Vec3Cross(n, t), tan2[i]) < 0 {
			handedness = -1
		}
		tangents[i] = common.Vec4f{X: ortho.X, Y: ortho.Y, Z: ortho.Z, W: handedness}
	}
	m.Tangents = tangents
	return nil
}

// accumulateTangents adds every triangle in the chunk's range into the
// chunk's private accumulators.
func (m *CPUMesh) accumulateTangents(c *tangentChunk) {
	for t := c.first; t < c.last; t++ {
		i0, i1, i2 := m.triangle(t)
		p0, p1, p2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]
		w0, w1, w2 := m.UVs[i0], m.UVs[i1], m.UVs[i2]

		e1 := common.Vec3Sub(p1, p0)
		e2 := common.Vec3Sub(p2, p0)
		s1, t1 := w1.X-w0.X, w1.Y-w0.Y
		s2, t2 := w2.X-w0.X, w2.Y-w0.Y

		denom := s1*t2 - s2*t1
		if denom == 0 {
			continue // degenerate UV mapping, contributes nothing
		}
		r := 1 / denom
		sdir := common.Vec3Scale(common.Vec3Sub(common.Vec3Scale(e1, t2), common.Vec3Scale(e2, t1)), r)
		tdir := common.Vec3Scale(common.Vec3Sub(common.Vec3Scale(e2, s1), common.Vec3Scale(e1, s2)), r)

		for _, i := range []int{i0, i1, i2} {
			c.tan1[i] = common.Vec3Add(c.tan1[i], sdir)
			c.tan2[i] = common.Vec3Add(c.tan2[i], tdir)
		}
	}
}
