package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()
	assert.Equal(t, common.Vec3f{X: 0, Y: 1, Z: 0}, cam.Up())
	assert.InDelta(t, 45.0*math.Pi/180.0, cam.Fov(), 1e-6)
	assert.InDelta(t, 1.0, cam.Aspect(), 1e-6)
	assert.InDelta(t, 0.1, cam.Near(), 1e-6)
	assert.InDelta(t, 100.0, cam.Far(), 1e-6)
}

func TestViewMatrixTransformsTarget(t *testing.T) {
	cam := NewCamera(
		WithPosition(common.Vec3f{X: 0, Y: 0, Z: 5}),
		WithTarget(common.Vec3f{}),
	)
	view := cam.ViewMatrix()

	// The target (origin) lands 5 units in front of the camera.
	z := view[2]*0 + view[6]*0 + view[10]*0 + view[14]
	assert.InDelta(t, -5.0, z, 1e-6)
}

func TestSettersRecomputeMatrices(t *testing.T) {
	cam := NewCamera(WithPosition(common.Vec3f{X: 0, Y: 0, Z: 5}))
	before := cam.ProjectionMatrix()

	cam.SetAspect(2.0)
	after := cam.ProjectionMatrix()
	assert.NotEqual(t, before, after)
	assert.InDelta(t, before[0]/2, after[0], 1e-6)

	viewBefore := cam.ViewMatrix()
	cam.SetPosition(common.Vec3f{X: 0, Y: 0, Z: 10})
	assert.NotEqual(t, viewBefore, cam.ViewMatrix())
}

func TestViewProjectionComposition(t *testing.T) {
	cam := NewCamera(WithPosition(common.Vec3f{X: 1, Y: 2, Z: 3}))
	expected := common.Mul4(cam.ProjectionMatrix(), cam.ViewMatrix())
	assert.Equal(t, expected, cam.ViewProjectionMatrix())
}

func TestInverseProjectionRoundTrip(t *testing.T) {
	cam := NewCamera()
	product := common.Mul4(cam.ProjectionMatrix(), cam.InverseProjectionMatrix())
	identity := common.Mat4Identity()
	for i := range product {
		assert.InDelta(t, identity[i], product[i], 1e-5, "element %d", i)
	}
}

func TestOrthographicProjection(t *testing.T) {
	cam := NewCamera(
		WithOrthographicHeight(4.0),
		WithAspect(2.0),
		WithPosition(common.Vec3f{X: 0, Y: 0, Z: 5}),
	)
	p := cam.ProjectionMatrix()

	// Height 4 with aspect 2 spans x in [-4, 4] and y in [-2, 2].
	assert.InDelta(t, 2.0/8.0, p[0], 1e-6)
	assert.InDelta(t, 2.0/4.0, p[5], 1e-6)
	// Orthographic projections keep w = 1.
	assert.InDelta(t, 0.0, p[11], 1e-6)
	assert.InDelta(t, 1.0, p[15], 1e-6)
}

func TestFrustumContainsLookedAtPoint(t *testing.T) {
	cam := NewCamera(
		WithPosition(common.Vec3f{X: 0, Y: 0, Z: 10}),
		WithTarget(common.Vec3f{}),
	)
	frustum := cam.Frustum()

	atTarget := common.NewAABB(common.Vec3f{X: -0.5, Y: -0.5, Z: -0.5}, common.Vec3f{X: 0.5, Y: 0.5, Z: 0.5})
	assert.True(t, frustum.ContainsAABB(atTarget))

	behindCamera := common.NewAABB(common.Vec3f{X: 0, Y: 0, Z: 20}, common.Vec3f{X: 1, Y: 1, Z: 21})
	require.False(t, frustum.ContainsAABB(behindCamera))
}
