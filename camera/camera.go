// package camera provides a perspective/orthographic camera that computes
// view and projection matrices for uniform upload.
package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// Projection selects how the camera maps view space to clip space.
type Projection int

const (
	// ProjectionPerspective uses a symmetric perspective frustum from the
	// camera's field of view and aspect ratio.
	ProjectionPerspective Projection = iota
	// ProjectionOrthographic uses a box frustum from the camera's height and
	// aspect ratio.
	ProjectionOrthographic
)

type cameraImpl struct {
	mu *sync.Mutex

	position common.Vec3f
	target   common.Vec3f
	up       common.Vec3f

	projection Projection
	fov        float32
	height     float32
	aspect     float32
	near       float32
	far        float32

	viewMatrix              common.Mat4f
	projectionMatrix        common.Mat4f
	viewProjectionMatrix    common.Mat4f
	inverseProjectionMatrix common.Mat4f
}

// Camera defines the interface for the camera system.
// The camera holds view and projection settings and recomputes its matrices
// whenever a setting changes.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vec3f: the camera position
	Position() common.Vec3f

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - common.Vec3f: the look-at target
	Target() common.Vec3f

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - common.Vec3f: the up vector
	Up() common.Vec3f

	// Fov returns the field of view in radians (perspective projection only).
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current view matrix (column-major).
	//
	// Returns:
	//   - common.Mat4f: the view matrix
	ViewMatrix() common.Mat4f

	// ProjectionMatrix returns the current projection matrix (column-major).
	//
	// Returns:
	//   - common.Mat4f: the projection matrix
	ProjectionMatrix() common.Mat4f

	// ViewProjectionMatrix returns the combined view-projection matrix
	// (column-major).
	//
	// Returns:
	//   - common.Mat4f: the combined view-projection matrix
	ViewProjectionMatrix() common.Mat4f

	// InverseProjectionMatrix returns the inverse of the current projection
	// matrix (column-major). Useful for reconstructing view-space positions
	// from screen coordinates.
	//
	// Returns:
	//   - common.Mat4f: the inverse projection matrix
	InverseProjectionMatrix() common.Mat4f

	// Frustum returns the camera's view frustum in world space, extracted
	// from the view-projection matrix.
	//
	// Returns:
	//   - common.Frustum: the six world-space frustum planes
	Frustum() common.Frustum

	// SetPosition sets the camera's world-space position and recomputes matrices.
	//
	// Parameters:
	//   - position: the camera position
	SetPosition(position common.Vec3f)

	// SetTarget sets the look-at target and recomputes matrices.
	//
	// Parameters:
	//   - target: the world-space point to look at
	SetTarget(target common.Vec3f)

	// SetUp sets the camera's up vector and recomputes matrices.
	//
	// Parameters:
	//   - up: the up vector
	SetUp(up common.Vec3f)

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings, at the
// origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		position:   common.Vec3f{X: 0, Y: 0, Z: 1},
		target:     common.Vec3f{X: 0, Y: 0, Z: 0},
		up:         common.Vec3f{X: 0, Y: 1, Z: 0},
		projection: ProjectionPerspective,
		fov:        45.0 * (math.Pi / 180.0), // radians
		height:     2.0,
		aspect:     1.0,
		near:       0.1,
		far:        100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() common.Vec3f {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Target() common.Vec3f {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) Up() common.Vec3f {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() common.Mat4f {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() common.Mat4f {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() common.Mat4f {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) InverseProjectionMatrix() common.Mat4f {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustum(c.viewProjectionMatrix)
}

func (c *cameraImpl) SetPosition(position common.Vec3f) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(target common.Vec3f) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
	c.updateMatrices()
}

func (c *cameraImpl) SetUp(up common.Vec3f) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, view-projection, and
// inverse projection matrices. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = common.LookAt(c.position, c.target, c.up)

	switch c.projection {
	case ProjectionOrthographic:
		halfH := c.height / 2
		halfW := halfH * c.aspect
		c.projectionMatrix = common.Orthographic(-halfW, halfW, -halfH, halfH, c.near, c.far)
	default:
		c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	}

	c.viewProjectionMatrix = common.Mul4(c.projectionMatrix, c.viewMatrix)
	if inv, ok := common.Invert4(c.projectionMatrix); ok {
		c.inverseProjectionMatrix = inv
	} else {
		c.inverseProjectionMatrix = common.Mat4Identity()
	}
}
