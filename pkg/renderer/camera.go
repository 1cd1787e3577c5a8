package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
)

// DefaultFieldOfView is the vertical field of view baked into the ray
// construction; the forward component of every ray is 1/tan(fov/2).
const DefaultFieldOfView = math.Pi / 2

// Camera maps normalized screen coordinates to world-space rays using the
// frame's camera-to-world matrix and aspect scale.
type Camera struct {
	cameraToWorld mgl64.Mat4
	aspectScale   mgl64.Vec2
	forward       float64
}

// NewCamera creates a camera from frame parameters
func NewCamera(params core.Parameters) *Camera {
	return &Camera{
		cameraToWorld: params.CameraToWorld,
		aspectScale:   params.AspectScale,
		forward:       1 / math.Tan(DefaultFieldOfView/2),
	}
}

// GetRay maps a screen coordinate in [-1,1]^2 to a world ray. The vertical
// axis is flipped to match the render target's texture-space convention.
// The direction is normalized in camera space, then rotated (never
// translated) into the world; the origin is the matrix's translation.
func (c *Camera) GetRay(u, v float64) core.Ray {
	local := core.NewVec3(u*c.aspectScale.X(), -v*c.aspectScale.Y(), c.forward).Normalize()
	direction := c.cameraToWorld.Mul4x1(mgl64.Vec4{local.X, local.Y, local.Z, 0})
	origin := c.cameraToWorld.Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	return core.NewRay(
		core.NewVec3(origin.X(), origin.Y(), origin.Z()),
		core.NewVec3(direction.X(), direction.Y(), direction.Z()),
	)
}

// CameraMatrix composes a camera-to-world matrix from an eye position and
// yaw/pitch angles: translation * yaw * pitch, with +Z as the forward axis.
// Pitch is clamped to straight up/down.
func CameraMatrix(position core.Vec3, yaw, pitch float64) mgl64.Mat4 {
	pitch = max(-math.Pi/2, min(math.Pi/2, pitch))
	return mgl64.Translate3D(position.X, position.Y, position.Z).
		Mul4(mgl64.HomogRotate3DY(yaw)).
		Mul4(mgl64.HomogRotate3DX(pitch))
}

// LookAtOrigin builds a camera-to-world matrix placing the eye at position,
// oriented toward the world origin.
func LookAtOrigin(position core.Vec3) mgl64.Mat4 {
	radius := math.Hypot(position.X, position.Z)
	yaw := math.Atan2(-position.X, -position.Z)
	pitch := math.Atan2(position.Y, radius)
	return CameraMatrix(position, yaw, pitch)
}
