package render

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
)

// Camera represents a pinhole camera with position and orientation.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation (Euler angles in radians)
	Pitch float64 // Rotation around X axis (look up/down)
	Yaw   float64 // Rotation around Y axis (look left/right)
	Roll  float64 // Rotation around Z axis (tilt)

	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
}

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.V3(0, 0, 5),
		FOV:         math.Pi / 3, // 60 degrees
		AspectRatio: 1,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
}

// SetFOV sets the vertical field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() math3d.Vec3 {
	// Forward is -Z in camera space, rotated by yaw and pitch
	return math3d.V3(
		-math.Sin(c.Yaw)*math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*math.Cos(c.Pitch),
	)
}

// Right returns the right direction vector, tilted by roll.
func (c *Camera) Right() math3d.Vec3 {
	right := math3d.V3(math.Cos(c.Yaw), 0, -math.Sin(c.Yaw))
	if c.Roll == 0 {
		return right
	}
	up := right.Cross(c.Forward())
	return right.Scale(math.Cos(c.Roll)).Add(up.Scale(math.Sin(c.Roll)))
}

// Up returns the up direction vector.
func (c *Camera) Up() math3d.Vec3 {
	return c.Right().Cross(c.Forward())
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.Forward().Scale(distance))
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.Position = c.Position.Add(c.Right().Scale(distance))
}

// MoveUp moves the camera up (or down if negative).
func (c *Camera) MoveUp(distance float64) {
	c.Position = c.Position.Add(math3d.Up().Scale(distance))
}

// Rotate rotates the camera by the given angles (in radians).
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float64) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw
	c.Roll += deltaRoll

	// Clamp pitch to avoid gimbal lock issues
	const maxPitch = math.Pi/2 - 0.01
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// LookAt makes the camera look at a target point.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position).Normalize()

	c.Pitch = math.Asin(dir.Y)
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
	c.Roll = 0
}

// Orbit places the camera on a sphere of the given radius around target
// and points it at the target. yaw and pitch are in radians.
func (c *Camera) Orbit(target math3d.Vec3, radius, yaw, pitch float64) {
	offset := math3d.V3(
		math.Sin(yaw)*math.Cos(pitch),
		math.Sin(pitch),
		math.Cos(yaw)*math.Cos(pitch),
	).Scale(radius)
	c.Position = target.Add(offset)
	c.LookAt(target)
}

// RayFromNDC returns the primary ray through normalized device
// coordinates (x, y), both in [-1, 1] with +y up. The ray starts at the
// camera position.
func (c *Camera) RayFromNDC(x, y float64) math3d.Ray {
	halfHeight := math.Tan(c.FOV / 2)
	halfWidth := halfHeight * c.AspectRatio

	dir := c.Forward().
		Add(c.Right().Scale(x * halfWidth)).
		Add(c.Up().Scale(y * halfHeight))
	return math3d.NewRay(c.Position, dir)
}
