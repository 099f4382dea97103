// Package camera provides a free-fly 3D camera for viewing the world.
package camera

import "math"

// Camera is a free-fly camera described by a position and a yaw/pitch
// orientation. It carries no rendering dependencies; the render layer
// converts it to whatever the graphics backend needs.
type Camera struct {
	// Position in world coordinates
	X, Y, Z float32

	// Orientation in radians. Yaw 0 looks down -Z; pitch is clamped
	// short of the poles.
	Yaw, Pitch float32

	// Movement speed in world units per second
	MoveSpeed float32

	// Rotation speed in radians per second
	TurnSpeed float32
}

// maxPitch keeps the look direction off the vertical axis so the up
// vector stays well defined.
const maxPitch = float32(math.Pi/2) - 0.05

// New creates a camera at the given position looking toward the origin
// along -Z with a slight downward tilt.
func New(x, y, z float32) *Camera {
	return &Camera{
		X: x, Y: y, Z: z,
		Yaw:       0,
		Pitch:     -0.4,
		MoveSpeed: 12.0,
		TurnSpeed: 1.6,
	}
}

// Forward returns the unit look direction.
func (c *Camera) Forward() (fx, fy, fz float32) {
	cp := float32(math.Cos(float64(c.Pitch)))
	fx = float32(math.Sin(float64(c.Yaw))) * cp
	fy = float32(math.Sin(float64(c.Pitch)))
	fz = -float32(math.Cos(float64(c.Yaw))) * cp
	return fx, fy, fz
}

// Right returns the unit right direction in the ground plane.
func (c *Camera) Right() (rx, rz float32) {
	rx = float32(math.Cos(float64(c.Yaw)))
	rz = float32(math.Sin(float64(c.Yaw)))
	return rx, rz
}

// Target returns the point the camera looks at, one unit ahead.
func (c *Camera) Target() (tx, ty, tz float32) {
	fx, fy, fz := c.Forward()
	return c.X + fx, c.Y + fy, c.Z + fz
}

// Move translates the camera. forward and right are signed inputs in
// [-1, 1] applied in the ground plane; up moves along the world Y axis.
// dt is the elapsed time in seconds.
func (c *Camera) Move(forward, right, up, dt float32) {
	fx, _, fz := c.Forward()

	// Ground-plane forward so holding W does not change altitude
	planar := float32(math.Hypot(float64(fx), float64(fz)))
	if planar > 0 {
		fx /= planar
		fz /= planar
	}

	rx, rz := c.Right()

	step := c.MoveSpeed * dt
	c.X += (fx*forward + rx*right) * step
	c.Z += (fz*forward + rz*right) * step
	c.Y += up * step
}

// Rotate adjusts yaw and pitch. dyaw and dpitch are signed inputs in
// [-1, 1]; dt is the elapsed time in seconds. Pitch is clamped.
func (c *Camera) Rotate(dyaw, dpitch, dt float32) {
	c.Yaw += dyaw * c.TurnSpeed * dt
	c.Pitch = clamp(c.Pitch+dpitch*c.TurnSpeed*dt, -maxPitch, maxPitch)
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
