// Package camera provides an orbit camera for viewing the engagement scene.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera orbits a target point at a given distance, yaw and pitch.
type Camera struct {
	// Target is the point the camera looks at, in world coordinates.
	Target rl.Vector3

	// Yaw is the horizontal orbit angle in radians.
	Yaw float32

	// Pitch is the elevation angle in radians, clamped to keep the
	// camera above the ground plane and off the zenith.
	Pitch float32

	// Distance from target to camera eye.
	Distance float32

	// Distance constraints
	MinDistance, MaxDistance float32

	// Fovy is the vertical field of view in degrees.
	Fovy float32
}

const (
	minPitch = 0.05
	maxPitch = math.Pi/2 - 0.05
)

// New creates a camera orbiting the world origin, framed for a world of
// the given radius.
func New(worldRadius float32) *Camera {
	return &Camera{
		Target:      rl.Vector3{Y: 5},
		Yaw:         math.Pi / 4,
		Pitch:       0.5,
		Distance:    worldRadius * 1.2,
		MinDistance: worldRadius * 0.1,
		MaxDistance: worldRadius * 3,
		Fovy:        45,
	}
}

// Position returns the camera eye position in world coordinates.
func (c *Camera) Position() rl.Vector3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	sp := float32(math.Sin(float64(c.Pitch)))
	cy := float32(math.Cos(float64(c.Yaw)))
	sy := float32(math.Sin(float64(c.Yaw)))

	return rl.Vector3{
		X: c.Target.X + c.Distance*cp*cy,
		Y: c.Target.Y + c.Distance*sp,
		Z: c.Target.Z + c.Distance*cp*sy,
	}
}

// Raylib returns the rl.Camera3D for BeginMode3D.
func (c *Camera) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Orbit rotates the camera by the given yaw and pitch deltas.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	if c.Yaw > math.Pi {
		c.Yaw -= 2 * math.Pi
	} else if c.Yaw < -math.Pi {
		c.Yaw += 2 * math.Pi
	}
	c.Pitch = clamp(c.Pitch+dPitch, minPitch, maxPitch)
}

// Zoom scales the orbit distance, clamped to min/max.
func (c *Camera) Zoom(factor float32) {
	c.Distance = clamp(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// DistanceTo returns the distance from the camera eye to a world point.
// Used for particle LOD banding.
func (c *Camera) DistanceTo(p rl.Vector3) float32 {
	eye := c.Position()
	dx := p.X - eye.X
	dy := p.Y - eye.Y
	dz := p.Z - eye.Z
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
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
