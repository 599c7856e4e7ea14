package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestPosition_RespectsDistance(t *testing.T) {
	c := New(100)
	got := c.DistanceTo(c.Target)
	if math.Abs(float64(got-c.Distance)) > 0.001 {
		t.Errorf("eye-to-target distance = %v, want %v", got, c.Distance)
	}
}

func TestOrbit_ClampsPitch(t *testing.T) {
	c := New(100)

	c.Orbit(0, 10)
	if c.Pitch > maxPitch {
		t.Errorf("pitch = %v, want <= %v", c.Pitch, float32(maxPitch))
	}

	c.Orbit(0, -20)
	if c.Pitch < minPitch {
		t.Errorf("pitch = %v, want >= %v", c.Pitch, float32(minPitch))
	}

	// Camera never dips below the target plane
	if pos := c.Position(); pos.Y < c.Target.Y {
		t.Errorf("eye Y = %v below target Y = %v", pos.Y, c.Target.Y)
	}
}

func TestOrbit_WrapsYaw(t *testing.T) {
	c := New(100)
	c.Yaw = 0

	for i := 0; i < 100; i++ {
		c.Orbit(0.5, 0)
	}

	if c.Yaw > math.Pi || c.Yaw < -math.Pi {
		t.Errorf("yaw = %v, want wrapped to [-pi, pi]", c.Yaw)
	}
}

func TestZoom_ClampsDistance(t *testing.T) {
	c := New(100)

	c.Zoom(0.0001)
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v after zoom in, want %v", c.Distance, c.MinDistance)
	}

	c.Zoom(1e6)
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v after zoom out, want %v", c.Distance, c.MaxDistance)
	}
}

func TestDistanceTo(t *testing.T) {
	c := New(100)
	c.Target = rl.Vector3{}
	c.Yaw = 0
	c.Pitch = minPitch
	c.Distance = 50

	eye := c.Position()
	if got := c.DistanceTo(eye); got != 0 {
		t.Errorf("distance to own eye = %v, want 0", got)
	}
}
