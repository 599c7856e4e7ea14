package systems

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/trail"
)

// Trail intensity by thrust state. The shading model expects values in
// [0,1] and does not clamp, so all writes here stay in range.
const (
	ThrustIntensity = 1.0
	CoastIntensity  = 0.35
)

// AdvanceTrail ages every live point by dt against the configured
// fade-out time. Ages are clamped to 1 at write time; the shading
// stage reads them unclamped.
func AdvanceTrail(g *trail.Geometry, dt, maxAge float32) {
	if maxAge <= 0 {
		return
	}
	step := dt / maxAge
	for i := 0; i < g.Count; i++ {
		a := g.Age[i] + step
		if a > 1 {
			a = 1
		}
		g.Age[i] = a
	}
}

// EmitTrailPoint appends a fresh point at pos with intensity derived
// from the thrust state.
func EmitTrailPoint(g *trail.Geometry, pos rl.Vector3, thrusting bool) {
	intensity := float32(CoastIntensity)
	if thrusting {
		intensity = ThrustIntensity
	}
	g.Push(pos, intensity)
}

// LivePoints returns how many points of the ribbon are still visible
// (age < 1). Points age oldest-first, so the visible suffix starts at
// the first unexpired index.
func LivePoints(g *trail.Geometry) int {
	n := 0
	for i := 0; i < g.Count; i++ {
		if g.Age[i] < 1 {
			n++
		}
	}
	return n
}
