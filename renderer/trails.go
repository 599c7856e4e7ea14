package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/camera"
	"github.com/RoeeJ/IronDome-sub005/trail"
)

// Exhaust base color before shading, in normalized [0,1] channels.
var exhaustBase = rl.Vector3{X: 1.0, Y: 0.55, Z: 0.15}

// DrawTrail renders a ribbon as shaded line segments between
// consecutive points. Expired points (age >= 1) are fully transparent
// and skipped. time drives the shading pulse.
func (r *Renderer) DrawTrail(cam *camera.Camera, g *trail.Geometry, time float32, farDist float32) {
	if g == nil || g.Count < 2 {
		return
	}
	if r.culled(cam, g.Positions[g.Count-1], farDist) {
		return
	}

	for i := 1; i < g.Count; i++ {
		age := g.Age[i]
		if age >= 1 {
			continue
		}
		if !r.budget() {
			return
		}

		c, alpha := trail.Shade(age, g.Intensity[i], exhaustBase, time)
		rl.DrawLine3D(g.Positions[i-1], g.Positions[i], trail.ToColor(c, alpha))
	}

	// Bright core at the emission end
	head := g.Count - 1
	if g.Age[head] < 1 && r.budget() {
		c, alpha := trail.Shade(g.Age[head], g.Intensity[head], exhaustBase, time)
		rl.DrawSphereEx(g.Positions[head], 0.15, 4, 4, trail.ToColor(c, alpha))
	}
}
