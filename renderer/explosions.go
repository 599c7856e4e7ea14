package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/camera"
	"github.com/RoeeJ/IronDome-sub005/lod"
	"github.com/RoeeJ/IronDome-sub005/systems"
)

var (
	fireballColor = rl.Color{R: 255, G: 170, B: 60, A: 255}
	debrisColor   = rl.Color{R: 90, G: 70, B: 50, A: 255}
	dustColor     = rl.Color{R: 150, G: 140, B: 120, A: 255}
)

// DrawExplosions renders every active burst in the pool. The blast
// shell uses the ExplosionSphere preset scaled to the burst radius;
// particles are minimal-tier spheres faded by remaining life.
func (r *Renderer) DrawExplosions(cam *camera.Camera, pool *systems.ExplosionPool, farDist float32) {
	shell := lod.ExplosionSphere
	bursts := pool.Bursts()

	for i := range bursts {
		b := &bursts[i]
		if !b.Active() || r.culled(cam, b.Origin, farDist) {
			continue
		}

		// Expanding translucent shell during the flash phase
		if b.Duration > 0 && b.Age < b.Duration*0.4 && r.budget() {
			t := b.Age / (b.Duration * 0.4)
			radius := shell.Radius * b.Radius * t
			c := fireballColor
			c.A = uint8(180 * (1 - t))
			rl.DrawSphereEx(b.Origin, radius, shell.Segments.Height, shell.Segments.Width, c)
		}

		for j := range b.Particles {
			pt := &b.Particles[j]
			if !r.budget() {
				return
			}

			c := fireballColor
			switch {
			case pt.Ground:
				c = dustColor
			case pt.Debris:
				c = debrisColor
			}
			c.A = uint8(255 * pt.Alpha())

			seg := lod.SphereSegmentsFor(lod.TierMinimal)
			rl.DrawSphereEx(pt.Pos, pt.Size, seg.Height, seg.Width, c)
		}
	}
}

// Unload releases GPU resources.
func (r *Renderer) Unload() {
	rl.UnloadModel(r.domeModel)
}
