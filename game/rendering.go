package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/config"
)

var skyColor = rl.Color{R: 12, G: 16, B: 28, A: 255}

// handleInput processes camera and pause controls.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		g.cam.Orbit(delta.X*0.005, -delta.Y*0.005)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Zoom(1 - wheel*0.1)
	}
}

// Draw renders the scene and HUD.
func (g *Game) Draw() {
	cfg := config.Cfg()

	rl.BeginDrawing()
	rl.ClearBackground(skyColor)

	g.renderer.BeginFrame()

	rl.BeginMode3D(g.cam.Raylib())

	g.renderer.DrawGround(cfg.Scene.WorldRadius)
	for _, b := range g.batteries {
		g.renderer.DrawDome(b)
	}

	// Everything past twice the far LOD band is cull fodder
	farDist := g.settings.Particles.LODDistances.Far * 2
	shadeTime := float32(g.simTime)

	query := g.airframeFilter.Query()
	for query.Next() {
		pos, vel, air := query.Get()
		p := rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
		v := rl.Vector3{X: vel.X, Y: vel.Y, Z: vel.Z}
		g.renderer.DrawAirframe(g.cam, p, v, air.Kind, farDist)
		g.renderer.DrawTrail(g.cam, g.trails[air.ID], shadeTime, farDist)
	}

	for _, geom := range g.fading {
		g.renderer.DrawTrail(g.cam, geom, shadeTime, farDist)
	}

	g.renderer.DrawExplosions(g.cam, g.pool, farDist)

	rl.EndMode3D()

	g.drawHUD()

	rl.EndDrawing()
}

// drawHUD draws the status overlay.
func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("FPS: %d  Quality: %s", rl.GetFPS(), g.level), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Intercepted: %d  Leaked: %d", g.missilesDown, g.missilesLeaked), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Bursts: %d  Particles: %d  Draw calls: %d",
		g.pool.ActiveSystems(), g.pool.ParticleCount(), g.renderer.DrawCalls()), 10, 60, 20, rl.White)
	if g.paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Yellow)
	}
}
