// Package renderer draws the engagement scene with tier-driven geometry
// detail. All segment counts come from the lod tables; the active
// render settings cap total draw calls per frame.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/camera"
	"github.com/RoeeJ/IronDome-sub005/components"
	"github.com/RoeeJ/IronDome-sub005/lod"
	"github.com/RoeeJ/IronDome-sub005/quality"
)

// Palette
var (
	groundColor      = rl.Color{R: 40, G: 48, B: 36, A: 255}
	domeColor        = rl.Color{R: 80, G: 160, B: 220, A: 60}
	domeWireColor    = rl.Color{R: 120, G: 200, B: 255, A: 120}
	missileColor     = rl.Color{R: 220, G: 60, B: 50, A: 255}
	interceptorColor = rl.Color{R: 230, G: 230, B: 240, A: 255}
)

// Renderer owns the GPU-side resources of the scene and tracks the
// per-frame draw-call budget.
type Renderer struct {
	domeModel rl.Model
	domeTier  lod.DetailTier

	settings  quality.RenderSettings
	drawCalls int
}

// New creates a renderer and uploads the radar dome mesh at the tier of
// the RadarDome preset.
func New() *Renderer {
	r := &Renderer{settings: quality.DefaultSettings().Rendering}
	r.loadDome(lod.DefaultTier)
	return r
}

func (r *Renderer) loadDome(tier lod.DetailTier) {
	seg := lod.SphereSegmentsFor(tier)
	mesh := rl.GenMeshHemiSphere(lod.RadarDome.Radius, int(seg.Height), int(seg.Width))
	r.domeModel = rl.LoadModelFromMesh(mesh)
	r.domeTier = tier
}

// SetQuality installs the render settings of a new performance bundle.
// The dome mesh stays at its preset tier; only the draw budget and
// culling behavior change.
func (r *Renderer) SetQuality(s quality.Settings) {
	r.settings = s.Rendering
}

// BeginFrame resets the draw-call budget counter.
func (r *Renderer) BeginFrame() {
	r.drawCalls = 0
}

// DrawCalls returns the number of draw calls issued this frame.
func (r *Renderer) DrawCalls() int {
	return r.drawCalls
}

// budget consumes one draw call from the frame budget. Returns false
// once the cap is exhausted; callers skip the draw.
func (r *Renderer) budget() bool {
	if r.drawCalls >= r.settings.MaxDrawCalls {
		return false
	}
	r.drawCalls++
	return true
}

// culled reports whether a point should be skipped under frustum
// culling. The check is a conservative distance cull against the far
// LOD band scaled by the camera's orbit distance.
func (r *Renderer) culled(cam *camera.Camera, p rl.Vector3, farDist float32) bool {
	if !r.settings.EnableFrustumCulling {
		return false
	}
	return cam.DistanceTo(p) > farDist
}

// DrawGround draws the terrain plane.
func (r *Renderer) DrawGround(worldRadius float32) {
	if !r.budget() {
		return
	}
	size := worldRadius * 2
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: size, Y: size}, groundColor)
}

// DrawDome draws a battery's protective radar dome at pos using the
// RadarDome preset. The dome is translucent with a wireframe overlay.
func (r *Renderer) DrawDome(pos rl.Vector3) {
	if !r.budget() {
		return
	}
	rl.DrawModel(r.domeModel, pos, 1, domeColor)
	if r.budget() {
		rl.DrawModelWires(r.domeModel, pos, 1, domeWireColor)
	}
}

// DrawAirframe draws a missile or interceptor body. The nose is a
// sphere at the ProjectileSphere preset; the body is a cylinder whose
// side count follows the same tier.
func (r *Renderer) DrawAirframe(cam *camera.Camera, pos, vel rl.Vector3, kind components.Kind, farDist float32) {
	if r.culled(cam, pos, farDist) {
		return
	}

	color := missileColor
	if kind == components.KindInterceptor {
		color = interceptorColor
	}

	preset := lod.ProjectileSphere
	if r.budget() {
		rl.DrawSphereEx(pos, preset.Radius, preset.Segments.Height, preset.Segments.Width, color)
	}

	// Body trails behind the nose along the velocity vector
	speed := rl.Vector3Length(vel)
	if speed > 0.01 && r.budget() {
		dir := rl.Vector3Scale(vel, 1/speed)
		tail := rl.Vector3Add(pos, rl.Vector3Scale(dir, -1.2))
		sides := lod.CylinderSegmentsFor(lod.TierMinimal)
		rl.DrawCylinderEx(tail, pos, preset.Radius*0.5, preset.Radius*0.7, sides, color)
	}
}
