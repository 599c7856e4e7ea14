package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/components"
	"github.com/RoeeJ/IronDome-sub005/config"
)

// spawnMissile creates an incoming threat on the spawn ring, aimed at a
// point near a random battery. Returns the new airframe ID.
func (g *Game) spawnMissile(cfg *config.Config) uint32 {
	id := g.nextID
	g.nextID++

	angle := float64(g.rng.Float32()) * 2 * math.Pi
	altitude := 30 + g.rng.Float32()*40
	start := rl.Vector3{
		X: cfg.Scene.WorldRadius * cosf(angle),
		Y: altitude,
		Z: cfg.Scene.WorldRadius * sinf(angle),
	}

	// Aim near a battery with some scatter
	battery := g.batteries[g.rng.Intn(len(g.batteries))]
	aim := rl.Vector3{
		X: battery.X + (g.rng.Float32()-0.5)*20,
		Z: battery.Z + (g.rng.Float32()-0.5)*20,
	}

	vel := normalizeScale(rl.Vector3Subtract(aim, start), cfg.Scene.MissileSpeed)

	pos := components.Position{X: start.X, Y: start.Y, Z: start.Z}
	velocity := components.Velocity{X: vel.X, Y: vel.Y, Z: vel.Z}
	air := components.Airframe{
		ID:        id,
		Kind:      components.KindMissile,
		Thrusting: true,
		Fuel:      MissileBurnTime,
	}

	g.airframeMapper.NewEntity(&pos, &velocity, &air)
	return id
}

// fireInterceptor launches from the battery nearest the threat's spawn
// point and pairs the interceptor with its target.
func (g *Game) fireInterceptor(cfg *config.Config, targetID uint32) {
	id := g.nextID
	g.nextID++

	// Nearest battery to the target's current position
	targetPos := g.airframePosition(targetID)
	best := g.batteries[0]
	bestDist := distance(best, targetPos)
	for _, b := range g.batteries[1:] {
		if d := distance(b, targetPos); d < bestDist {
			best = b
			bestDist = d
		}
	}

	start := rl.Vector3{X: best.X, Y: 1, Z: best.Z}
	vel := normalizeScale(rl.Vector3Subtract(targetPos, start), cfg.Scene.InterceptorSpeed)

	pos := components.Position{X: start.X, Y: start.Y, Z: start.Z}
	velocity := components.Velocity{X: vel.X, Y: vel.Y, Z: vel.Z}
	air := components.Airframe{
		ID:        id,
		Kind:      components.KindInterceptor,
		Thrusting: true,
		Fuel:      InterceptorBurnTime,
	}

	g.airframeMapper.NewEntity(&pos, &velocity, &air)
	g.targets[id] = targetID
}

// airframePosition finds the position of an airframe by ID. Zero vector
// when the airframe is gone.
func (g *Game) airframePosition(id uint32) rl.Vector3 {
	query := g.airframeFilter.Query()
	for query.Next() {
		pos, _, air := query.Get()
		if air.ID == id {
			query.Close()
			return rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
		}
	}
	return rl.Vector3{}
}
