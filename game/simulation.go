package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/RoeeJ/IronDome-sub005/components"
	"github.com/RoeeJ/IronDome-sub005/config"
	"github.com/RoeeJ/IronDome-sub005/systems"
	"github.com/RoeeJ/IronDome-sub005/trail"
)

// step runs a single tick of the simulation.
func (g *Game) step() {
	cfg := config.Cfg()

	// 1. Launch cadence: new threats and their interceptors
	g.updateLaunches(cfg)

	// 2. Snapshot positions and entity handles by airframe ID
	positions, entities := g.snapshotAirframes()

	// 3. Guidance, integration, fuse checks, trail emission
	g.updateFlight(cfg, positions, entities)

	// 4. Detonations and entity removal
	g.cleanupDetonated(cfg, entities)

	// 5. Effects
	g.pool.Update(DT)
	g.updateFadingTrails()

	g.simTime += DT
	g.tick++
}

// updateLaunches spawns incoming missiles on the configured cadence and
// fires one interceptor per launch.
func (g *Game) updateLaunches(cfg *config.Config) {
	g.launchTimer += DT
	if g.launchTimer < cfg.Scene.LaunchInterval {
		return
	}
	g.launchTimer -= cfg.Scene.LaunchInterval

	missileID := g.spawnMissile(cfg)
	g.fireInterceptor(cfg, missileID)
}

// snapshotAirframes collects per-ID positions and entity handles.
// Guidance and fuse checks read the snapshot so that iteration order
// does not affect the outcome.
func (g *Game) snapshotAirframes() (map[uint32]rl.Vector3, map[uint32]ecs.Entity) {
	positions := make(map[uint32]rl.Vector3)
	entities := make(map[uint32]ecs.Entity)

	query := g.airframeFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, _, air := query.Get()
		positions[air.ID] = rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
		entities[air.ID] = entity
	}
	return positions, entities
}

// updateFlight advances every airframe by one tick: interceptor
// guidance, position integration, fuel burn, proximity fuse and trail
// bookkeeping.
func (g *Game) updateFlight(cfg *config.Config, positions map[uint32]rl.Vector3, entities map[uint32]ecs.Entity) {
	fuseRadius := cfg.Scene.FuseRadius
	var hitMissiles []uint32

	query := g.airframeFilter.Query()
	for query.Next() {
		pos, vel, air := query.Get()

		if air.Kind == components.KindInterceptor {
			g.steerInterceptor(cfg, pos, vel, air, positions)
		}

		// Integrate
		pos.X += vel.X * DT
		pos.Y += vel.Y * DT
		pos.Z += vel.Z * DT

		// Fuel burn drives the thrust flag and trail intensity
		if air.Fuel > 0 {
			air.Fuel -= DT
			air.Thrusting = air.Fuel > 0
		}

		// Proximity fuse
		if air.Kind == components.KindInterceptor && !air.Detonated {
			if targetID, ok := g.targets[air.ID]; ok {
				if targetPos, alive := positions[targetID]; alive {
					here := rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
					if distance(here, targetPos) <= fuseRadius {
						air.Detonated = true
						hitMissiles = append(hitMissiles, targetID)
					}
				}
			}
		}

		// Ground impact
		if pos.Y <= 0 && !air.Detonated {
			pos.Y = 0
			air.Detonated = true
			if air.Kind == components.KindMissile {
				g.missilesLeaked++
			}
		}

		g.updateTrail(cfg, pos, air)
	}

	// Mark intercepted missiles outside the iteration that found them
	for _, id := range hitMissiles {
		entity, ok := entities[id]
		if !ok {
			continue
		}
		if air := g.airMap.Get(entity); air != nil && !air.Detonated {
			air.Detonated = true
			g.missilesDown++
		}
	}
}

// steerInterceptor applies pure-pursuit guidance toward the paired
// missile. An interceptor whose target is gone coasts until its fuel
// runs out, then self-destructs.
func (g *Game) steerInterceptor(cfg *config.Config, pos *components.Position, vel *components.Velocity, air *components.Airframe, positions map[uint32]rl.Vector3) {
	targetID, ok := g.targets[air.ID]
	if !ok {
		if air.Fuel <= 0 {
			air.Detonated = true
		}
		return
	}
	targetPos, alive := positions[targetID]
	if !alive {
		delete(g.targets, air.ID)
		return
	}

	here := rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
	desired := normalizeScale(rl.Vector3Subtract(targetPos, here), cfg.Scene.InterceptorSpeed)

	// Blend toward the desired velocity; full authority only under thrust
	turn := float32(6 * DT)
	if !air.Thrusting {
		turn *= 0.3
	}
	current := rl.Vector3{X: vel.X, Y: vel.Y, Z: vel.Z}
	next := rl.Vector3Lerp(current, desired, turn)
	vel.X, vel.Y, vel.Z = next.X, next.Y, next.Z
}

// updateTrail ages the airframe's ribbon and emits new points on the
// configured spacing. Emission is gated by the smoke-trails effect
// toggle; aging always runs so stale points keep fading.
func (g *Game) updateTrail(cfg *config.Config, pos *components.Position, air *components.Airframe) {
	geom, ok := g.trails[air.ID]
	if !ok {
		geom = trail.NewGeometry(cfg.Trails.MaxPoints)
		g.trails[air.ID] = geom
	}

	systems.AdvanceTrail(geom, DT, float32(cfg.Trails.MaxAge))

	if !g.settings.Effects.EnableSmokeTrails {
		return
	}

	air.EmitTimer += DT
	for air.EmitTimer >= cfg.Trails.PointSpacing {
		air.EmitTimer -= cfg.Trails.PointSpacing
		systems.EmitTrailPoint(geom, rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}, air.Thrusting)
	}
}

// cleanupDetonated spawns explosion bursts for detonated airframes and
// removes their entities. Trails move to the fading list so they finish
// their fade-out.
func (g *Game) cleanupDetonated(cfg *config.Config, entities map[uint32]ecs.Entity) {
	type detonation struct {
		entity ecs.Entity
		id     uint32
		pos    rl.Vector3
	}
	var toRemove []detonation

	query := g.airframeFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, _, air := query.Get()
		if air.Detonated {
			toRemove = append(toRemove, detonation{
				entity: entity,
				id:     air.ID,
				pos:    rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z},
			})
		}
	}

	for _, d := range toRemove {
		camDist := float32(0)
		if g.cam != nil {
			camDist = g.cam.DistanceTo(d.pos)
		}
		g.pool.Spawn(d.pos, cfg.Scene.FuseRadius, float32(cfg.Scene.ExplosionDuration), camDist)

		g.airframeMapper.Remove(d.entity)

		if geom, ok := g.trails[d.id]; ok {
			g.fading = append(g.fading, geom)
			delete(g.trails, d.id)
		}
		delete(g.targets, d.id)
		for interceptorID, targetID := range g.targets {
			if targetID == d.id {
				delete(g.targets, interceptorID)
			}
		}
	}
}

// updateFadingTrails ages orphaned ribbons and drops the fully expired
// ones.
func (g *Game) updateFadingTrails() {
	maxAge := float32(config.Cfg().Trails.MaxAge)
	kept := g.fading[:0]
	for _, geom := range g.fading {
		systems.AdvanceTrail(geom, DT, maxAge)
		if systems.LivePoints(geom) > 0 {
			kept = append(kept, geom)
		}
	}
	g.fading = kept
}
