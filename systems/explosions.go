// Package systems provides the effect subsystems that consume the
// quality controller's performance bundle.
package systems

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/quality"
)

// BlastParticle is one fragment of an explosion burst.
type BlastParticle struct {
	Pos  rl.Vector3
	Vel  rl.Vector3
	Life float32 // Seconds lived so far
	Max  float32 // Lifetime in seconds
	Size float32

	// Debris fragments fly ballistically and render darker; ground
	// particles hug the terrain plane.
	Debris bool
	Ground bool
}

// Alpha returns the particle's remaining-life fade in [0,1].
func (p *BlastParticle) Alpha() float32 {
	if p.Max <= 0 {
		return 0
	}
	a := 1 - p.Life/p.Max
	if a < 0 {
		a = 0
	}
	return a
}

// Burst is one active explosion system drawn from the pool.
type Burst struct {
	Origin    rl.Vector3
	Age       float32
	Duration  float32
	Radius    float32
	Particles []BlastParticle

	active bool
}

// Active reports whether the burst slot is in use.
func (b *Burst) Active() bool {
	return b.active
}

// ExplosionPool recycles burst slots and enforces the caps of the
// current performance bundle. The bundle is applied atomically via
// SetQuality on each quality-change event; Spawn and Update consult
// only the stored copy.
type ExplosionPool struct {
	bursts   []Burst
	settings quality.Settings
	rng      *rand.Rand
}

// NewExplosionPool creates a pool sized for the given settings.
func NewExplosionPool(settings quality.Settings, rng *rand.Rand) *ExplosionPool {
	p := &ExplosionPool{rng: rng}
	p.SetQuality(settings)
	return p
}

// SetQuality replaces the pool's performance bundle wholesale and
// resizes the slot pool to the new effect pool size. Excess inactive
// slots are dropped; active bursts beyond the new capacity finish
// their remaining lifetime but their slots are not reused.
func (p *ExplosionPool) SetQuality(settings quality.Settings) {
	p.settings = settings

	size := settings.Effects.EffectPoolSize
	if len(p.bursts) > size {
		kept := make([]Burst, 0, size)
		for i := range p.bursts {
			if p.bursts[i].active {
				kept = append(kept, p.bursts[i])
			}
		}
		if len(kept) > size {
			kept = kept[:size]
		}
		p.bursts = kept
	}
}

// Quality returns the pool's current performance bundle.
func (p *ExplosionPool) Quality() quality.Settings {
	return p.settings
}

// Spawn starts a new burst at origin, radius and duration given by the
// caller, camDist the distance from the camera for LOD banding.
// Returns false when the active-system cap or pool capacity rejects
// the spawn, or when the LOD band culls it entirely.
func (p *ExplosionPool) Spawn(origin rl.Vector3, radius, duration, camDist float32) bool {
	if p.ActiveSystems() >= p.settings.Particles.MaxActiveSystems {
		return false
	}

	count := p.particleBudget(camDist)
	if count == 0 {
		return false
	}

	b := p.takeSlot()
	if b == nil {
		return false
	}

	b.Origin = origin
	b.Age = 0
	b.Duration = duration
	b.Radius = radius
	b.active = true
	b.Particles = b.Particles[:0]

	p.fillBurst(b, count)
	return true
}

// particleBudget scales the per-system particle cap by the LOD band
// the camera distance falls into: full inside Near, half inside
// Medium, quarter inside Far, culled beyond Far.
func (p *ExplosionPool) particleBudget(camDist float32) int {
	budget := p.settings.Particles.MaxParticlesPerSystem
	if !p.settings.Particles.EnableLOD {
		return budget
	}

	bands := p.settings.Particles.LODDistances
	switch {
	case camDist <= bands.Near:
		return budget
	case camDist <= bands.Medium:
		return budget / 2
	case camDist <= bands.Far:
		return budget / 4
	default:
		return 0
	}
}

func (p *ExplosionPool) takeSlot() *Burst {
	for i := range p.bursts {
		if !p.bursts[i].active {
			return &p.bursts[i]
		}
	}
	if len(p.bursts) < p.settings.Effects.EffectPoolSize {
		p.bursts = append(p.bursts, Burst{})
		return &p.bursts[len(p.bursts)-1]
	}
	return nil
}

// fillBurst populates a burst with fireball, debris and ground
// particles within the given budget.
func (p *ExplosionPool) fillBurst(b *Burst, budget int) {
	fireball := budget
	debris := 0
	if p.settings.Effects.EnableDebris {
		debris = budget / 4
		fireball = budget - debris
	}

	for i := 0; i < fireball; i++ {
		dir := p.randomDirection()
		speed := b.Radius * (1.5 + p.rng.Float32()*2)
		b.Particles = append(b.Particles, BlastParticle{
			Pos:  b.Origin,
			Vel:  rl.Vector3Scale(dir, speed),
			Max:  b.Duration * (0.4 + p.rng.Float32()*0.6),
			Size: 0.15 + p.rng.Float32()*0.2,
		})
	}

	for i := 0; i < debris; i++ {
		dir := p.randomDirection()
		speed := b.Radius * (3 + p.rng.Float32()*3)
		b.Particles = append(b.Particles, BlastParticle{
			Pos:    b.Origin,
			Vel:    rl.Vector3Scale(dir, speed),
			Max:    b.Duration * (0.8 + p.rng.Float32()*0.7),
			Size:   0.08 + p.rng.Float32()*0.1,
			Debris: true,
		})
	}

	// Dust ring for low detonations
	if p.settings.Effects.EnableGroundEffects && b.Origin.Y < b.Radius*2 {
		ring := budget / 5
		for i := 0; i < ring; i++ {
			angle := float32(i) / float32(ring) * 2 * math.Pi
			vel := rl.Vector3{
				X: float32(math.Cos(float64(angle))) * b.Radius * 2,
				Z: float32(math.Sin(float64(angle))) * b.Radius * 2,
			}
			b.Particles = append(b.Particles, BlastParticle{
				Pos:    rl.Vector3{X: b.Origin.X, Y: 0.1, Z: b.Origin.Z},
				Vel:    vel,
				Max:    b.Duration * 1.5,
				Size:   0.3,
				Ground: true,
			})
		}
	}
}

func (p *ExplosionPool) randomDirection() rl.Vector3 {
	// Uniform direction on the unit sphere
	z := p.rng.Float32()*2 - 1
	a := p.rng.Float32() * 2 * math.Pi
	r := float32(math.Sqrt(float64(1 - z*z)))
	return rl.Vector3{
		X: r * float32(math.Cos(float64(a))),
		Y: z,
		Z: r * float32(math.Sin(float64(a))),
	}
}

// Update advances all active bursts by dt seconds.
func (p *ExplosionPool) Update(dt float32) {
	for i := range p.bursts {
		b := &p.bursts[i]
		if !b.active {
			continue
		}

		b.Age += dt

		alive := b.Particles[:0]
		for j := range b.Particles {
			pt := &b.Particles[j]
			pt.Life += dt
			if pt.Life >= pt.Max {
				continue
			}

			if pt.Ground {
				// Dust expands along the ground with heavy drag
				pt.Vel = rl.Vector3Scale(pt.Vel, 1-2*dt)
			} else {
				pt.Vel.Y -= 9.8 * dt
				if !pt.Debris {
					pt.Vel = rl.Vector3Scale(pt.Vel, 1-1.5*dt)
				}
			}
			pt.Pos = rl.Vector3Add(pt.Pos, rl.Vector3Scale(pt.Vel, dt))
			alive = append(alive, *pt)
		}
		b.Particles = alive

		if b.Age >= b.Duration && len(b.Particles) == 0 {
			b.active = false
		}
	}
}

// ActiveSystems returns the number of bursts currently running.
func (p *ExplosionPool) ActiveSystems() int {
	n := 0
	for i := range p.bursts {
		if p.bursts[i].active {
			n++
		}
	}
	return n
}

// ParticleCount returns the total live particle count across bursts.
func (p *ExplosionPool) ParticleCount() int {
	n := 0
	for i := range p.bursts {
		if p.bursts[i].active {
			n += len(p.bursts[i].Particles)
		}
	}
	return n
}

// Bursts exposes the slot pool for rendering.
func (p *ExplosionPool) Bursts() []Burst {
	return p.bursts
}
