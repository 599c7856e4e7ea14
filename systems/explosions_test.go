package systems

import (
	"math/rand"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/quality"
)

func newTestPool(settings quality.Settings) *ExplosionPool {
	return NewExplosionPool(settings, rand.New(rand.NewSource(1)))
}

func TestSpawn_RespectsActiveSystemCap(t *testing.T) {
	settings := quality.DefaultSettings()
	settings = settings.Apply(quality.ForFPS(25)) // low tier: 10 systems
	pool := newTestPool(settings)

	origin := rl.Vector3{Y: 50}
	spawned := 0
	for i := 0; i < 30; i++ {
		if pool.Spawn(origin, 1, 1, 10) {
			spawned++
		}
	}

	if spawned != 10 {
		t.Errorf("spawned %d systems, want cap 10", spawned)
	}
	if pool.ActiveSystems() != 10 {
		t.Errorf("active systems = %d, want 10", pool.ActiveSystems())
	}
}

func TestSpawn_ParticleBudgetByLODBand(t *testing.T) {
	settings := quality.DefaultSettings() // 100 particles, bands 50/100/200
	cases := []struct {
		dist     float32
		maxCount int
		spawns   bool
	}{
		{10, 100, true},
		{75, 50, true},
		{150, 25, true},
		{500, 0, false}, // beyond far band: culled
	}

	for _, c := range cases {
		pool := newTestPool(settings)
		ok := pool.Spawn(rl.Vector3{Y: 50}, 1, 1, c.dist)
		if ok != c.spawns {
			t.Errorf("dist %v: spawn = %v, want %v", c.dist, ok, c.spawns)
			continue
		}
		if ok && pool.ParticleCount() > c.maxCount {
			t.Errorf("dist %v: %d particles, want <= %d", c.dist, pool.ParticleCount(), c.maxCount)
		}
	}
}

func TestSpawn_IgnoresDistanceWhenLODDisabled(t *testing.T) {
	settings := quality.DefaultSettings()
	settings.Particles.EnableLOD = false
	pool := newTestPool(settings)

	if !pool.Spawn(rl.Vector3{Y: 50}, 1, 1, 10000) {
		t.Fatal("spawn should succeed at any distance with LOD disabled")
	}
	if pool.ParticleCount() == 0 {
		t.Error("expected full particle budget with LOD disabled")
	}
}

func TestSpawn_DebrisOnlyWhenEnabled(t *testing.T) {
	settings := quality.DefaultSettings()
	settings.Effects.EnableDebris = false
	settings.Effects.EnableGroundEffects = false
	pool := newTestPool(settings)

	pool.Spawn(rl.Vector3{Y: 50}, 1, 1, 10)

	for _, b := range pool.Bursts() {
		for _, pt := range b.Particles {
			if pt.Debris {
				t.Fatal("debris particle spawned with debris disabled")
			}
		}
	}
}

func TestSpawn_GroundRingOnlyNearGround(t *testing.T) {
	settings := quality.DefaultSettings()
	pool := newTestPool(settings)

	pool.Spawn(rl.Vector3{Y: 80}, 1, 1, 10) // high airburst

	for _, b := range pool.Bursts() {
		for _, pt := range b.Particles {
			if pt.Ground {
				t.Fatal("ground ring spawned for high airburst")
			}
		}
	}

	pool = newTestPool(settings)
	pool.Spawn(rl.Vector3{Y: 0.5}, 1, 1, 10)

	found := false
	for _, b := range pool.Bursts() {
		for _, pt := range b.Particles {
			if pt.Ground {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected ground ring for near-ground detonation")
	}
}

func TestUpdate_ExpiresBurstsAndFreesSlots(t *testing.T) {
	settings := quality.DefaultSettings()
	pool := newTestPool(settings)

	pool.Spawn(rl.Vector3{Y: 50}, 1, 0.5, 10)
	for i := 0; i < 100; i++ {
		pool.Update(0.1)
	}

	if pool.ActiveSystems() != 0 {
		t.Errorf("active systems = %d after expiry, want 0", pool.ActiveSystems())
	}
	if pool.ParticleCount() != 0 {
		t.Errorf("particle count = %d after expiry, want 0", pool.ParticleCount())
	}

	// Slot is reusable
	if !pool.Spawn(rl.Vector3{Y: 50}, 1, 1, 10) {
		t.Error("expired slot was not reusable")
	}
}

func TestSetQuality_ShrinksPoolAtomically(t *testing.T) {
	settings := quality.DefaultSettings()
	pool := newTestPool(settings)

	for i := 0; i < 20; i++ {
		pool.Spawn(rl.Vector3{Y: 50}, 1, 5, 10)
	}

	low := settings.Apply(quality.ForFPS(10)) // pool 20, systems 10
	pool.SetQuality(low)

	if len(pool.Bursts()) > low.Effects.EffectPoolSize {
		t.Errorf("pool size = %d after shrink, want <= %d",
			len(pool.Bursts()), low.Effects.EffectPoolSize)
	}
	if pool.Quality() != low {
		t.Error("bundle was not replaced wholesale")
	}
}
