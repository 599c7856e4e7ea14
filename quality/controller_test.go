package quality

import (
	"math"
	"testing"
)

func TestForFPS_BranchPartition(t *testing.T) {
	cases := []struct {
		fps  float64
		want Level
	}{
		{0, LevelLow},
		{15, LevelLow},
		{29.99, LevelLow},
		{30, LevelMedium}, // boundary inclusive to higher tier
		{40, LevelMedium},
		{44.99, LevelMedium},
		{45, LevelHigh}, // boundary inclusive to higher tier
		{60, LevelHigh},
		{240, LevelHigh},
	}

	for _, c := range cases {
		got := ForFPS(c.fps).Level
		if got != c.want {
			t.Errorf("ForFPS(%v).Level = %v, want %v", c.fps, got, c.want)
		}
	}
}

func TestForFPS_NonFiniteAndNegativeClampToLow(t *testing.T) {
	for _, fps := range []float64{-1, -1000, math.NaN()} {
		o := ForFPS(fps)
		if o.Level != LevelLow {
			t.Errorf("ForFPS(%v).Level = %v, want low", fps, o.Level)
		}
	}
}

func TestForFPS_LowBundle(t *testing.T) {
	o := ForFPS(25)

	if o.Particles.MaxActiveSystems != 10 {
		t.Errorf("MaxActiveSystems = %d, want 10", o.Particles.MaxActiveSystems)
	}
	if o.Particles.MaxParticlesPerSystem != 50 {
		t.Errorf("MaxParticlesPerSystem = %d, want 50", o.Particles.MaxParticlesPerSystem)
	}
	if o.Effects.EnableSmokeTrails {
		t.Error("smoke trails should be disabled at low tier")
	}
	if o.Effects.EnableGroundEffects || o.Effects.EnableDebris {
		t.Error("optional effects should be disabled at low tier")
	}
	if o.Effects.EffectPoolSize != 20 {
		t.Errorf("EffectPoolSize = %d, want 20", o.Effects.EffectPoolSize)
	}
	if o.Rendering != nil {
		t.Error("low branch must not carry a rendering block")
	}
}

func TestForFPS_MediumBundle(t *testing.T) {
	o := ForFPS(40)

	if o.Particles.MaxParticlesPerSystem != 75 {
		t.Errorf("MaxParticlesPerSystem = %d, want 75", o.Particles.MaxParticlesPerSystem)
	}
	if o.Particles.MaxActiveSystems != 15 {
		t.Errorf("MaxActiveSystems = %d, want 15", o.Particles.MaxActiveSystems)
	}
	if !o.Effects.EnableSmokeTrails || !o.Effects.EnableDebris {
		t.Error("smoke trails and debris should be enabled at medium tier")
	}
	if o.Effects.EnableGroundEffects {
		t.Error("ground effects should be disabled at medium tier")
	}
	if o.Rendering != nil {
		t.Error("medium branch must not carry a rendering block")
	}
}

func TestForFPS_HighBundleIsFullDefault(t *testing.T) {
	o := ForFPS(60)
	def := DefaultSettings()

	if o.Rendering == nil {
		t.Fatal("high branch must carry a rendering block")
	}
	if o.Rendering.ShadowMapSize != 1024 {
		t.Errorf("ShadowMapSize = %d, want 1024", o.Rendering.ShadowMapSize)
	}
	if o.Rendering.MaxDrawCalls != 150 {
		t.Errorf("MaxDrawCalls = %d, want 150", o.Rendering.MaxDrawCalls)
	}
	if o.Particles != def.Particles {
		t.Errorf("high particles = %+v, want default %+v", o.Particles, def.Particles)
	}
	if o.Effects != def.Effects {
		t.Errorf("high effects = %+v, want default %+v", o.Effects, def.Effects)
	}
}

func TestForFPS_BundleFieldValidity(t *testing.T) {
	for _, fps := range []float64{0, 25, 35, 60} {
		o := ForFPS(fps)

		if !o.Particles.LODDistances.Valid() {
			t.Errorf("fps=%v: LOD bands %+v not strictly ordered", fps, o.Particles.LODDistances)
		}
		if o.Particles.MaxParticlesPerSystem < 0 || o.Particles.MaxActiveSystems < 0 {
			t.Errorf("fps=%v: negative particle limits", fps)
		}
		if o.Effects.EffectPoolSize < 0 {
			t.Errorf("fps=%v: negative effect pool size", fps)
		}
	}
}

func TestApply_RetainsRenderingBelowHigh(t *testing.T) {
	current := DefaultSettings()
	current.Rendering.ShadowMapSize = 2048 // locally tweaked renderer state

	next := current.Apply(ForFPS(20))

	if next.Rendering.ShadowMapSize != 2048 {
		t.Error("low-tier apply must retain the current rendering block")
	}
	if next.Particles.MaxActiveSystems != 10 {
		t.Error("low-tier apply must replace the particles block wholesale")
	}
	if next.Effects.EnableSmokeTrails {
		t.Error("low-tier apply must replace the effects block wholesale")
	}
}

func TestApply_ReplacesRenderingAtHigh(t *testing.T) {
	current := DefaultSettings()
	current.Rendering.MaxDrawCalls = 10

	next := current.Apply(ForFPS(90))

	if next.Rendering.MaxDrawCalls != 150 {
		t.Error("high-tier apply must restore the default rendering block")
	}
	if next != DefaultSettings() {
		t.Errorf("high-tier apply = %+v, want full default bundle", next)
	}
}
