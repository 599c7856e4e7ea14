// Package quality derives a self-consistent performance configuration
// bundle from an observed frames-per-second sample.
package quality

// LODBands holds the distance thresholds at which particle systems step
// down in detail. Invariant: Near < Medium < Far.
type LODBands struct {
	Near   float32
	Medium float32
	Far    float32
}

// Valid reports whether the bands are strictly ordered.
func (b LODBands) Valid() bool {
	return b.Near < b.Medium && b.Medium < b.Far
}

// ParticleSettings caps particle system spawning and distance banding.
type ParticleSettings struct {
	EnableLOD             bool
	MaxParticlesPerSystem int
	MaxActiveSystems      int
	LODDistances          LODBands
}

// RenderSettings caps renderer-side work per frame.
type RenderSettings struct {
	MaxDrawCalls         int
	EnableFrustumCulling bool
	ShadowMapSize        int32
	Antialias            bool
}

// EffectSettings toggles optional effects and sizes the effect pool.
type EffectSettings struct {
	EnableSmokeTrails   bool
	EnableGroundEffects bool
	EnableDebris        bool
	EffectPoolSize      int
}

// Settings is the complete performance bundle. Exactly one Settings
// value is current in the owning render loop; it is replaced wholesale
// via Apply, never field-patched.
type Settings struct {
	Particles ParticleSettings
	Rendering RenderSettings
	Effects   EffectSettings
}

// DefaultSettings returns the full high-quality configuration.
func DefaultSettings() Settings {
	return Settings{
		Particles: ParticleSettings{
			EnableLOD:             true,
			MaxParticlesPerSystem: 100,
			MaxActiveSystems:      20,
			LODDistances:          LODBands{Near: 50, Medium: 100, Far: 200},
		},
		Rendering: RenderSettings{
			MaxDrawCalls:         150,
			EnableFrustumCulling: true,
			ShadowMapSize:        1024,
			Antialias:            true,
		},
		Effects: EffectSettings{
			EnableSmokeTrails:   true,
			EnableGroundEffects: true,
			EnableDebris:        true,
			EffectPoolSize:      50,
		},
	}
}
