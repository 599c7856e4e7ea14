package quality

import "math"

// Level identifies which controller branch produced an Override.
type Level uint8

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	}
	return "unknown"
}

// FPS thresholds. Boundaries are inclusive to the higher tier:
// fps=30 is medium, fps=45 is high.
const (
	lowFPSCeiling    = 30
	mediumFPSCeiling = 45
)

// Override is a tagged, possibly partial bundle produced by ForFPS.
// Particles and Effects are always present and replace their sections
// wholesale on Apply. Rendering is only carried by the high branch:
// below high tier the renderer keeps whatever rendering settings are
// already current. That asymmetry is deliberate — rendering is not
// adjusted below the high tier.
type Override struct {
	Level     Level
	Particles ParticleSettings
	Effects   EffectSettings
	Rendering *RenderSettings
}

// ForFPS maps an FPS sample to exactly one override. The function is
// pure and stateless; no smoothing or debouncing is applied here.
// Negative or NaN input clamps to the low branch.
func ForFPS(fps float64) Override {
	if math.IsNaN(fps) || fps < 0 {
		fps = 0
	}

	switch {
	case fps < lowFPSCeiling:
		return Override{
			Level: LevelLow,
			Particles: ParticleSettings{
				EnableLOD:             true,
				MaxParticlesPerSystem: 50,
				MaxActiveSystems:      10,
				LODDistances:          LODBands{Near: 30, Medium: 60, Far: 100},
			},
			Effects: EffectSettings{
				EnableSmokeTrails:   false,
				EnableGroundEffects: false,
				EnableDebris:        false,
				EffectPoolSize:      20,
			},
		}
	case fps < mediumFPSCeiling:
		return Override{
			Level: LevelMedium,
			Particles: ParticleSettings{
				EnableLOD:             true,
				MaxParticlesPerSystem: 75,
				MaxActiveSystems:      15,
				LODDistances:          LODBands{Near: 40, Medium: 80, Far: 150},
			},
			Effects: EffectSettings{
				EnableSmokeTrails:   true,
				EnableGroundEffects: false,
				EnableDebris:        true,
				EffectPoolSize:      30,
			},
		}
	default:
		full := DefaultSettings()
		return Override{
			Level:     LevelHigh,
			Particles: full.Particles,
			Effects:   full.Effects,
			Rendering: &full.Rendering,
		}
	}
}

// Apply merges the override onto the current bundle and returns the new
// bundle. Particles and Effects are replaced wholesale; Rendering is
// replaced only when the override carries one, otherwise the current
// rendering block is retained.
func (s Settings) Apply(o Override) Settings {
	next := Settings{
		Particles: o.Particles,
		Rendering: s.Rendering,
		Effects:   o.Effects,
	}
	if o.Rendering != nil {
		next.Rendering = *o.Rendering
	}
	return next
}
