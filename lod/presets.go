package lod

import "math"

// SpherePreset binds a fixed radius and angular sweep to the segment
// counts of one hardcoded tier. Presets are derived from the tier table
// once at package init, by value, and are never modified afterwards.
type SpherePreset struct {
	Radius   float32
	Segments SphereSegments

	// Angular sweep in radians. A full sphere spans PhiLength=2*pi and
	// ThetaLength=pi; the radar dome stops at ThetaLength=pi/2.
	PhiStart    float32
	PhiLength   float32
	ThetaStart  float32
	ThetaLength float32
}

// Named presets. Tier choices trade visual prominence against instance
// count: domes are few and large, explosions large but short-lived,
// projectiles small but numerous.
var (
	// RadarDome is the hemispherical battery dome: full azimuth sweep,
	// quarter-sphere polar sweep, medium tier.
	RadarDome SpherePreset

	// ExplosionSphere is the blast shell, low tier.
	ExplosionSphere SpherePreset

	// ProjectileSphere is the warhead body, minimal tier.
	ProjectileSphere SpherePreset
)

func init() {
	// Explicit composition: the tier table is fixed above, presets copy
	// their segment counts from it here. No preset references the table
	// after init.
	RadarDome = SpherePreset{
		Radius:      12,
		Segments:    SphereSegmentsFor(TierMedium),
		PhiStart:    0,
		PhiLength:   2 * math.Pi,
		ThetaStart:  0,
		ThetaLength: math.Pi / 2,
	}
	ExplosionSphere = SpherePreset{
		Radius:      1,
		Segments:    SphereSegmentsFor(TierLow),
		PhiLength:   2 * math.Pi,
		ThetaLength: math.Pi,
	}
	ProjectileSphere = SpherePreset{
		Radius:      0.4,
		Segments:    SphereSegmentsFor(TierMinimal),
		PhiLength:   2 * math.Pi,
		ThetaLength: math.Pi,
	}
}

// IsDome reports whether the preset sweeps less than a full sphere on
// the polar axis.
func (p SpherePreset) IsDome() bool {
	return p.ThetaLength < math.Pi
}
