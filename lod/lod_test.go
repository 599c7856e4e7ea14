package lod

import (
	"math"
	"testing"
)

var allTiers = []DetailTier{TierHigh, TierMedium, TierLow, TierMinimal}

func TestSphereSegments_MonotoneAcrossTiers(t *testing.T) {
	for i := 1; i < len(allTiers); i++ {
		hi := SphereSegmentsFor(allTiers[i-1])
		lo := SphereSegmentsFor(allTiers[i])

		if lo.Width > hi.Width {
			t.Errorf("width segments increase from %v (%d) to %v (%d)",
				allTiers[i-1], hi.Width, allTiers[i], lo.Width)
		}
		if lo.Height > hi.Height {
			t.Errorf("height segments increase from %v (%d) to %v (%d)",
				allTiers[i-1], hi.Height, allTiers[i], lo.Height)
		}
	}
}

func TestSphereSegments_StrictlyPositive(t *testing.T) {
	for _, tier := range allTiers {
		s := SphereSegmentsFor(tier)
		if s.Width <= 0 || s.Height <= 0 {
			t.Errorf("tier %v has non-positive segments %+v", tier, s)
		}
		if CylinderSegmentsFor(tier) <= 0 {
			t.Errorf("tier %v has non-positive cylinder segments", tier)
		}
	}
}

func TestCylinderSegments_MonotoneAcrossTiers(t *testing.T) {
	for i := 1; i < len(allTiers); i++ {
		hi := CylinderSegmentsFor(allTiers[i-1])
		lo := CylinderSegmentsFor(allTiers[i])
		if lo > hi {
			t.Errorf("cylinder segments increase from %v (%d) to %v (%d)",
				allTiers[i-1], hi, allTiers[i], lo)
		}
	}
}

func TestDefaultTierLookups(t *testing.T) {
	if DefaultSphereSegments() != SphereSegmentsFor(TierMedium) {
		t.Error("default sphere segments do not match medium tier")
	}
	if DefaultCylinderSegments() != CylinderSegmentsFor(TierMedium) {
		t.Error("default cylinder segments do not match medium tier")
	}
}

func TestInvalidTierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range tier")
		}
	}()
	SphereSegmentsFor(DetailTier(42))
}

func TestProjectileSpherePreset(t *testing.T) {
	if ProjectileSphere.Radius != 0.4 {
		t.Errorf("projectile radius = %v, want 0.4", ProjectileSphere.Radius)
	}
	if ProjectileSphere.Segments.Width != 4 || ProjectileSphere.Segments.Height != 3 {
		t.Errorf("projectile segments = %+v, want 4x3", ProjectileSphere.Segments)
	}
	if ProjectileSphere.IsDome() {
		t.Error("projectile preset should be a full sphere")
	}
}

func TestRadarDomePreset(t *testing.T) {
	if RadarDome.Segments != SphereSegmentsFor(TierMedium) {
		t.Errorf("dome segments = %+v, want medium tier", RadarDome.Segments)
	}
	if !RadarDome.IsDome() {
		t.Error("radar dome should sweep less than a full sphere")
	}
	if math.Abs(float64(RadarDome.PhiLength)-2*math.Pi) > 1e-6 {
		t.Errorf("dome azimuth sweep = %v, want full circle", RadarDome.PhiLength)
	}
	if math.Abs(float64(RadarDome.ThetaLength)-math.Pi/2) > 1e-6 {
		t.Errorf("dome polar sweep = %v, want quarter sphere", RadarDome.ThetaLength)
	}
}

func TestExplosionSpherePreset(t *testing.T) {
	if ExplosionSphere.Segments != SphereSegmentsFor(TierLow) {
		t.Errorf("explosion segments = %+v, want low tier", ExplosionSphere.Segments)
	}
}

// Presets are copies; mutating one must not leak back into the table.
func TestPresetsAreValueCopies(t *testing.T) {
	saved := ExplosionSphere
	ExplosionSphere.Segments.Width = 999
	if SphereSegmentsFor(TierLow).Width == 999 {
		t.Error("mutating a preset altered the tier table")
	}
	ExplosionSphere = saved
}
