// Package lod provides the tiered level-of-detail geometry tables and
// named geometry presets for the engagement scene.
package lod

import "fmt"

// DetailTier is a discrete geometry quality level, ordered from most to
// least detailed. The zero value is TierHigh; callers that want the
// process-wide default should use DefaultTier.
type DetailTier uint8

const (
	TierHigh DetailTier = iota
	TierMedium
	TierLow
	TierMinimal

	tierCount
)

// DefaultTier is used when a caller does not care about a specific tier.
const DefaultTier = TierMedium

// String returns the tier name.
func (t DetailTier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	case TierMinimal:
		return "minimal"
	}
	return fmt.Sprintf("DetailTier(%d)", uint8(t))
}

// SphereSegments holds subdivision counts for a sphere primitive.
// Width is the slice count around the azimuth, Height the ring count
// along the polar axis. Types match raylib's DrawSphereEx arguments.
type SphereSegments struct {
	Width  int32
	Height int32
}

// Segment tables, indexed by tier. Values are strictly positive and
// non-increasing from TierHigh to TierMinimal.
var (
	sphereTable = [tierCount]SphereSegments{
		TierHigh:    {Width: 16, Height: 12},
		TierMedium:  {Width: 12, Height: 8},
		TierLow:     {Width: 8, Height: 6},
		TierMinimal: {Width: 4, Height: 3},
	}

	cylinderTable = [tierCount]int32{
		TierHigh:    12,
		TierMedium:  8,
		TierLow:     6,
		TierMinimal: 4,
	}
)

// SphereSegmentsFor returns the sphere subdivision counts for the tier.
// A tier outside the enumerated set is a programming error and panics.
func SphereSegmentsFor(tier DetailTier) SphereSegments {
	mustValidTier(tier)
	return sphereTable[tier]
}

// CylinderSegmentsFor returns the cylinder side count for the tier.
// A tier outside the enumerated set is a programming error and panics.
func CylinderSegmentsFor(tier DetailTier) int32 {
	mustValidTier(tier)
	return cylinderTable[tier]
}

// DefaultSphereSegments returns the sphere subdivisions for DefaultTier.
func DefaultSphereSegments() SphereSegments {
	return sphereTable[DefaultTier]
}

// DefaultCylinderSegments returns the cylinder side count for DefaultTier.
func DefaultCylinderSegments() int32 {
	return cylinderTable[DefaultTier]
}

func mustValidTier(tier DetailTier) {
	if tier >= tierCount {
		panic(fmt.Sprintf("lod: invalid detail tier %d", uint8(tier)))
	}
}
