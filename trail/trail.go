// Package trail provides the per-vertex attribute schema and the
// deterministic shading function for exhaust/trail ribbons.
package trail

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Geometry is a trail ribbon: a fixed-capacity point buffer with two
// parallel per-vertex scalar channels, age and intensity. The channels
// are indexed identically to Positions; [0, MaxPoints) is the only
// valid range. The owning emitter writes age/intensity once per frame
// before the shading stage reads them later the same frame.
type Geometry struct {
	Positions []rl.Vector3
	Age       []float32
	Intensity []float32

	// Count is the number of live points, oldest first.
	Count int
}

// NewGeometry creates a trail geometry with capacity for maxPoints
// points and freshly attached attribute channels. maxPoints must be
// positive.
func NewGeometry(maxPoints int) *Geometry {
	if maxPoints <= 0 {
		panic("trail: maxPoints must be positive")
	}
	g := &Geometry{
		Positions: make([]rl.Vector3, maxPoints),
	}
	Attach(g, maxPoints)
	return g
}

// Attach allocates two zero-initialized scalar channels of length
// maxPoints and binds them to the geometry. Calling Attach again
// replaces both channels wholesale; the old buffers are abandoned.
func Attach(g *Geometry, maxPoints int) {
	if maxPoints <= 0 {
		panic("trail: maxPoints must be positive")
	}
	g.Age = make([]float32, maxPoints)
	g.Intensity = make([]float32, maxPoints)
}

// MaxPoints returns the channel capacity.
func (g *Geometry) MaxPoints() int {
	return len(g.Age)
}

// Push inserts a new point at the tail of the ribbon with zero age and
// the given intensity. When the buffer is full the oldest point is
// dropped and the channels shift with the positions to stay parallel.
// Returns the index of the new point.
func (g *Geometry) Push(p rl.Vector3, intensity float32) int {
	n := g.MaxPoints()
	if g.Count == n {
		copy(g.Positions, g.Positions[1:])
		copy(g.Age, g.Age[1:])
		copy(g.Intensity, g.Intensity[1:])
		g.Count--
	}
	i := g.Count
	g.Positions[i] = p
	g.Age[i] = 0
	g.Intensity[i] = intensity
	g.Count++
	return i
}

// Reset drops all live points without reallocating the channels.
func (g *Geometry) Reset() {
	g.Count = 0
	for i := range g.Age {
		g.Age[i] = 0
		g.Intensity[i] = 0
	}
}
