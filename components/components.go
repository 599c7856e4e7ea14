// Package components defines ECS components for the engagement scene.
package components

// Kind distinguishes airframe roles.
type Kind uint8

const (
	KindMissile     Kind = iota // Incoming ballistic threat
	KindInterceptor             // Guided defender
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindInterceptor {
		return "interceptor"
	}
	return "missile"
}

// Position is an entity's world position.
type Position struct {
	X, Y, Z float32
}

// Velocity is an entity's velocity in world units per second.
type Velocity struct {
	X, Y, Z float32
}

// Airframe holds flight state for missiles and interceptors.
// Side tables in the game (trail geometry, guidance pairing) are keyed
// by ID, following the same pattern as any per-entity lookaside state.
type Airframe struct {
	ID   uint32
	Kind Kind

	// Thrust state drives exhaust trail intensity.
	Thrusting bool
	Fuel      float32 // Seconds of burn remaining

	// EmitTimer accumulates toward the next trail point emission.
	EmitTimer float64

	// Detonated marks the airframe for removal this frame.
	Detonated bool
}
