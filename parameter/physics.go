// Package parameter centralizes the tuning constants of the simulation.
// Values are defaults; scenario configuration may override the ones exposed
// through steering.Config and engine.Scenario.
package parameter

// Physical substrate
const (
	// MinMass floors the mass used in force-to-acceleration scaling so a
	// zero or negative configured mass cannot produce unbounded acceleration
	MinMass = 0.01

	// DefaultMaxSpeed caps velocity for bodies that do not configure one
	DefaultMaxSpeed = 4.0

	// DefaultBodySize is the default width/height of a body in world units
	DefaultBodySize = 1.0
)
