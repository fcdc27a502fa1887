// Package core holds the primitive types shared across the simulation:
// entity identity and kinetic state.
package core

import "sync/atomic"

// Entity is a unique identifier for a simulated entity
type Entity uint64

var nextEntity atomic.Uint64

// NewEntity returns a process-unique entity ID. IDs start at 1; zero is
// reserved as the invalid entity.
func NewEntity() Entity {
	return Entity(nextEntity.Add(1))
}
