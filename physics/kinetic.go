package physics

import (
	"github.com/lixenwraith/steersim/core"
	"github.com/lixenwraith/steersim/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed.
// Returns true if velocity was clamped.
func CapSpeed(k *core.Kinetic, maxSpeed float64) bool {
	magSq := k.Vel.MagSq()
	if magSq <= maxSpeed*maxSpeed {
		return false
	}
	k.Vel = k.Vel.WithMag(maxSpeed)
	return true
}

// ApplyImpulse adds a velocity delta directly, bypassing the force
// accumulator. Used for initial velocities and momentum transfer.
func ApplyImpulse(k *core.Kinetic, dv vmath.Vec2) {
	k.Vel = k.Vel.Add(dv)
}
