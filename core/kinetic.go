package core

import "github.com/lixenwraith/steersim/vmath"

// Kinetic is the raw integrable state shared by every moving entity.
type Kinetic struct {
	// Pos is position in world units
	Pos vmath.Vec2
	// Vel is velocity in world units per tick
	Vel vmath.Vec2
	// Accel is the per-tick force accumulator, reset after integration
	Accel vmath.Vec2
}
