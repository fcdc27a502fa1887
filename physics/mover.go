// Package physics provides the minimal physical substrate of the
// simulation: force accumulation and velocity/position integration.
// Behavior-specific logic lives in the steering package.
package physics

import (
	"github.com/lixenwraith/steersim/core"
	"github.com/lixenwraith/steersim/parameter"
	"github.com/lixenwraith/steersim/vmath"
)

// Mover is the base simulated body. It owns kinetic state plus the physical
// properties integration depends on. Steering agents contain a Mover rather
// than extending it.
type Mover struct {
	entity core.Entity

	Kinetic core.Kinetic

	// Mass scales force into acceleration. Values below parameter.MinMass
	// are floored at apply time so a misconfigured mass cannot blow up
	// the integrator.
	Mass float64

	// MaxSpeed caps velocity magnitude after every integration step.
	MaxSpeed float64

	// Width and Height describe the body's extent in world units.
	// Width doubles as the cross-sectional profile for fluid drag.
	Width, Height float64

	// Static bodies ignore velocity and position updates but still
	// reset their force accumulator each tick.
	Static bool

	// Angle is the heading in degrees, derived from velocity while moving.
	Angle float64
}

// NewMover creates a body at pos with the given mass and registry identity.
func NewMover(pos vmath.Vec2, mass float64) *Mover {
	return &Mover{
		entity:   core.NewEntity(),
		Kinetic:  core.Kinetic{Pos: pos},
		Mass:     mass,
		MaxSpeed: parameter.DefaultMaxSpeed,
		Width:    parameter.DefaultBodySize,
		Height:   parameter.DefaultBodySize,
	}
}

// Entity returns the registry identity of the body.
func (m *Mover) Entity() core.Entity {
	return m.entity
}

// Location returns the current position.
func (m *Mover) Location() vmath.Vec2 {
	return m.Kinetic.Pos
}

// Velocity returns the current velocity.
func (m *Mover) Velocity() vmath.Vec2 {
	return m.Kinetic.Vel
}

// ApplyForce accumulates f scaled by inverse mass into the acceleration
// accumulator. Mass is floored at parameter.MinMass.
func (m *Mover) ApplyForce(f vmath.Vec2) {
	mass := m.Mass
	if mass < parameter.MinMass {
		mass = parameter.MinMass
	}
	m.Kinetic.Accel = m.Kinetic.Accel.Add(f.Scale(1 / mass))
}

// Integrate consumes the accumulated acceleration: velocity is updated and
// capped to MaxSpeed, position advances by velocity, and the accumulator is
// reset. Static bodies only reset the accumulator.
func (m *Mover) Integrate() {
	if !m.Static {
		m.Kinetic.Vel = m.Kinetic.Vel.Add(m.Kinetic.Accel)
		CapSpeed(&m.Kinetic, m.MaxSpeed)
		m.Kinetic.Pos = m.Kinetic.Pos.Add(m.Kinetic.Vel)

		if !m.Kinetic.Vel.IsZero() {
			m.Angle = vmath.Deg(m.Kinetic.Vel.Heading())
		}
	}
	m.Kinetic.Accel = vmath.Zero
}

// Heading returns the unit vector of the current angle. When the body has
// never moved this is the default +X heading.
func (m *Mover) Heading() vmath.Vec2 {
	return vmath.FromAngle(vmath.Rad(m.Angle))
}
