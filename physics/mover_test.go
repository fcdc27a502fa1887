package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steersim/core"
	"github.com/lixenwraith/steersim/vmath"
)

func TestIntegrateCapsSpeed(t *testing.T) {
	tests := []struct {
		name  string
		force vmath.Vec2
	}{
		{"mild force", vmath.Vec2{X: 1, Y: 0}},
		{"huge force", vmath.Vec2{X: 1e6, Y: -1e6}},
		{"diagonal force", vmath.Vec2{X: 30, Y: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMover(vmath.Zero, 1)
			m.MaxSpeed = 5
			m.ApplyForce(tt.force)
			m.Integrate()
			assert.LessOrEqual(t, m.Velocity().Mag(), 5.0+1e-9)
		})
	}
}

func TestIntegrateResetsAccumulator(t *testing.T) {
	m := NewMover(vmath.Zero, 1)
	m.MaxSpeed = 100
	m.ApplyForce(vmath.Vec2{X: 2, Y: 0})
	m.Integrate()

	require.True(t, m.Kinetic.Accel.IsZero(), "accumulator must be zero after integration")
	posAfterOne := m.Location()

	// Second integrate without new force moves by velocity only
	m.Integrate()
	assert.Equal(t, posAfterOne.Add(m.Velocity()), m.Location())
}

func TestStaticBodySkipsMotion(t *testing.T) {
	m := NewMover(vmath.Vec2{X: 3, Y: 4}, 1)
	m.Static = true
	m.ApplyForce(vmath.Vec2{X: 10, Y: 10})
	m.Integrate()

	assert.Equal(t, vmath.Vec2{X: 3, Y: 4}, m.Location())
	assert.True(t, m.Velocity().IsZero())
	assert.True(t, m.Kinetic.Accel.IsZero(), "static bodies still reset the accumulator")
}

func TestApplyForceMassFloor(t *testing.T) {
	m := NewMover(vmath.Zero, 0)
	m.ApplyForce(vmath.Vec2{X: 1, Y: 0})
	assert.False(t, math.IsInf(m.Kinetic.Accel.X, 0), "zero mass must not divide by zero")
	assert.False(t, math.IsNaN(m.Kinetic.Accel.X))
}

func TestAngleDerivedFromVelocity(t *testing.T) {
	m := NewMover(vmath.Zero, 1)
	m.MaxSpeed = 10
	m.ApplyForce(vmath.Vec2{X: 0, Y: 3})
	m.Integrate()
	assert.InDelta(t, 90, m.Angle, 1e-9)

	// Angle persists when the body stops
	m.Kinetic.Vel = vmath.Zero
	m.Integrate()
	assert.InDelta(t, 90, m.Angle, 1e-9)
}

func TestReflectBounds(t *testing.T) {
	b := Bounds{Width: 10, Height: 10}

	k := core.Kinetic{Pos: vmath.Vec2{X: -1, Y: 5}, Vel: vmath.Vec2{X: -2, Y: 0}}
	require.True(t, ReflectBounds(&k, b))
	assert.Equal(t, 0.0, k.Pos.X)
	assert.Equal(t, 2.0, k.Vel.X)

	k = core.Kinetic{Pos: vmath.Vec2{X: 5, Y: 11}, Vel: vmath.Vec2{X: 0, Y: 3}}
	require.True(t, ReflectBounds(&k, b))
	assert.Equal(t, 10.0, k.Pos.Y)
	assert.Equal(t, -3.0, k.Vel.Y)

	k = core.Kinetic{Pos: vmath.Vec2{X: 5, Y: 5}}
	assert.False(t, ReflectBounds(&k, b))
}

func TestCapSpeedReportsClamp(t *testing.T) {
	k := core.Kinetic{Vel: vmath.Vec2{X: 3, Y: 4}}
	assert.False(t, CapSpeed(&k, 6))
	assert.True(t, CapSpeed(&k, 2))
	assert.InDelta(t, 2, k.Vel.Mag(), 1e-9)
}

func TestApplyImpulseBypassesAccumulator(t *testing.T) {
	k := core.Kinetic{Vel: vmath.Vec2{X: 1, Y: 0}}
	ApplyImpulse(&k, vmath.Vec2{X: 2, Y: -1})
	assert.Equal(t, vmath.Vec2{X: 3, Y: -1}, k.Vel)
	assert.True(t, k.Accel.IsZero())
}
