package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/steersim/vmath"
)

func TestLiquidContains(t *testing.T) {
	l := NewLiquid(vmath.Vec2{X: 10, Y: 10}, 20, 5)

	assert.True(t, l.Contains(vmath.Vec2{X: 10, Y: 10}), "top-left corner is inside")
	assert.True(t, l.Contains(vmath.Vec2{X: 29, Y: 14}))
	assert.False(t, l.Contains(vmath.Vec2{X: 30, Y: 12}), "max edge is exclusive")
	assert.False(t, l.Contains(vmath.Vec2{X: 9, Y: 12}))
}

func TestLiquidDragOpposesVelocity(t *testing.T) {
	l := NewLiquid(vmath.Zero, 10, 10)
	l.C = 0.5

	vel := vmath.Vec2{X: 3, Y: 0}
	f := l.DragForce(vel, 2)

	// mag = C * |v|^2 * profile = 0.5 * 9 * 2 = 9, opposing +X
	assert.InDelta(t, -9, f.X, 1e-9)
	assert.InDelta(t, 0, f.Y, 1e-9)

	assert.True(t, l.DragForce(vmath.Zero, 2).IsZero(), "no drag at rest")
}

func TestPointSourceForce(t *testing.T) {
	a := NewAttractor(vmath.Vec2{X: 10, Y: 0})
	a.G = 10
	a.Mass = 2
	a.DistMin = 1
	a.DistMax = 100

	f := a.ForceOn(vmath.Zero, 3)
	// d = 10, mag = 10*2*3/100 = 0.6 pulling toward +X
	assert.InDelta(t, 0.6, f.X, 1e-9)
	assert.InDelta(t, 0, f.Y, 1e-9)

	r := NewRepeller(vmath.Vec2{X: 10, Y: 0})
	r.G = -10
	r.Mass = 2
	r.DistMin = 1
	r.DistMax = 100
	f = r.ForceOn(vmath.Zero, 3)
	assert.InDelta(t, -0.6, f.X, 1e-9, "repeller pushes away")
}

func TestPointSourceZeroDistanceFinite(t *testing.T) {
	a := NewAttractor(vmath.Vec2{X: 5, Y: 5})
	f := a.ForceOn(vmath.Vec2{X: 5, Y: 5}, 1)
	// Coincident body: direction is undefined, force degrades to zero
	assert.True(t, f.IsZero())
}

func TestPointSourceDistanceClamp(t *testing.T) {
	a := NewAttractor(vmath.Vec2{X: 0.001, Y: 0})
	a.G = 10
	a.Mass = 1
	a.DistMin = 5
	a.DistMax = 25

	near := a.ForceOn(vmath.Zero, 1).Mag()
	// d clamps to 5: mag = 10/25
	assert.InDelta(t, 0.4, near, 1e-9)

	far := a.ForceOn(vmath.Vec2{X: -1000, Y: 0}, 1).Mag()
	// d clamps to 25: mag = 10/625
	assert.InDelta(t, 0.016, far, 1e-9)
}

func TestHeatIntensityFalloff(t *testing.T) {
	h := NewHeat(vmath.Zero)
	h.Radius = 10
	h.Intensity = 2

	assert.InDelta(t, 2, h.IntensityAt(vmath.Zero), 1e-9)
	assert.InDelta(t, 1, h.IntensityAt(vmath.Vec2{X: 5, Y: 0}), 1e-9)
	assert.Zero(t, h.IntensityAt(vmath.Vec2{X: 10, Y: 0}))
	assert.Zero(t, h.IntensityAt(vmath.Vec2{X: 50, Y: 0}))
}
