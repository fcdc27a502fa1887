package environment

import (
	"github.com/lixenwraith/steersim/core"
	"github.com/lixenwraith/steersim/parameter"
	"github.com/lixenwraith/steersim/vmath"
)

// PointSource is a point entity exerting an inverse-square force on bodies.
// Attractors and repellers share the law and differ only in the sign of G.
type PointSource struct {
	entity core.Entity

	Pos vmath.Vec2

	// G is the force constant; positive pulls, negative pushes
	G float64

	// Mass enters the force law symmetrically with the body's mass
	Mass float64

	// DistMin and DistMax clamp the effective distance to keep the
	// inverse-square law finite at zero range and bounded far away
	DistMin, DistMax float64
}

func newPointSource(pos vmath.Vec2, g float64) *PointSource {
	return &PointSource{
		entity:  core.NewEntity(),
		Pos:     pos,
		G:       g,
		Mass:    parameter.PointSourceMass,
		DistMin: parameter.PointSourceDistMin,
		DistMax: parameter.PointSourceDistMax,
	}
}

// NewAttractor creates a pulling point source with default strength.
func NewAttractor(pos vmath.Vec2) *PointSource {
	return newPointSource(pos, parameter.PointSourceStrength)
}

// NewRepeller creates a pushing point source with default strength.
func NewRepeller(pos vmath.Vec2) *PointSource {
	return newPointSource(pos, -parameter.PointSourceStrength)
}

// Entity returns the registry identity.
func (s *PointSource) Entity() core.Entity { return s.entity }

// Location returns the source position.
func (s *PointSource) Location() vmath.Vec2 { return s.Pos }

// ForceOn returns the force the source exerts on a body of the given mass
// at p. The force acts along the connecting line; magnitude follows
// G * Mass * mass / d^2 with d clamped to [DistMin, DistMax].
func (s *PointSource) ForceOn(p vmath.Vec2, mass float64) vmath.Vec2 {
	dir := s.Pos.Sub(p)
	d := vmath.Clamp(dir.Mag(), s.DistMin, s.DistMax)
	if d == 0 {
		return vmath.Zero
	}
	mag := s.G * s.Mass * mass / (d * d)
	return dir.WithMag(mag)
}
