package environment

import (
	"github.com/lixenwraith/steersim/core"
	"github.com/lixenwraith/steersim/parameter"
	"github.com/lixenwraith/steersim/vmath"
)

// Heat is a point source of warmth. It participates in the registry but the
// force engine does not consume it; presentation layers sample IntensityAt
// for coloring. Kept as the extension point for future thermal behaviors.
type Heat struct {
	entity core.Entity

	Pos       vmath.Vec2
	Radius    float64
	Intensity float64
}

// NewHeat creates a heat source with unit intensity and default radius.
func NewHeat(pos vmath.Vec2) *Heat {
	return &Heat{
		entity:    core.NewEntity(),
		Pos:       pos,
		Radius:    parameter.HeatRadius,
		Intensity: 1,
	}
}

// Entity returns the registry identity.
func (h *Heat) Entity() core.Entity { return h.entity }

// Location returns the source position.
func (h *Heat) Location() vmath.Vec2 { return h.Pos }

// IntensityAt returns the linear falloff intensity at p, zero beyond Radius.
func (h *Heat) IntensityAt(p vmath.Vec2) float64 {
	if h.Radius <= 0 {
		return 0
	}
	d := h.Pos.Dist(p)
	if d >= h.Radius {
		return 0
	}
	return h.Intensity * (1 - d/h.Radius)
}
