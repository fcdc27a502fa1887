// Package environment defines the shared world entities agents sample for
// forces: drag-inducing liquids, attracting/repelling point sources, and
// heat sources. All of them are registered in the entity registry and read
// every frame by the steering engine.
package environment

import (
	"github.com/lixenwraith/steersim/core"
	"github.com/lixenwraith/steersim/parameter"
	"github.com/lixenwraith/steersim/vmath"
)

// Liquid is an axis-aligned region that applies drag to bodies inside it.
type Liquid struct {
	entity core.Entity

	// Pos is the top-left corner of the region
	Pos           vmath.Vec2
	Width, Height float64

	// C is the drag coefficient
	C float64
}

// NewLiquid creates a liquid region with the default drag coefficient.
func NewLiquid(pos vmath.Vec2, width, height float64) *Liquid {
	return &Liquid{
		entity: core.NewEntity(),
		Pos:    pos,
		Width:  width,
		Height: height,
		C:      parameter.LiquidDragCoefficient,
	}
}

// Entity returns the registry identity.
func (l *Liquid) Entity() core.Entity { return l.entity }

// Location returns the top-left corner of the region.
func (l *Liquid) Location() vmath.Vec2 { return l.Pos }

// Contains reports whether p lies inside the liquid's bounds.
func (l *Liquid) Contains(p vmath.Vec2) bool {
	return p.X >= l.Pos.X && p.X < l.Pos.X+l.Width &&
		p.Y >= l.Pos.Y && p.Y < l.Pos.Y+l.Height
}

// DragForce returns the force opposing vel for a body with the given
// cross-sectional profile. Magnitude is C * |v|^2 * profile.
func (l *Liquid) DragForce(vel vmath.Vec2, profile float64) vmath.Vec2 {
	speedSq := vel.MagSq()
	if speedSq == 0 {
		return vmath.Zero
	}
	return vel.Normalize().Scale(-l.C * speedSq * profile)
}
