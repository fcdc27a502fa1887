package physics

import (
	"github.com/lixenwraith/steersim/core"
	"github.com/lixenwraith/steersim/vmath"
)

// Bounds is a rectangular world extent with reflective edges.
type Bounds struct {
	Width, Height float64
}

// Contains reports whether p lies inside the bounds. Both edges are
// inclusive because reflection clamps positions onto them.
func (b Bounds) Contains(p vmath.Vec2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// ReflectBoundsX handles horizontal boundary collision, returns true if
// reflection occurred. Position is clamped back onto [0, width].
func ReflectBoundsX(k *core.Kinetic, width float64) bool {
	if k.Pos.X < 0 {
		k.Pos.X = 0
		k.Vel.X = -k.Vel.X
		return true
	}
	if k.Pos.X >= width {
		k.Pos.X = width
		k.Vel.X = -k.Vel.X
		return true
	}
	return false
}

// ReflectBoundsY handles vertical boundary collision, returns true if
// reflection occurred.
func ReflectBoundsY(k *core.Kinetic, height float64) bool {
	if k.Pos.Y < 0 {
		k.Pos.Y = 0
		k.Vel.Y = -k.Vel.Y
		return true
	}
	if k.Pos.Y >= height {
		k.Pos.Y = height
		k.Vel.Y = -k.Vel.Y
		return true
	}
	return false
}

// ReflectBounds handles both axes, returns true if any reflection occurred.
func ReflectBounds(k *core.Kinetic, b Bounds) bool {
	rx := ReflectBoundsX(k, b.Width)
	ry := ReflectBoundsY(k, b.Height)
	return rx || ry
}
