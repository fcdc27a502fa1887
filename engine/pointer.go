package engine

import (
	"sync"

	"github.com/lixenwraith/steersim/vmath"
)

// PointerSource reports a pointing device's world position. Touch-only
// sources have no hover position, so pointer following is suppressed for
// them.
type PointerSource interface {
	Location() vmath.Vec2
	TouchOnly() bool
}

// TrackedPointer is a mutable, goroutine-safe PointerSource for input layers
// that push pointer updates from another goroutine (terminal mouse events,
// network clients).
type TrackedPointer struct {
	mu        sync.RWMutex
	loc       vmath.Vec2
	touchOnly bool
}

// NewTrackedPointer creates a pointer at the origin.
func NewTrackedPointer(touchOnly bool) *TrackedPointer {
	return &TrackedPointer{touchOnly: touchOnly}
}

// Move updates the pointer's world position.
func (p *TrackedPointer) Move(loc vmath.Vec2) {
	p.mu.Lock()
	p.loc = loc
	p.mu.Unlock()
}

// Location implements PointerSource.
func (p *TrackedPointer) Location() vmath.Vec2 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loc
}

// TouchOnly implements PointerSource.
func (p *TrackedPointer) TouchOnly() bool { return p.touchOnly }
