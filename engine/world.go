// Package engine drives the simulation: a World owning the shared registry
// and a fixed-tick Scheduler. Each tick runs in two phases so behavior code
// always reads the previous frame's kinetic state: phase one assembles every
// agent's forces into acceleration accumulators, phase two integrates every
// body, then queued registry mutations flush at the boundary.
package engine

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/steersim/physics"
	"github.com/lixenwraith/steersim/registry"
	"github.com/lixenwraith/steersim/steering"
	"github.com/lixenwraith/steersim/vmath"
)

// Config carries the world construction options.
type Config struct {
	// Width and Height define the world rectangle in world units
	Width  float64
	Height float64

	// ReflectBounds bounces bodies off the world edges after integration
	ReflectBounds bool
}

// World owns the registry and runs the per-tick pipeline. It satisfies
// steering.Environment so agents observe the world they live in.
type World struct {
	reg     *registry.Registry
	bounds  physics.Bounds
	reflect bool
	pointer PointerSource
	log     *zap.Logger

	// tick is atomic so observers off the scheduler goroutine can read it
	tick atomic.Uint64
}

// NewWorld builds an empty world. A nil logger is replaced with a no-op one.
func NewWorld(cfg Config, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		reg:     registry.New(),
		bounds:  physics.Bounds{Width: cfg.Width, Height: cfg.Height},
		reflect: cfg.ReflectBounds,
		log:     log,
	}
}

// Registry returns the shared entity registry.
func (w *World) Registry() *registry.Registry { return w.reg }

// Bounds returns the world rectangle.
func (w *World) Bounds() physics.Bounds { return w.bounds }

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 { return w.tick.Load() }

// SetPointerSource installs the pointer collaborator. A nil source means no
// pointer is ever available.
func (w *World) SetPointerSource(ps PointerSource) { w.pointer = ps }

// Pointer implements steering.Environment. Touch-only contexts report no
// pointer, which suppresses pointer-following behaviors.
func (w *World) Pointer() (vmath.Vec2, bool) {
	if w.pointer == nil || w.pointer.TouchOnly() {
		return vmath.Zero, false
	}
	return w.pointer.Location(), true
}

// Spawn queues an agent for membership at the next tick boundary.
func (w *World) Spawn(a *steering.Agent) {
	if err := w.reg.QueueAdd(a, registry.CategoryAgent); err != nil {
		w.log.Error("spawn rejected", zap.Error(err))
		return
	}
	w.log.Debug("agent queued",
		zap.Uint64("entity", uint64(a.Entity())),
		zap.String("kind", a.Kind))
}

// Despawn queues removal of a member at the next tick boundary.
func (w *World) Despawn(m registry.Member) {
	w.reg.QueueRemove(m)
}

// Step advances the world one tick.
func (w *World) Step() {
	agents := w.reg.List(registry.CategoryAgent)

	// Phase 1: force assembly. Writes accumulators only, so every agent
	// observes identical pre-step positions and velocities.
	for _, m := range agents {
		if a, ok := m.(*steering.Agent); ok {
			a.ComputeForces(w)
		}
	}

	// Phase 2: integration.
	for _, m := range agents {
		a, ok := m.(*steering.Agent)
		if !ok {
			continue
		}
		a.Integrate()
		if w.reflect {
			physics.ReflectBounds(&a.Kinetic, w.bounds)
		}
	}

	if err := w.reg.Flush(); err != nil {
		w.log.Error("registry flush", zap.Error(err))
	}
	w.tick.Add(1)
}
