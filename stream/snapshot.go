// Package stream publishes read-only world snapshots to websocket clients.
// It is a presentation collaborator: it samples positions after integration
// and never feeds anything back into the simulation.
package stream

import (
	"github.com/lixenwraith/steersim/engine"
	"github.com/lixenwraith/steersim/registry"
	"github.com/lixenwraith/steersim/steering"
)

// AgentState is one agent's wire representation.
type AgentState struct {
	ID    uint64  `json:"id"`
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Angle float64 `json:"angle"`
}

// Snapshot is the per-tick wire frame.
type Snapshot struct {
	Tick   uint64       `json:"tick"`
	Agents []AgentState `json:"agents"`
}

// Capture samples the world's agents into a snapshot. Call it between ticks
// (from the scheduler's post-step hook), never during phase execution.
func Capture(w *engine.World) Snapshot {
	members := w.Registry().List(registry.CategoryAgent)
	snap := Snapshot{
		Tick:   w.Tick(),
		Agents: make([]AgentState, 0, len(members)),
	}
	for _, m := range members {
		a, ok := m.(*steering.Agent)
		if !ok {
			continue
		}
		pos, vel := a.Location(), a.Velocity()
		snap.Agents = append(snap.Agents, AgentState{
			ID:    uint64(a.Entity()),
			Kind:  a.Kind,
			X:     pos.X,
			Y:     pos.Y,
			VX:    vel.X,
			VY:    vel.Y,
			Angle: a.Angle,
		})
	}
	return snap
}
