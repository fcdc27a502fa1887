// Package steering layers behaviors on top of the physical substrate:
// seeking, flow-field following, flocking, sensor avoidance, motor-speed
// maintenance, and environmental force sampling. Force assembly runs once
// per agent per frame and only writes the acceleration accumulator, so the
// tick driver can run all agents' assembly before any agent integrates.
package steering

import (
	"github.com/lixenwraith/steersim/environment"
	"github.com/lixenwraith/steersim/navigation"
	"github.com/lixenwraith/steersim/physics"
	"github.com/lixenwraith/steersim/registry"
	"github.com/lixenwraith/steersim/vmath"
)

// Environment is what an agent can observe outside itself.
type Environment interface {
	// Registry returns the shared entity registry
	Registry() *registry.Registry

	// Pointer returns the current pointer location. The second return is
	// false when no pointer is available or the context is touch-only,
	// which suppresses pointer following.
	Pointer() (vmath.Vec2, bool)
}

// Target is anything with a world position an agent can seek.
type Target interface {
	Location() vmath.Vec2
}

// Agent is a Mover with steering behaviors.
type Agent struct {
	*physics.Mover

	Kind string

	MaxSteeringForce float64
	MotorSpeed       float64
	FollowPointer    bool

	Flocking          bool
	DesiredSeparation float64
	SeparateStrength  float64
	AlignStrength     float64
	CohesionStrength  float64

	// SeekTarget, when set, is sought every frame
	SeekTarget Target

	// Flow, when attached, is sampled by the agent's occupying cell
	Flow *navigation.FlowField

	// Sensors are evaluated in declared order
	Sensors []*Sensor
}

// NewAgent creates an agent at pos from cfg with defaults resolved.
func NewAgent(pos vmath.Vec2, cfg Config) *Agent {
	cfg = cfg.WithDefaults()

	m := physics.NewMover(pos, cfg.Mass)
	m.MaxSpeed = cfg.MaxSpeed
	m.Width = cfg.Width
	m.Height = cfg.Height

	return &Agent{
		Mover:             m,
		Kind:              cfg.Kind,
		MaxSteeringForce:  cfg.MaxSteeringForce,
		MotorSpeed:        cfg.MotorSpeed,
		FollowPointer:     cfg.FollowPointer,
		Flocking:          cfg.Flocking,
		DesiredSeparation: cfg.DesiredSeparation,
		SeparateStrength:  cfg.SeparateStrength,
		AlignStrength:     cfg.AlignStrength,
		CohesionStrength:  cfg.CohesionStrength,
	}
}

// ComputeForces assembles every force acting on the agent this frame and
// accumulates them through ApplyForce. Returns the total acceleration
// contribution of this call. Behaviors whose activating condition is absent
// contribute nothing; contributions are strictly additive.
func (a *Agent) ComputeForces(env Environment) vmath.Vec2 {
	before := a.Kinetic.Accel
	reg := env.Registry()

	a.applyFluidDrag(reg)
	a.applyPointSources(reg)

	fired := a.applySensors()

	if !fired && a.MotorSpeed > 0 {
		a.ApplyForce(a.motorForce())
	}

	if a.FollowPointer {
		if p, ok := env.Pointer(); ok {
			a.ApplyForce(a.Seek(p))
		}
	}

	if a.SeekTarget != nil {
		a.ApplyForce(a.Seek(a.SeekTarget.Location()))
	}

	if a.Flow != nil {
		a.applyFlowField()
	}

	if a.Flocking {
		a.Flock(reg.List(registry.CategoryAgent))
	}

	return a.Kinetic.Accel.Sub(before)
}

// applyFluidDrag sums drag from every liquid containing the agent.
// Overlapping liquids each contribute independently.
func (a *Agent) applyFluidDrag(reg *registry.Registry) {
	for _, m := range reg.List(registry.CategoryLiquid) {
		l, ok := m.(*environment.Liquid)
		if !ok || l.Entity() == a.Entity() {
			continue
		}
		if l.Contains(a.Location()) {
			a.ApplyForce(l.DragForce(a.Velocity(), a.Width))
		}
	}
}

// applyPointSources sums attraction and repulsion from every point source.
func (a *Agent) applyPointSources(reg *registry.Registry) {
	for _, cat := range [...]registry.Category{registry.CategoryAttractor, registry.CategoryRepeller} {
		for _, m := range reg.List(cat) {
			s, ok := m.(*environment.PointSource)
			if !ok || s.Entity() == a.Entity() {
				continue
			}
			a.ApplyForce(s.ForceOn(a.Location(), a.Mass))
		}
	}
}

// applySensors refreshes sensor world positions and applies activation
// forces in declared order. Returns true if any sensor fired.
func (a *Agent) applySensors() bool {
	fired := false
	for _, s := range a.Sensors {
		s.Update(a)
		if s.Activated {
			a.ApplyForce(s.ActivationForce(a))
			fired = true
		}
	}
	return fired
}

// motorForce maintains the target cruising speed with a direction-preserving
// proportional force. When velocity is exactly zero the direction falls back
// to the agent's current heading angle.
func (a *Agent) motorForce() vmath.Vec2 {
	dir := a.Velocity().Normalize()
	if dir.IsZero() {
		dir = a.Heading()
	}
	delta := a.MotorSpeed - a.Velocity().Mag()
	return dir.Scale(delta).Limit(a.MaxSteeringForce)
}

// applyFlowField samples the field by the agent's occupying grid cell.
// Cells without a sample contribute no steering this frame.
func (a *Agent) applyFlowField() {
	col, row := a.Flow.CellOf(a.Location())
	dir, ok := a.Flow.Sample(col, row)
	if !ok {
		return
	}
	a.ApplyForce(a.Follow(dir))
}
