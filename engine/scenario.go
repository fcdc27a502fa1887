package engine

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/steersim/environment"
	"github.com/lixenwraith/steersim/navigation"
	"github.com/lixenwraith/steersim/parameter"
	"github.com/lixenwraith/steersim/physics"
	"github.com/lixenwraith/steersim/registry"
	"github.com/lixenwraith/steersim/steering"
	"github.com/lixenwraith/steersim/vmath"
)

// Scenario is a declarative world description loaded from YAML. Unknown
// fields are rejected so typos fail at load time instead of silently
// producing a default.
type Scenario struct {
	World      WorldSpec    `yaml:"world"`
	TickMillis int          `yaml:"tick_ms"`
	Agents     []AgentGroup `yaml:"agents"`
	Liquids    []LiquidSpec `yaml:"liquids"`
	Attractors []Coord      `yaml:"attractors"`
	Repellers  []Coord      `yaml:"repellers"`
	Heat       []HeatSpec   `yaml:"heat"`
	Flow       *FlowSpec    `yaml:"flow"`
}

// WorldSpec mirrors Config.
type WorldSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ReflectBounds bool    `yaml:"reflect_bounds"`
}

// Coord is a world-space point.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts to the math type.
func (c Coord) Vec() vmath.Vec2 { return vmath.Vec2{X: c.X, Y: c.Y} }

// AgentGroup spawns Count identically configured agents in a grid around At.
type AgentGroup struct {
	Count   int     `yaml:"count"`
	Kind    string  `yaml:"kind"`
	At      Coord   `yaml:"at"`
	Spacing float64 `yaml:"spacing"`

	// Velocity is an initial impulse applied to every member
	Velocity Coord `yaml:"velocity"`

	Mass      float64 `yaml:"mass"`
	MaxSpeed  float64 `yaml:"max_speed"`
	MaxForce  float64 `yaml:"max_force"`
	BodySize  float64 `yaml:"body_size"`
	MotorSpeed float64 `yaml:"motor_speed"`

	FollowPointer bool `yaml:"follow_pointer"`
	Flocking      bool `yaml:"flocking"`
	FollowFlow    bool `yaml:"follow_flow"`

	DesiredSeparation float64 `yaml:"desired_separation"`
	SeparateStrength  float64 `yaml:"separate_strength"`
	AlignStrength     float64 `yaml:"align_strength"`
	CohesionStrength  float64 `yaml:"cohesion_strength"`
}

// LiquidSpec places a drag region; At is the top-left corner.
type LiquidSpec struct {
	At     Coord   `yaml:"at"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Drag   float64 `yaml:"drag"`
}

// HeatSpec places a heat source.
type HeatSpec struct {
	At        Coord   `yaml:"at"`
	Radius    float64 `yaml:"radius"`
	Intensity float64 `yaml:"intensity"`
}

// FlowSpec describes a flow field computed toward a target cell with
// optional wall cells.
type FlowSpec struct {
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	Resolution float64 `yaml:"resolution"`
	Target     Cell    `yaml:"target"`
	Walls      []Cell  `yaml:"walls"`
}

// Cell addresses a flow-field grid cell.
type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// LoadScenario parses and validates YAML scenario data.
func LoadScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("engine: parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScenarioFile reads and parses a scenario file.
func LoadScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("engine: read scenario %s: %w", path, err)
	}
	return LoadScenario(data)
}

// Validate rejects scenarios the engine cannot build.
func (s *Scenario) Validate() error {
	if s.World.Width <= 0 || s.World.Height <= 0 {
		return fmt.Errorf("engine: world size %vx%v must be positive", s.World.Width, s.World.Height)
	}
	if s.TickMillis < 0 {
		return fmt.Errorf("engine: tick_ms %d must not be negative", s.TickMillis)
	}
	for i, g := range s.Agents {
		if g.Count < 0 {
			return fmt.Errorf("engine: agents[%d]: count %d must not be negative", i, g.Count)
		}
		if err := g.config().Validate(); err != nil {
			return fmt.Errorf("engine: agents[%d]: %w", i, err)
		}
	}
	for i, l := range s.Liquids {
		if l.Width <= 0 || l.Height <= 0 {
			return fmt.Errorf("engine: liquids[%d]: size %vx%v must be positive", i, l.Width, l.Height)
		}
		if l.Drag < 0 {
			return fmt.Errorf("engine: liquids[%d]: drag %v must not be negative", i, l.Drag)
		}
	}
	for i, h := range s.Heat {
		if h.Radius <= 0 {
			return fmt.Errorf("engine: heat[%d]: radius %v must be positive", i, h.Radius)
		}
	}
	if f := s.Flow; f != nil {
		if f.Cols <= 0 || f.Rows <= 0 {
			return fmt.Errorf("engine: flow grid %dx%d must be positive", f.Cols, f.Rows)
		}
		if f.Resolution <= 0 {
			return fmt.Errorf("engine: flow resolution %v must be positive", f.Resolution)
		}
		if f.Target.Col < 0 || f.Target.Col >= f.Cols || f.Target.Row < 0 || f.Target.Row >= f.Rows {
			return fmt.Errorf("engine: flow target (%d,%d) outside %dx%d grid",
				f.Target.Col, f.Target.Row, f.Cols, f.Rows)
		}
	}
	return nil
}

// TickInterval returns the configured tick duration, or the default for a
// zero tick_ms.
func (s *Scenario) TickInterval() time.Duration {
	if s.TickMillis == 0 {
		return parameter.DefaultTickInterval
	}
	return time.Duration(s.TickMillis) * time.Millisecond
}

// Build constructs a populated world. Environmental entities register
// immediately; agents are spawned through the queue and become visible after
// the first flush, so Build flushes once before returning.
func (s *Scenario) Build(log *zap.Logger) (*World, error) {
	w := NewWorld(Config{
		Width:         s.World.Width,
		Height:        s.World.Height,
		ReflectBounds: s.World.ReflectBounds,
	}, log)
	reg := w.Registry()

	for _, l := range s.Liquids {
		liquid := environment.NewLiquid(l.At.Vec(), l.Width, l.Height)
		if l.Drag > 0 {
			liquid.C = l.Drag
		}
		if err := reg.Add(liquid, registry.CategoryLiquid); err != nil {
			return nil, err
		}
	}
	for _, c := range s.Attractors {
		if err := reg.Add(environment.NewAttractor(c.Vec()), registry.CategoryAttractor); err != nil {
			return nil, err
		}
	}
	for _, c := range s.Repellers {
		if err := reg.Add(environment.NewRepeller(c.Vec()), registry.CategoryRepeller); err != nil {
			return nil, err
		}
	}
	for _, h := range s.Heat {
		heat := environment.NewHeat(h.At.Vec())
		heat.Radius = h.Radius
		if h.Intensity > 0 {
			heat.Intensity = h.Intensity
		}
		if err := reg.Add(heat, registry.CategoryHeat); err != nil {
			return nil, err
		}
	}

	var flow *navigation.FlowField
	if f := s.Flow; f != nil {
		flow = navigation.NewFlowField(f.Cols, f.Rows, f.Resolution)
		walls := make(map[Cell]bool, len(f.Walls))
		for _, c := range f.Walls {
			walls[c] = true
		}
		flow.Compute(f.Target.Col, f.Target.Row, func(col, row int) bool {
			return walls[Cell{Col: col, Row: row}]
		})
	}

	for _, g := range s.Agents {
		cfg := g.config()
		for i := 0; i < g.Count; i++ {
			a := steering.NewAgent(g.position(i), cfg)
			if v := g.Velocity.Vec(); !v.IsZero() {
				physics.ApplyImpulse(&a.Kinetic, v)
			}
			if g.FollowFlow {
				a.Flow = flow
			}
			w.Spawn(a)
		}
	}
	if err := reg.Flush(); err != nil {
		return nil, err
	}

	if log != nil {
		log.Info("scenario built",
			zap.Int("agents", reg.Len(registry.CategoryAgent)),
			zap.Int("liquids", reg.Len(registry.CategoryLiquid)),
			zap.Bool("flow", flow != nil))
	}
	return w, nil
}

// config translates an agent group into a steering configuration.
func (g AgentGroup) config() steering.Config {
	return steering.Config{
		Kind:              g.Kind,
		Mass:              g.Mass,
		MaxSpeed:          g.MaxSpeed,
		Width:             g.BodySize,
		Height:            g.BodySize,
		MaxSteeringForce:  g.MaxForce,
		MotorSpeed:        g.MotorSpeed,
		FollowPointer:     g.FollowPointer,
		Flocking:          g.Flocking,
		DesiredSeparation: g.DesiredSeparation,
		SeparateStrength:  g.SeparateStrength,
		AlignStrength:     g.AlignStrength,
		CohesionStrength:  g.CohesionStrength,
	}.WithDefaults()
}

// position lays group members out in a deterministic square grid centered on
// the group's anchor point.
func (g AgentGroup) position(i int) vmath.Vec2 {
	spacing := g.Spacing
	if spacing <= 0 {
		spacing = 2 * parameter.DefaultBodySize
	}
	cols := int(math.Ceil(math.Sqrt(float64(g.Count))))
	if cols < 1 {
		cols = 1
	}
	half := float64(cols-1) / 2
	return g.At.Vec().Add(vmath.Vec2{
		X: (float64(i%cols) - half) * spacing,
		Y: (float64(i/cols) - half) * spacing,
	})
}
