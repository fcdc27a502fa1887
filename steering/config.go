package steering

import (
	"fmt"

	"github.com/lixenwraith/steersim/parameter"
)

// Config enumerates every recognized agent option and its default.
// A zero field means "use the default" for the values with nonzero defaults.
type Config struct {
	// Kind partitions agents for flocking: only same-kind peers interact
	Kind string

	// Physical properties
	Mass     float64
	MaxSpeed float64
	Width    float64
	Height   float64

	// MaxSteeringForce clamps the magnitude of every individual steering
	// contribution before it is applied
	MaxSteeringForce float64

	// MotorSpeed is the target cruising speed maintained when no sensor
	// fires; zero disables the motor
	MotorSpeed float64

	// FollowPointer seeks the environment's pointer location each frame
	FollowPointer bool

	// Flocking enables separate/align/cohesion against same-kind peers
	Flocking bool

	// DesiredSeparation is the separation neighborhood radius;
	// zero resolves to 2x Width
	DesiredSeparation float64

	// Flocking strength weights
	SeparateStrength float64
	AlignStrength    float64
	CohesionStrength float64
}

// DefaultConfig returns the canonical agent configuration.
func DefaultConfig() Config {
	return Config{
		Kind:             "agent",
		Mass:             1,
		MaxSpeed:         parameter.DefaultMaxSpeed,
		Width:            parameter.DefaultBodySize,
		Height:           parameter.DefaultBodySize,
		MaxSteeringForce: parameter.DefaultMaxSteeringForce,
		SeparateStrength: parameter.DefaultSeparateStrength,
		AlignStrength:    parameter.DefaultAlignStrength,
		CohesionStrength: parameter.DefaultCohesionStrength,
	}
}

// WithDefaults resolves zero-valued fields that have nonzero defaults.
func (c Config) WithDefaults() Config {
	if c.Kind == "" {
		c.Kind = "agent"
	}
	if c.Mass == 0 {
		c.Mass = 1
	}
	if c.MaxSpeed == 0 {
		c.MaxSpeed = parameter.DefaultMaxSpeed
	}
	if c.Width == 0 {
		c.Width = parameter.DefaultBodySize
	}
	if c.Height == 0 {
		c.Height = parameter.DefaultBodySize
	}
	if c.MaxSteeringForce == 0 {
		c.MaxSteeringForce = parameter.DefaultMaxSteeringForce
	}
	if c.DesiredSeparation == 0 {
		c.DesiredSeparation = parameter.DefaultSeparationFactor * c.Width
	}
	return c
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Mass < 0 {
		return fmt.Errorf("steering: mass %v must not be negative", c.Mass)
	}
	if c.MaxSpeed < 0 {
		return fmt.Errorf("steering: max speed %v must not be negative", c.MaxSpeed)
	}
	if c.MaxSteeringForce < 0 {
		return fmt.Errorf("steering: max steering force %v must not be negative", c.MaxSteeringForce)
	}
	if c.MotorSpeed < 0 {
		return fmt.Errorf("steering: motor speed %v must not be negative", c.MotorSpeed)
	}
	if c.DesiredSeparation < 0 {
		return fmt.Errorf("steering: desired separation %v must not be negative", c.DesiredSeparation)
	}
	return nil
}
