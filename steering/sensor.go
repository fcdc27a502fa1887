package steering

import (
	"github.com/lixenwraith/steersim/vmath"
)

// Detector is the collaborator deciding whether a probe point senses
// something, e.g. proximity to an obstacle.
type Detector interface {
	Detect(p vmath.Vec2) bool
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(p vmath.Vec2) bool

// Detect implements Detector.
func (f DetectorFunc) Detect(p vmath.Vec2) bool { return f(p) }

// ForceFunc computes a sensor's steering force while activated.
type ForceFunc func(owner *Agent, s *Sensor) vmath.Vec2

// Sensor is a probe rigidly offset from its owning agent. Its world
// position is recomputed every frame from the owner's location and heading
// plus the fixed polar offset.
type Sensor struct {
	// OffsetDistance and OffsetAngle define the polar offset relative to
	// the owner's heading; OffsetAngle is radians
	OffsetDistance float64
	OffsetAngle    float64

	// Loc is the probe's world position, refreshed by Update
	Loc vmath.Vec2

	// Activated is derived from the Detector each Update
	Activated bool

	// Detector decides activation; a nil detector never activates
	Detector Detector

	// Force overrides the activation force; nil uses the default
	// steer-away-from-probe behavior
	Force ForceFunc
}

// NewSensor creates a probe at the given polar offset.
func NewSensor(offsetDistance, offsetAngle float64, d Detector) *Sensor {
	return &Sensor{
		OffsetDistance: offsetDistance,
		OffsetAngle:    offsetAngle,
		Detector:       d,
	}
}

// Update recomputes the probe's world position from the owner's state and
// refreshes activation.
func (s *Sensor) Update(owner *Agent) {
	heading := vmath.Rad(owner.Angle)
	s.Loc = owner.Location().Add(
		vmath.FromAngle(heading + s.OffsetAngle).Scale(s.OffsetDistance))
	s.Activated = s.Detector != nil && s.Detector.Detect(s.Loc)
}

// ActivationForce yields the steering force for the current activation.
// The default steers the owner away from the probe point.
func (s *Sensor) ActivationForce(owner *Agent) vmath.Vec2 {
	if s.Force != nil {
		return s.Force(owner, s)
	}
	away := owner.Location().Sub(s.Loc).WithMag(owner.MaxSpeed)
	return owner.steer(away)
}
