package parameter

// Steering behavior defaults
const (
	// DefaultMaxSteeringForce clamps the magnitude of every individual
	// steering contribution before it is applied
	DefaultMaxSteeringForce = 10.0

	// DefaultSeparationFactor scales body width into the desired
	// separation distance
	DefaultSeparationFactor = 2.0

	// AlignNeighborFactor scales body width into the alignment
	// neighborhood radius
	AlignNeighborFactor = 2.0

	// CohesionRadius is the fixed neighborhood radius for cohesion
	CohesionRadius = 10.0

	// Flocking strength weights
	DefaultSeparateStrength = 0.3
	DefaultAlignStrength    = 0.2
	DefaultCohesionStrength = 0.1
)

// Environmental force defaults
const (
	// LiquidDragCoefficient is the default drag factor of a liquid region
	LiquidDragCoefficient = 1.0

	// PointSourceStrength is the default G of attractors and repellers
	PointSourceStrength = 10.0

	// PointSourceMass is the default mass of a point source
	PointSourceMass = 10.0

	// Distance clamp for the inverse-square force law, avoids the
	// singularity at zero distance and caps far-field falloff
	PointSourceDistMin = 5.0
	PointSourceDistMax = 25.0

	// HeatRadius is the default influence radius of a heat source,
	// consumed by presentation layers only
	HeatRadius = 8.0
)
