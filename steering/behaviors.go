package steering

import (
	"github.com/lixenwraith/steersim/parameter"
	"github.com/lixenwraith/steersim/registry"
	"github.com/lixenwraith/steersim/vmath"
)

// steer is the single steering primitive of the engine: desired velocity
// minus current velocity, magnitude-limited to MaxSteeringForce. Seek,
// follow, separate, align and cohesion all reduce to it.
func (a *Agent) steer(desired vmath.Vec2) vmath.Vec2 {
	return desired.Sub(a.Velocity()).Limit(a.MaxSteeringForce)
}

// Seek returns the steering force toward a world point: desired velocity is
// the direction to the target scaled to MaxSpeed.
func (a *Agent) Seek(target vmath.Vec2) vmath.Vec2 {
	desired := target.Sub(a.Location()).WithMag(a.MaxSpeed)
	return a.steer(desired)
}

// Follow returns the steering force along a heading direction. Unlike Seek
// the argument is a direction to travel in, not a point to travel toward.
func (a *Agent) Follow(dir vmath.Vec2) vmath.Vec2 {
	return a.steer(dir.WithMag(a.MaxSpeed))
}

// Separate steers away from same-kind peers closer than DesiredSeparation.
// Each qualifying neighbor contributes a push inversely weighted by
// distance; coincident peers (zero distance) are excluded so the result is
// always finite. Zero vector if no neighbor qualifies.
func (a *Agent) Separate(peers []registry.Member) vmath.Vec2 {
	sum := vmath.Zero
	count := 0

	for _, m := range peers {
		o := a.peer(m)
		if o == nil {
			continue
		}
		d := a.Location().Dist(o.Location())
		if d > 0 && d < a.DesiredSeparation {
			diff := a.Location().Sub(o.Location()).Normalize().Scale(1 / d)
			sum = sum.Add(diff)
			count++
		}
	}

	if count == 0 {
		return vmath.Zero
	}
	sum = sum.Scale(1 / float64(count))
	return a.steer(sum.WithMag(a.MaxSpeed))
}

// Align steers toward the average heading of same-kind peers within the
// alignment neighborhood (2x own width). Zero vector without neighbors.
func (a *Agent) Align(peers []registry.Member) vmath.Vec2 {
	radius := parameter.AlignNeighborFactor * a.Width
	sum := vmath.Zero
	count := 0

	for _, m := range peers {
		o := a.peer(m)
		if o == nil {
			continue
		}
		if a.Location().Dist(o.Location()) < radius {
			sum = sum.Add(o.Velocity())
			count++
		}
	}

	if count == 0 {
		return vmath.Zero
	}
	avg := sum.Scale(1 / float64(count))
	return a.steer(avg.WithMag(a.MaxSpeed))
}

// Cohere steers toward the centroid of same-kind peers within the fixed
// cohesion radius. Zero vector without neighbors.
func (a *Agent) Cohere(peers []registry.Member) vmath.Vec2 {
	sum := vmath.Zero
	count := 0

	for _, m := range peers {
		o := a.peer(m)
		if o == nil {
			continue
		}
		if a.Location().Dist(o.Location()) < parameter.CohesionRadius {
			sum = sum.Add(o.Location())
			count++
		}
	}

	if count == 0 {
		return vmath.Zero
	}
	centroid := sum.Scale(1 / float64(count))
	return a.Seek(centroid)
}

// Flock applies the three weighted flocking contributions as independent
// forces, in separate/align/cohere order.
func (a *Agent) Flock(peers []registry.Member) {
	a.ApplyForce(a.Separate(peers).Scale(a.SeparateStrength))
	a.ApplyForce(a.Align(peers).Scale(a.AlignStrength))
	a.ApplyForce(a.Cohere(peers).Scale(a.CohesionStrength))
}

// peer filters a registry member down to a same-kind agent other than self.
func (a *Agent) peer(m registry.Member) *Agent {
	o, ok := m.(*Agent)
	if !ok || o == a || o.Kind != a.Kind {
		return nil
	}
	return o
}
