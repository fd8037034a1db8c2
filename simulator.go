package bounce3d

import "math"

const (
	// DefaultTimeStep is the simulated time advanced per frame.
	DefaultTimeStep = 0.01
	// DefaultDrag is the fraction of velocity left after one unit of time.
	DefaultDrag = 0.4
)

// Simulator advances spheres inside Box. Nothing here checks for NaN or Inf:
// a zero velocity component makes the impact time non-finite and such
// values flow through unchanged.
type Simulator struct {
	Box    Box
	Policy CollisionPolicy
	Drag   float64
}

func NewSimulator(box Box, policy CollisionPolicy) *Simulator {
	if policy == nil {
		policy = SequentialWalls{}
	}
	return &Simulator{
		Box:    box,
		Policy: policy,
		Drag:   DefaultDrag,
	}
}

// ResolveCollisions moves s by dt, bouncing it off any wall it reaches.
// This is the only place position is integrated during a frame.
func (sim *Simulator) ResolveCollisions(s *Sphere, dt float64) {
	sim.Policy.Resolve(s, sim.Box, dt)
}

// UpdateVelocity applies drag and then gravity: v = v*drag^dt + a*dt.
func (sim *Simulator) UpdateVelocity(s *Sphere, dt float64) {
	decay := math.Pow(sim.Drag, dt)
	s.Velocity[0] = s.Velocity[0]*decay + s.Acceleration[0]*dt
	s.Velocity[1] = s.Velocity[1]*decay + s.Acceleration[1]*dt
	s.Velocity[2] = s.Velocity[2]*decay + s.Acceleration[2]*dt
}

// UpdatePosition moves s in a straight line with no wall checks. Step does
// not use it.
func (sim *Simulator) UpdatePosition(s *Sphere, dt float64) {
	s.Position[0] = s.Position[0] + s.Velocity[0]*dt
	s.Position[1] = s.Position[1] + s.Velocity[1]*dt
	s.Position[2] = s.Position[2] + s.Velocity[2]*dt
}

// Step advances every sphere by one frame: collisions, then velocity.
func (sim *Simulator) Step(spheres []*Sphere, dt float64) {
	for _, s := range spheres {
		sim.ResolveCollisions(s, dt)
		sim.UpdateVelocity(s, dt)
	}
}
