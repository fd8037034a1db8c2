package bounce3d

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrUnknownPolicy = errors.New("unknown collision policy")

// CollisionPolicy moves a sphere through one time step, reflecting it off
// the walls of box it reaches within dt. Policies are selected by Name.
type CollisionPolicy interface {
	Name() string
	Resolve(s *Sphere, box Box, dt float64)
}

const (
	PolicySequential   = "sequential"
	PolicySimultaneous = "simultaneous"
)

var policies = map[string]CollisionPolicy{
	PolicySequential:   SequentialWalls{},
	PolicySimultaneous: SimultaneousContact{},
}

// PolicyByName returns the policy registered under name. An empty name
// selects SequentialWalls.
func PolicyByName(name string) (CollisionPolicy, error) {
	if name == "" {
		return SequentialWalls{}, nil
	}
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPolicy, name, PolicyNames())
	}
	return p, nil
}

func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for n := range policies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SequentialWalls checks right, left, bottom, top, front and back in turn.
// Every wall struck recomputes the end-of-step position from the start
// position using the velocity as reflected so far, so when two walls are hit
// in the same step the last one checked decides the position.
type SequentialWalls struct{}

func (SequentialWalls) Name() string { return PolicySequential }

func (SequentialWalls) Resolve(s *Sphere, box Box, dt float64) {
	p := s.Position
	newPos := p.Add(s.Velocity.Mul(dt))

	for _, w := range box.Walls() {
		t := w.TimeToImpact(p, s.Velocity, s.Radius)
		if t <= dt && t >= 0 {
			newPos = p.Add(s.Velocity.Mul(t))
			s.Velocity[w.Axis] = -s.Velocity[w.Axis]
			newPos = newPos.Add(s.Velocity.Mul(dt - t))
		}
	}

	s.Position = newPos
}

// SimultaneousContact treats the three axes independently. On each axis the
// earliest wall reached within dt reflects that velocity component, so a
// corner hit bounces off every wall involved.
type SimultaneousContact struct{}

func (SimultaneousContact) Name() string { return PolicySimultaneous }

func (SimultaneousContact) Resolve(s *Sphere, box Box, dt float64) {
	walls := box.Walls()
	p := s.Position
	v := s.Velocity

	for axis := AxisX; axis <= AxisZ; axis++ {
		hit := math.Inf(1)
		for _, w := range walls {
			if w.Axis != axis {
				continue
			}
			t := w.TimeToImpact(p, v, s.Radius)
			if t <= dt && t >= 0 && t < hit {
				hit = t
			}
		}

		if math.IsInf(hit, 1) {
			s.Position[axis] = p[axis] + v[axis]*dt
			continue
		}
		s.Velocity[axis] = -v[axis]
		s.Position[axis] = p[axis] + v[axis]*hit - v[axis]*(dt-hit)
	}
}
