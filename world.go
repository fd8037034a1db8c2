package bounce3d

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/smasonuk/bounce3d/config"
)

// Event is a discrete user input handled between frames.
type Event int

const (
	EventSpawn Event = iota
	EventClear
)

func (e Event) String() string {
	switch e {
	case EventSpawn:
		return "spawn"
	case EventClear:
		return "clear"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Instance is what the renderer needs to draw one sphere.
type Instance struct {
	Position Vector3
	Scale    Vector3
	Material Material
}

// Frame is everything handed to the renderer once per tick.
type Frame struct {
	Projection mgl64.Mat4
	View       mgl64.Mat4
	Light      PointLight
	Mesh       *Mesh
	Instances  []Instance
}

// Renderer draws frames. It runs after the world has stepped.
type Renderer interface {
	DrawFrame(f Frame) error
}

// World owns the live spheres and everything needed to move and draw them.
type World struct {
	spheres  []*Sphere
	Sim      *Simulator
	Spawner  *Spawner
	Camera   *Camera
	Light    PointLight
	Mesh     *Mesh
	TimeStep float64
	ticks    uint64
}

func NewWorld(mesh *Mesh, sim *Simulator, spawner *Spawner) *World {
	return &World{
		Sim:      sim,
		Spawner:  spawner,
		Camera:   DefaultCamera(),
		Light:    DefaultLight(),
		Mesh:     mesh,
		TimeStep: DefaultTimeStep,
	}
}

// NewWorldFromConfig builds the mesh, simulator, spawner, camera and light
// described by cfg.
func NewWorldFromConfig(cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := PolicyByName(cfg.Simulation.CollisionPolicy)
	if err != nil {
		return nil, fmt.Errorf("could not build simulator: %w", err)
	}

	b := cfg.Box
	sim := NewSimulator(Box{
		Right: b.Right, Left: b.Left,
		Bottom: b.Bottom, Top: b.Top,
		Front: b.Front, Back: b.Back,
	}, policy)
	sim.Drag = cfg.Simulation.Drag

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	spawner := NewSpawner(seed)
	spawner.Count = cfg.Simulation.SpawnCount
	spawner.Gravity = Vector3(cfg.Simulation.Gravity)
	spawner.Specular = rgb(cfg.Material.Specular)
	spawner.Shininess = cfg.Material.Shininess

	start := time.Now()
	mesh := GenerateSphereMesh(cfg.Simulation.SubdivisionDepth)
	log.Printf("Generated %d triangles (%d vertices) in %v", mesh.TriangleCount(), len(mesh.Vertices), time.Since(start))

	w := NewWorld(mesh, sim, spawner)
	w.TimeStep = cfg.Simulation.TimeStep

	c := cfg.Camera
	w.Camera = &Camera{
		Eye:     Vector3(c.Eye),
		ViewDir: Vector3(c.ViewDir),
		WorldX:  Vector3(c.WorldX),
		FovY:    c.FovY,
		Near:    c.Near,
		Far:     c.Far,
	}

	l := cfg.Light
	w.Light = PointLight{
		Position: Vector3(l.Position),
		Ambient:  rgb(l.Ambient),
		Diffuse:  rgb(l.Diffuse),
		Specular: rgb(l.Specular),
	}

	log.Printf("Collision policy: %s, time step %v, seed %d", policy.Name(), w.TimeStep, seed)
	return w, nil
}

func rgb(c [3]float64) colorful.Color {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}
}

// AddSphere appends s. Insertion order is kept.
func (w *World) AddSphere(s *Sphere) {
	w.spheres = append(w.spheres, s)
}

// Spawn adds a batch of random spheres and returns them.
func (w *World) Spawn() []*Sphere {
	batch := w.Spawner.Spawn()
	w.spheres = append(w.spheres, batch...)
	return batch
}

// Clear removes every sphere.
func (w *World) Clear() {
	w.spheres = nil
}

// HandleEvent applies an input event. It must not be called during Step.
func (w *World) HandleEvent(e Event) {
	switch e {
	case EventSpawn:
		batch := w.Spawn()
		log.Printf("Spawned %d spheres, %d live", len(batch), len(w.spheres))
		for _, s := range batch {
			log.Printf("  %s", s)
		}
	case EventClear:
		n := len(w.spheres)
		w.Clear()
		log.Printf("Cleared %d spheres", n)
	}
}

// Step advances every sphere by one fixed time step.
func (w *World) Step() {
	w.Sim.Step(w.spheres, w.TimeStep)
	w.ticks++
}

func (w *World) Spheres() []*Sphere {
	return w.spheres
}

func (w *World) Len() int {
	return len(w.spheres)
}

// Escaped counts spheres that are no longer fully inside the box.
func (w *World) Escaped() int {
	n := 0
	for _, s := range w.spheres {
		if !w.Sim.Box.Contains(s.Position, s.Radius) {
			n++
		}
	}
	return n
}

// Ticks is the number of steps taken so far.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Frame snapshots the current state for a viewport of the given aspect
// ratio. The up vector is recomputed from the camera on every call.
func (w *World) Frame(aspect float64) Frame {
	instances := make([]Instance, 0, len(w.spheres))
	for _, s := range w.spheres {
		instances = append(instances, Instance{
			Position: s.Position,
			Scale:    s.Scale(),
			Material: s.Material,
		})
	}
	return Frame{
		Projection: w.Camera.ProjectionMatrix(aspect),
		View:       w.Camera.ViewMatrix(),
		Light:      w.Light,
		Mesh:       w.Mesh,
		Instances:  instances,
	}
}

// Tick steps the world and hands the result to r.
func (w *World) Tick(r Renderer, aspect float64) error {
	w.Step()
	if r == nil {
		return nil
	}
	return r.DrawFrame(w.Frame(aspect))
}
