package bounce3d

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSpawnCount is how many spheres one spawn event creates.
const DefaultSpawnCount = 9

// Spawner creates randomly placed, sized and coloured spheres.
type Spawner struct {
	rng       *rand.Rand
	Count     int
	Gravity   Vector3
	Specular  colorful.Color
	Shininess float64
}

func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		Count:     DefaultSpawnCount,
		Gravity:   Gravity,
		Specular:  DefaultSpecular,
		Shininess: DefaultShininess,
	}
}

// NewRandomSphere draws each position component from [-1.9, 2.1), the radius
// from [0.1, 0.3), each colour channel from [0, 1) and each velocity
// component from [-5, 10).
func (sp *Spawner) NewRandomSphere() *Sphere {
	pos := Vector3{
		4*sp.rng.Float64() - 1.9,
		4*sp.rng.Float64() - 1.9,
		4*sp.rng.Float64() - 1.9,
	}
	radius := 0.2*sp.rng.Float64() + 0.1
	col := colorful.Color{
		R: sp.rng.Float64(),
		G: sp.rng.Float64(),
		B: sp.rng.Float64(),
	}
	vel := Vector3{
		15*sp.rng.Float64() - 5,
		15*sp.rng.Float64() - 5,
		15*sp.rng.Float64() - 5,
	}

	mat := NewMaterial(col)
	mat.Specular = sp.Specular
	mat.Shininess = sp.Shininess
	s := NewSphere(pos, vel, radius, mat)
	s.Acceleration = sp.Gravity
	return s
}

// Spawn returns Count new spheres.
func (sp *Spawner) Spawn() []*Sphere {
	out := make([]*Sphere, 0, sp.Count)
	for i := 0; i < sp.Count; i++ {
		out = append(out, sp.NewRandomSphere())
	}
	return out
}
