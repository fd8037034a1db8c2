package bounce3d

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Gravity is the constant acceleration every sphere is created with.
var Gravity = Vector3{0, -10, 0}

// Material holds the Phong reflection coefficients of a sphere.
type Material struct {
	Ambient   colorful.Color
	Diffuse   colorful.Color
	Specular  colorful.Color
	Shininess float64
}

const DefaultShininess = 23

var DefaultSpecular = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// NewMaterial uses col for both the ambient and diffuse terms.
func NewMaterial(col colorful.Color) Material {
	return Material{
		Ambient:   col,
		Diffuse:   col,
		Specular:  DefaultSpecular,
		Shininess: DefaultShininess,
	}
}

type Sphere struct {
	Position     Vector3
	Velocity     Vector3
	Acceleration Vector3
	Radius       float64
	Material     Material
}

func NewSphere(position, velocity Vector3, radius float64, material Material) *Sphere {
	return &Sphere{
		Position:     position,
		Velocity:     velocity,
		Acceleration: Gravity,
		Radius:       radius,
		Material:     material,
	}
}

// Scale is the uniform scale applied to the unit mesh when drawing.
func (s *Sphere) Scale() Vector3 {
	return Vector3{s.Radius, s.Radius, s.Radius}
}

func (s *Sphere) String() string {
	return fmt.Sprintf("sphere r=%.3f pos=(%.3f, %.3f, %.3f) vel=(%.3f, %.3f, %.3f) col=%s",
		s.Radius,
		s.Position[0], s.Position[1], s.Position[2],
		s.Velocity[0], s.Velocity[1], s.Velocity[2],
		s.Material.Diffuse.Clamped().Hex())
}
