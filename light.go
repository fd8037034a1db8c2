package bounce3d

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// PointLight is positioned in view coordinates.
type PointLight struct {
	Position Vector3
	Ambient  colorful.Color
	Diffuse  colorful.Color
	Specular colorful.Color
}

func DefaultLight() PointLight {
	return PointLight{
		Position: Vector3{10, 10, 10},
		Ambient:  colorful.Color{R: 0.1, G: 0.1, B: 0.1},
		Diffuse:  colorful.Color{R: 1, G: 1, B: 1},
		Specular: colorful.Color{R: 1, G: 1, B: 1},
	}
}

// Shade evaluates the Phong reflection model at a surface point. pos and
// normal are in view space, so the eye sits at the origin. The result is not
// clamped.
func Shade(mat Material, light PointLight, pos, normal Vector3) colorful.Color {
	n := Normalize(normal)
	toLight := Normalize(light.Position.Sub(pos))

	diffuse := n.Dot(toLight)
	if diffuse < 0 {
		diffuse = 0
	}

	// reflect(-L, N)
	incident := toLight.Mul(-1)
	reflected := incident.Sub(n.Mul(2 * n.Dot(incident)))
	toEye := Normalize(pos.Mul(-1))

	specular := 0.0
	if diffuse > 0 {
		rv := reflected.Dot(toEye)
		if rv > 0 {
			specular = math.Pow(rv, mat.Shininess)
		}
	}

	return colorful.Color{
		R: light.Ambient.R*mat.Ambient.R + light.Diffuse.R*mat.Diffuse.R*diffuse + light.Specular.R*mat.Specular.R*specular,
		G: light.Ambient.G*mat.Ambient.G + light.Diffuse.G*mat.Diffuse.G*diffuse + light.Specular.G*mat.Specular.G*specular,
		B: light.Ambient.B*mat.Ambient.B + light.Diffuse.B*mat.Diffuse.B*diffuse + light.Specular.B*mat.Specular.B*specular,
	}
}
