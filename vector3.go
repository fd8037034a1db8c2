package bounce3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is the value type used for points, directions and velocities.
type Vector3 = mgl64.Vec3

// Lerp returns a + t*(b-a).
func Lerp(a, b Vector3, t float64) Vector3 {
	return Vector3{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// Normalize scales v to unit length. A zero vector is returned unchanged.
func Normalize(v Vector3) Vector3 {
	length := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	if length == 0 {
		return v
	}
	inv := 1 / math.Sqrt(length)
	return Vector3{v[0] * inv, v[1] * inv, v[2] * inv}
}
