package bounce3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ScreenPoint is a position in pixels, y growing downwards.
type ScreenPoint struct {
	X, Y float32
}

// ProjectToScreen maps a clip-space position to pixels. ok is false for
// points at or behind the eye.
func ProjectToScreen(clip mgl64.Vec4, width, height float64) (p ScreenPoint, ok bool) {
	w := clip[3]
	if w <= 0 {
		return ScreenPoint{}, false
	}
	ndcX := clip[0] / w
	ndcY := clip[1] / w
	return ScreenPoint{
		X: float32((ndcX + 1) * 0.5 * width),
		Y: float32((1 - ndcY) * 0.5 * height),
	}, true
}

// IsFrontFacing reports whether a surface at point with outward normal, both
// in view space, faces the eye at the origin.
func IsFrontFacing(point, normal Vector3) bool {
	return point.Dot(normal) < 0
}
