package bounce3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera looks from Eye along ViewDir. The up vector is not stored; it is
// rebuilt from WorldX and ViewDir whenever the view matrix is made.
type Camera struct {
	Eye     Vector3
	ViewDir Vector3
	WorldX  Vector3
	FovY    float64 // degrees
	Near    float64
	Far     float64
}

func NewCamera(eye, viewDir Vector3) *Camera {
	return &Camera{
		Eye:     eye,
		ViewDir: viewDir,
		WorldX:  Vector3{1, 0, 0},
		FovY:    45,
		Near:    0.1,
		Far:     500,
	}
}

func DefaultCamera() *Camera {
	return NewCamera(Vector3{0, 1, 13}, Vector3{0, -1, -13})
}

// Up returns WorldX x ViewDir. For the default camera this is (0, 13, -1).
func (c *Camera) Up() Vector3 {
	return c.WorldX.Cross(c.ViewDir)
}

// LookAt is the point one ViewDir in front of the eye.
func (c *Camera) LookAt() Vector3 {
	return c.Eye.Add(c.ViewDir)
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.LookAt(), c.Up())
}

func (c *Camera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}
