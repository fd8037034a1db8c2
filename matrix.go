package bounce3d

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrMatrixStackUnderflow means Pop was called more often than Push.
var ErrMatrixStackUnderflow = errors.New("invalid popMatrix: matrix stack is empty")

// MatrixStack saves and restores model-view matrices around per-instance
// transforms.
type MatrixStack struct {
	stack []mgl64.Mat4
}

func NewMatrixStack() *MatrixStack {
	return &MatrixStack{stack: make([]mgl64.Mat4, 0, 8)}
}

func (ms *MatrixStack) Push(m mgl64.Mat4) {
	ms.stack = append(ms.stack, m)
}

func (ms *MatrixStack) Pop() (mgl64.Mat4, error) {
	if len(ms.stack) == 0 {
		return mgl64.Mat4{}, ErrMatrixStackUnderflow
	}
	m := ms.stack[len(ms.stack)-1]
	ms.stack = ms.stack[:len(ms.stack)-1]
	return m, nil
}

func (ms *MatrixStack) Len() int {
	return len(ms.stack)
}

// ModelMatrix places the unit mesh at position with the given scale.
func ModelMatrix(position, scale Vector3) mgl64.Mat4 {
	return mgl64.Translate3D(position[0], position[1], position[2]).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}

// NormalMatrix is the inverse transpose of the upper 3x3 of mv.
func NormalMatrix(mv mgl64.Mat4) mgl64.Mat3 {
	return mv.Mat3().Inv().Transpose()
}

// TransformPoint applies m to p with w = 1.
func TransformPoint(m mgl64.Mat4, p Vector3) mgl64.Vec4 {
	return m.Mul4x1(p.Vec4(1))
}
