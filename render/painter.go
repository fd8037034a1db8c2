// Package render draws bounce3d frames with ebiten's triangle rasteriser.
package render

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/bounce3d"
)

const antiAlias = true

var boxColor = color.RGBA{R: 90, G: 90, B: 110, A: 255}

// Painter draws spheres far to near. Each sphere is convex, so culling its
// back faces is enough to hide its own hidden surfaces.
type Painter struct {
	mesh  *bounce3d.IndexedMesh
	stack *bounce3d.MatrixStack

	// Box, when set, is drawn as a wireframe.
	Box *bounce3d.Box

	vertices []ebiten.Vertex
	indices  []uint16
	viewPts  []bounce3d.Vector3
	viewNrm  []bounce3d.Vector3
	onScreen []bool
}

func NewPainter(mesh *bounce3d.Mesh) (*Painter, error) {
	im := mesh.Indexed()
	if err := im.CheckUint16(); err != nil {
		return nil, fmt.Errorf("could not index sphere mesh: %w", err)
	}
	n := len(im.Points)
	return &Painter{
		mesh:     im,
		stack:    bounce3d.NewMatrixStack(),
		vertices: make([]ebiten.Vertex, n),
		indices:  make([]uint16, 0, len(im.Indices)),
		viewPts:  make([]bounce3d.Vector3, n),
		viewNrm:  make([]bounce3d.Vector3, n),
		onScreen: make([]bool, n),
	}, nil
}

// Paint draws f onto screen.
func (p *Painter) Paint(screen *ebiten.Image, f bounce3d.Frame) error {
	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	if p.Box != nil {
		p.paintBox(screen, f, width, height)
	}

	mv := f.View
	for _, i := range bounce3d.DepthOrder(f.View, f.Instances) {
		p.stack.Push(mv)
		inst := f.Instances[i]
		mv = f.View.Mul4(bounce3d.ModelMatrix(inst.Position, inst.Scale))
		p.paintInstance(screen, f, inst, mv, width, height)

		var err error
		if mv, err = p.stack.Pop(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Painter) paintInstance(screen *ebiten.Image, f bounce3d.Frame, inst bounce3d.Instance, mv mgl64.Mat4, width, height float64) {
	nm := bounce3d.NormalMatrix(mv)
	mvp := f.Projection.Mul4(mv)

	for i, pt := range p.mesh.Points {
		pv := bounce3d.TransformPoint(mv, pt).Vec3()
		nv := bounce3d.Normalize(nm.Mul3x1(p.mesh.Normals[i]))
		p.viewPts[i] = pv
		p.viewNrm[i] = nv

		clip := bounce3d.TransformPoint(mvp, pt)
		sp, ok := bounce3d.ProjectToScreen(clip, width, height)
		// in front of the near plane
		p.onScreen[i] = ok && clip[2] >= -clip[3]
		v := &p.vertices[i]
		v.DstX, v.DstY = sp.X, sp.Y
		vertexColor(v, bounce3d.Shade(inst.Material, f.Light, pv, nv))
	}

	p.indices = bounce3d.AppendVisible(p.indices[:0], p.mesh.Indices, p.onScreen, p.viewPts, p.viewNrm)
	fillTriangles(screen, p.vertices, p.indices)
}

func (p *Painter) paintBox(screen *ebiten.Image, f bounce3d.Frame, width, height float64) {
	b := p.Box
	corners := [8]bounce3d.Vector3{
		{b.Left, b.Bottom, b.Back}, {b.Right, b.Bottom, b.Back},
		{b.Right, b.Top, b.Back}, {b.Left, b.Top, b.Back},
		{b.Left, b.Bottom, b.Front}, {b.Right, b.Bottom, b.Front},
		{b.Right, b.Top, b.Front}, {b.Left, b.Top, b.Front},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	vp := f.Projection.Mul4(f.View)
	var pts [8]bounce3d.ScreenPoint
	var ok [8]bool
	for i, c := range corners {
		pts[i], ok[i] = bounce3d.ProjectToScreen(bounce3d.TransformPoint(vp, c), width, height)
	}
	for _, e := range edges {
		if !ok[e[0]] || !ok[e[1]] {
			continue
		}
		a, c := pts[e[0]], pts[e[1]]
		drawLine(screen, a.X, a.Y, c.X, c.Y, boxColor)
	}
}
