package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// fillTriangles draws coloured triangles. Vertex colours must already be set.
func fillTriangles(screen *ebiten.Image, vertices []ebiten.Vertex, indices []uint16) {
	if len(indices) < 3 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = antiAlias
	screen.DrawTriangles(vertices, indices, whiteSub, op)
}

func vertexColor(v *ebiten.Vertex, c colorful.Color) {
	c = c.Clamped()
	v.ColorR = float32(c.R)
	v.ColorG = float32(c.G)
	v.ColorB = float32(c.B)
	v.ColorA = 1
	v.SrcX = 1
	v.SrcY = 1
}

func drawLine(screen *ebiten.Image, startX, startY, endX, endY float32, col color.Color) {
	vector.StrokeLine(screen, startX, startY, endX, endY, 1, col, antiAlias)
}
