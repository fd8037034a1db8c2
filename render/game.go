package render

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/bounce3d"
)

// Game drives a World from ebiten: each Update ticks the world with the
// game as its Renderer, and Draw paints the last frame received.
type Game struct {
	world         *bounce3d.World
	painter       *Painter
	stats         *bounce3d.FrameStats
	frame         bounce3d.Frame
	width, height int
	err           error
}

var _ bounce3d.Renderer = (*Game)(nil)

func NewGame(w *bounce3d.World, width, height int, stats *bounce3d.FrameStats) (*Game, error) {
	log.Println("Building sphere painter...")
	painter, err := NewPainter(w.Mesh)
	if err != nil {
		return nil, fmt.Errorf("could not set up renderer: %w", err)
	}
	painter.Box = &w.Sim.Box
	log.Printf("Painter ready: %d unique vertices", len(painter.mesh.Points))

	g := &Game{
		world:   w,
		painter: painter,
		stats:   stats,
		width:   width,
		height:  height,
	}
	g.frame = w.Frame(g.aspect())
	return g, nil
}

func (g *Game) aspect() float64 {
	return float64(g.width) / float64(g.height)
}

// DrawFrame keeps f for the next Draw.
func (g *Game) DrawFrame(f bounce3d.Frame) error {
	g.frame = f
	return nil
}

// Update handles input first so spawns and clears land between steps.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.world.HandleEvent(bounce3d.EventSpawn)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.world.HandleEvent(bounce3d.EventClear)
	}

	if err := g.world.Tick(g, g.aspect()); err != nil {
		return err
	}
	if g.stats != nil {
		g.stats.Tick(g.world.Len())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if err := g.painter.Paint(screen, g.frame); err != nil && g.err == nil {
		// surfaced by the next Update, which stops the game
		g.err = err
	}
	var last time.Duration
	if g.stats != nil {
		last = g.stats.LastFrame()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  Frame: %v  Spheres: %d\nEnter: spawn  Delete: clear",
		ebiten.ActualFPS(), last.Round(time.Microsecond), len(g.frame.Instances)))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or the game fails.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}
