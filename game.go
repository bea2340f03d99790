package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/antcolony-go/internal/colony"
	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// Palette
var (
	background     = color.RGBA{255, 255, 255, 255}
	workerColor    = color.RGBA{20, 20, 20, 255}
	carryingColor  = color.RGBA{255, 0, 0, 255}
	soldierColor   = color.RGBA{255, 220, 0, 255}
	foodColor      = color.RGBA{0, 150, 0, 255}
	nestColor      = color.RGBA{0, 0, 200, 255}
	obstacleColor  = color.RGBA{100, 100, 100, 255}
	pheromoneColor = color.RGBA{0, 150, 255, 255}
	textColor      = color.RGBA{20, 20, 20, 255}
)

var uiFace = text.NewGoXFace(basicfont.Face7x13)

// Game adapts a colony.Simulation to Ebitengine: one Step per Update,
// one Snapshot drawn per Draw.
type Game struct {
	sim        *colony.Simulation
	Paused     bool
	StepOnce   bool // advance a single tick while paused
	ShowTrails bool
	ShowLegend bool
}

// NewGame wraps sim with trails and legend visible.
func NewGame(sim *colony.Simulation) *Game {
	return &Game{sim: sim, ShowTrails: true, ShowLegend: true}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()

	if g.sim.Stopped() {
		return ebiten.Termination
	}
	if g.Paused && !g.StepOnce {
		return nil
	}
	g.StepOnce = false

	if err := g.sim.Step(); err != nil {
		if errors.Is(err, colony.ErrStopped) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// handleInput processes keyboard input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sim.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if g.Paused && inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.StepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.ShowTrails = !g.ShowTrails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.ShowLegend = !g.ShowLegend
	}
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	screen.Fill(background)

	// pheromones under everything else
	if g.ShowTrails {
		for _, p := range snap.Pheromones {
			c := color.NRGBA{pheromoneColor.R, pheromoneColor.G, pheromoneColor.B, p.Alpha()}
			drawBox(screen, geom.Box(p.Pos, snap.PheromoneSize, snap.PheromoneSize), c)
		}
	}
	for _, f := range snap.Food {
		drawBox(screen, geom.Box(f.Pos, snap.FoodSize, snap.FoodSize), foodColor)
	}
	for _, o := range snap.Obstacles {
		drawBox(screen, o, obstacleColor)
	}
	for _, a := range snap.Ants {
		drawBox(screen, geom.Box(a.Pos, snap.AntSize, snap.AntSize), antColor(a))
	}
	drawBox(screen, snap.Nest, nestColor)

	if g.ShowLegend {
		g.drawLegend(screen, snap.AntSize, snap.FoodSize, snap.PheromoneSize)
	}
	g.drawStatus(screen, snap)
}

// Layout returns the arena size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	a := g.sim.Arena()
	return int(a.Width), int(a.Height)
}

func antColor(a colony.AntView) color.Color {
	switch {
	case a.Role == colony.Soldier:
		return soldierColor
	case a.Carrying:
		return carryingColor
	default:
		return workerColor
	}
}

func drawBox(dst *ebiten.Image, r geom.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

type legendItem struct {
	c     color.Color
	size  float64
	label string
}

func (g *Game) drawLegend(screen *ebiten.Image, antSize, foodSize, pheromoneSize float64) {
	const (
		startX     = 10
		startY     = 10
		lineHeight = 25
		boxWidth   = 15
	)
	items := []legendItem{
		{workerColor, antSize, ": Worker Ant (Seeking)"},
		{carryingColor, antSize, ": Worker Ant (Carrying)"},
		{soldierColor, antSize, ": Soldier Ant"},
		{foodColor, foodSize, ": Food Pile"},
		{nestColor, foodSize, ": Nest"},
		{obstacleColor, foodSize, ": Obstacle"},
		{pheromoneColor, pheromoneSize, ": Pheromone Trail"},
	}
	y := startY
	for _, it := range items {
		top := float64(y) + (lineHeight-it.size)/2
		drawBox(screen, geom.Rect{X: startX, Y: top, Width: it.size, Height: it.size}, it.c)
		drawText(screen, it.label, startX+boxWidth+5, float64(y)+6)
		y += lineHeight
	}
}

func (g *Game) drawStatus(screen *ebiten.Image, snap colony.Snapshot) {
	left := 0
	for _, f := range snap.Food {
		left += f.Amount
	}
	st := snap.Stats
	line := fmt.Sprintf("tick %d  food %d  collected %d  delivered %d  trail %d",
		st.Tick, left, st.Collected, st.Delivered, len(snap.Pheromones))
	if g.Paused {
		line += "  [paused]"
	}
	drawText(screen, line, 10, snap.Height-23)
}

// drawText places s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, s, uiFace, op)
}
