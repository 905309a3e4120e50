package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const minimapSize = 200

var (
	minimapBackground = color.NRGBA{20, 20, 20, 200}
	minimapWallColor  = color.RGBA{200, 200, 200, 255}
	minimapEnemyColor = color.RGBA{220, 40, 40, 255}
	minimapDeadColor  = color.RGBA{100, 40, 40, 255}
	minimapPlayer     = color.RGBA{60, 200, 60, 255}
)

// drawMinimap draws a top-down view centred on the player in the top right
// corner. World x runs right and world z runs up.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	mm := g.world.Minimap()
	scale := float32(mm.Scale)

	if g.minimap == nil {
		g.minimap = ebiten.NewImage(minimapSize, minimapSize)
	}
	img := g.minimap
	img.Fill(minimapBackground)

	p := g.world.Player()
	half := float32(minimapSize) / 2
	toMap := func(x, z float64) (float32, float32) {
		return half + float32(x-p.Position.X)*scale, half - float32(z-p.Position.Z)*scale
	}

	for _, s := range g.world.Level().Segments() {
		a, b := s.Endpoints()
		x0, y0 := toMap(a.X, a.Y)
		x1, y1 := toMap(b.X, b.Y)
		vector.StrokeLine(img, x0, y0, x1, y1, 2, minimapWallColor, false)
	}

	for _, e := range g.world.Enemies() {
		x, y := toMap(e.Position.X, e.Position.Z)
		c := minimapEnemyColor
		if e.Dead {
			c = minimapDeadColor
		}
		vector.DrawFilledCircle(img, x, y, float32(math.Max(2, mm.Scale*e.Width/2)), c, true)
	}

	g.drawMinimapPlayer(img, half, half)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.width-minimapSize-10), 10)
	screen.DrawImage(img, op)
}

func (g *Game) drawMinimapPlayer(img *ebiten.Image, playerX, playerY float32) {
	// calculate triangle points
	triangleSize := float32(8)
	view := g.world.Basis().View
	angle := math.Atan2(-view.Z, view.X)

	x1 := playerX + triangleSize*float32(math.Cos(angle))
	y1 := playerY + triangleSize*float32(math.Sin(angle))

	x2 := playerX + triangleSize*float32(math.Cos(angle+2.5))
	y2 := playerY + triangleSize*float32(math.Sin(angle+2.5))

	x3 := playerX + triangleSize*float32(math.Cos(angle-2.5))
	y3 := playerY + triangleSize*float32(math.Sin(angle-2.5))

	r := float32(minimapPlayer.R) / 255
	gr := float32(minimapPlayer.G) / 255
	b := float32(minimapPlayer.B) / 255
	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: gr, ColorB: b, ColorA: 1},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: r, ColorG: gr, ColorB: b, ColorA: 1},
		{DstX: x3, DstY: y3, SrcX: 1, SrcY: 1, ColorR: r, ColorG: gr, ColorB: b, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	img.DrawTriangles(vertices, indices, g.renderer.white, nil)
}
