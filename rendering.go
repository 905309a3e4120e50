package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"notdoom/model"
)

var (
	skyColor   = color.RGBA{96, 140, 200, 255}
	floorColor = color.RGBA{70, 62, 54, 255}

	wallBottomColor = color.RGBA{60, 60, 70, 255}
	wallTopColor    = color.RGBA{150, 150, 165, 255}

	enemyBottomColor = color.RGBA{120, 20, 20, 255}
	enemyTopColor    = color.RGBA{200, 60, 40, 255}
)

// maxBatchQuads keeps a single DrawTriangles call under the uint16 index limit.
const maxBatchQuads = 4096

// Renderer fills projected quads onto the screen as pairs of triangles.
type Renderer struct {
	width, height int

	// solid white source so vertex colours come through unchanged
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer(width, height int) *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &Renderer{
		width:  width,
		height: height,
		white:  img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// toScreen maps normalised view-plane coordinates to pixels. Both axes are
// scaled by the width so the image keeps its aspect ratio.
func toScreen(p model.ScreenPoint, width, height int) (float32, float32) {
	w, h := float64(width), float64(height)
	return float32(p.X * w), float32((p.Y-0.5)*w + h/2)
}

func (r *Renderer) DrawBackground(screen *ebiten.Image) {
	w, h := float32(r.width), float32(r.height)
	vector.DrawFilledRect(screen, 0, 0, w, h/2, skyColor, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, floorColor, false)
}

// DrawScene draws quads in the given order, which must already be far to
// near. Quads beyond the far plane are skipped.
func (r *Renderer) DrawScene(screen *ebiten.Image, quads []model.Quad) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	n := 0
	for i := range quads {
		q := &quads[i]
		if q.Depth > 1 {
			continue
		}

		bottom, top := wallBottomColor, wallTopColor
		if q.Kind == model.QuadEnemy {
			bottom, top = enemyBottomColor, enemyTopColor
		}
		r.appendQuad(q, bottom, top)

		n++
		if n == maxBatchQuads {
			r.flush(screen)
			n = 0
		}
	}
	r.flush(screen)
}

// appendQuad adds the two triangles of q. The first two points are the
// bottom edge, the last two the top edge.
func (r *Renderer) appendQuad(q *model.Quad, bottom, top color.RGBA) {
	base := uint16(len(r.vertices))
	for i, p := range q.Points {
		c := bottom
		if i >= 2 {
			c = top
		}
		x, y := toScreen(p, r.width, r.height)
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(q.Alpha),
		})
	}
	r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
}

func (r *Renderer) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(r.vertices, r.indices, r.white, op)

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
