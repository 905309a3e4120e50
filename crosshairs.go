package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Crosshairs draws the aiming reticle and flashes a hit marker for a few
// frames after a shot lands.
type Crosshairs struct {
	size     float32
	hitTimer int
}

func NewCrosshairs(size float32) *Crosshairs {
	return &Crosshairs{size: size}
}

func (c *Crosshairs) ActivateHitIndicator(hitTime int) {
	c.hitTimer = hitTime
}

func (c *Crosshairs) IsHitIndicatorActive() bool {
	return c.hitTimer > 0
}

func (c *Crosshairs) Update() {
	if c.hitTimer > 0 {
		c.hitTimer--
	}
}

func (c *Crosshairs) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2
	s := c.size

	clr := color.RGBA{230, 230, 230, 200}
	vector.StrokeLine(screen, cx-s, cy, cx-s/3, cy, 2, clr, false)
	vector.StrokeLine(screen, cx+s/3, cy, cx+s, cy, 2, clr, false)
	vector.StrokeLine(screen, cx, cy-s, cx, cy-s/3, 2, clr, false)
	vector.StrokeLine(screen, cx, cy+s/3, cx, cy+s, 2, clr, false)

	if c.IsHitIndicatorActive() {
		hit := color.RGBA{220, 30, 30, 255}
		d := s * 0.6
		vector.StrokeLine(screen, cx-d, cy-d, cx-d/2, cy-d/2, 2, hit, false)
		vector.StrokeLine(screen, cx+d, cy-d, cx+d/2, cy-d/2, 2, hit, false)
		vector.StrokeLine(screen, cx-d, cy+d, cx-d/2, cy+d/2, 2, hit, false)
		vector.StrokeLine(screen, cx+d, cy+d, cx+d/2, cy+d/2, 2, hit, false)
	}
}
