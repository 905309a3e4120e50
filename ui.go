package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/harbdog/raycaster-go/geom"

	"notdoom/model"
)

var (
	heartColor      = color.RGBA{210, 30, 40, 255}
	heartEmptyColor = color.RGBA{90, 90, 90, 255}
	gunColor        = color.RGBA{45, 45, 50, 255}
	flashColor      = color.RGBA{255, 210, 80, 255}
	textColor       = color.RGBA{240, 240, 240, 255}
)

// HUD draws the overlay that sits on top of the scene: hearts, gun, damage
// flash and the FPS counter.
type HUD struct {
	face *text.GoXFace
}

func NewHUD(face *text.GoXFace) *HUD {
	return &HUD{face: face}
}

func (h *HUD) Draw(screen *ebiten.Image, w *model.World) {
	s := w.Settings()
	clk := w.Clock()
	p := w.Player()

	h.drawDamage(screen, s, clk, p)
	h.drawGun(screen, s, clk)
	h.drawHearts(screen, s, p)

	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 34)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), h.face, op)

	ebitenutil.DebugPrintAt(screen, "WASD move, arrows turn, space to fire, ctrl to crouch", 10, screen.Bounds().Dy()-40)
	ebitenutil.DebugPrintAt(screen, "right click map, +/- zoom, P pause, ESC to exit", 10, screen.Bounds().Dy()-20)
}

// drawDamage tints the screen red right after a hit, fading out over the
// damage cooldown.
func (h *HUD) drawDamage(screen *ebiten.Image, s model.Settings, clk model.Clock, p model.Player) {
	if p.Health >= s.PlayerHealth || s.DamageCooldown <= 0 {
		return
	}
	alpha := geom.Clamp(1-float64(clk.Damage)/float64(s.DamageCooldown), 0, 1)
	if alpha == 0 {
		return
	}

	b := screen.Bounds()
	red := color.NRGBA{160, 0, 0, uint8(alpha * 120)}
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), red, false)
}

func (h *HUD) drawGun(screen *ebiten.Image, s model.Settings, clk model.Clock) {
	b := screen.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	gw, gh := sw/10, sh/4

	x := sw/2 - gw/2
	y := sh - gh
	if int(clk.Gun) < s.GunAnimationTime {
		// recoil and muzzle flash while the shot animation plays
		y += gh / 10
		vector.DrawFilledCircle(screen, sw/2, y-gw/4, gw/3, flashColor, true)
	}
	vector.DrawFilledRect(screen, x, y, gw, gh, gunColor, false)
}

func (h *HUD) drawHearts(screen *ebiten.Image, s model.Settings, p model.Player) {
	const r, gap = 8, 6
	for i := 0; i < s.PlayerHealth; i++ {
		cx := float32(10 + r + i*(2*r+gap))
		cy := float32(10 + r)
		if p.Health > i {
			vector.DrawFilledCircle(screen, cx, cy, r, heartColor, true)
		} else {
			vector.StrokeCircle(screen, cx, cy, r, 2, heartEmptyColor, true)
		}
	}
}
