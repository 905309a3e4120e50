package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"notdoom/model"
)

// pollInput samples the keyboard and mouse for one frame. Held keys drive
// movement; rate limiting of repeated actions is left to the world clock.
func pollInput() model.Input {
	return model.Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		PanLeft:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		PanRight:    ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Sprint:      ebiten.IsKeyPressed(ebiten.KeyShift),
		Crouch:      ebiten.IsKeyPressed(ebiten.KeyControl),

		Fire: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Reset: inpututil.IsKeyJustPressed(ebiten.KeyR),

		ToggleMinimap: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ZoomIn:        ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyNumpadAdd),
		ZoomOut:       ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract),
	}
}

func (g *Game) handleInput() error {
	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	// if escape, exit game
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	return nil
}
