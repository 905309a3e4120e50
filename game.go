package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"

	"notdoom/config"
	"notdoom/model"
)

// hitIndicatorTime is how many frames the hit marker stays up.
const hitIndicatorTime = 10

// Game drives the world once per tick and draws it. It implements
// ebiten.Game.
type Game struct {
	paused bool

	// window resolution
	width  int
	height int

	world *model.World

	renderer   *Renderer
	hud        *HUD
	crosshairs *Crosshairs
	overlay    *Overlay
	minimap    *ebiten.Image

	// last scene that projected cleanly, redrawn if a frame fails
	scene []model.Quad
}

func NewGame(cfg *config.Config, world *model.World) (*Game, error) {
	log.Info().Int("width", cfg.Window.Width).Int("height", cfg.Window.Height).Msg("initializing game")

	hudFace, err := loadFace(18)
	if err != nil {
		return nil, err
	}
	titleFace, err := loadFace(40)
	if err != nil {
		return nil, err
	}

	g := &Game{
		width:      cfg.Window.Width,
		height:     cfg.Window.Height,
		world:      world,
		renderer:   NewRenderer(cfg.Window.Width, cfg.Window.Height),
		hud:        NewHUD(text.NewGoXFace(hudFace)),
		crosshairs: NewCrosshairs(10),
		overlay:    NewOverlay(titleFace, hudFace),
	}

	return g, nil
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Update polls input and advances the world by one frame.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	if g.paused {
		g.overlay.SetText("PAUSED", "press P to resume")
		g.overlay.Update()
		return nil
	}

	report := g.world.Update(pollInput())
	if report.Shot != nil && report.Shot.Hit {
		g.crosshairs.ActivateHitIndicator(hitIndicatorTime)
	}
	g.crosshairs.Update()

	if report.GameOver {
		g.overlay.SetText("GAME OVER", "press R to restart")
		g.overlay.Update()
	}

	return nil
}

// Draw renders the scene back to front, then the HUD layers.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawBackground(screen)

	quads, err := g.world.Scene()
	if err != nil {
		log.Error().Err(err).Msg("projection failed, keeping previous frame")
	} else {
		g.scene = quads
	}
	g.renderer.DrawScene(screen, g.scene)

	g.crosshairs.Draw(screen)
	g.hud.Draw(screen, g.world)

	if g.world.Minimap().Visible {
		g.drawMinimap(screen)
	}

	if g.paused || g.world.State() == model.StateGameOver {
		g.overlay.Draw(screen)
	}
}
