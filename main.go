package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"notdoom/config"
	"notdoom/levelfile"
	"notdoom/model"
)

var CLI struct {
	Debug  bool   `help:"Whether to enable debug logging."`
	Config string `help:"Configuration file (yaml, json or toml)."`
	Level  string `help:"Level file, overriding the configured one."`

	Play struct {
	} `cmd:"" default:"1" help:"Open a window and play."`

	Simulate struct {
		Ticks int   `help:"Frames to simulate." default:"3600"`
		Seed  int64 `help:"Seed for enemy spawning." default:"1"`
	} `cmd:"" help:"Run the simulation without a window and print a report."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("notdoom"),
		kong.Description("a pseudo-3D shooter drawn by projecting onto a view plane"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		writeError(err)
	}
	if CLI.Level != "" {
		cfg.Level = CLI.Level
	}

	switch ctx.Command() {
	case "play":
		err = playCommand(cfg)
	case "simulate":
		err = simulateCommand(cfg, CLI.Simulate.Ticks, CLI.Simulate.Seed)
	}
	if err != nil {
		writeError(err)
	}
}

// newWorld loads the configured level and builds a world that keeps
// reloading it from disk.
func newWorld(cfg *config.Config, seed int64) (*model.World, error) {
	source := levelfile.NewSource(afero.NewOsFs(), cfg.Level)
	level, err := source.LoadLevel()
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", source.Path()).Int("walls", level.Len()).Msg("level loaded")

	world := model.NewWorld(cfg.Settings(), level, rand.New(rand.NewSource(seed)))
	world.SetLevelSource(source)
	return world, nil
}

func playCommand(cfg *config.Config) error {
	world, err := newWorld(cfg, time.Now().UnixNano())
	if err != nil {
		return err
	}

	game, err := NewGame(cfg, world)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
