package model

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Input is the raw control state sampled once per frame.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	PanLeft     bool
	PanRight    bool
	Sprint      bool
	Crouch      bool
	Fire        bool
	Reset       bool

	ToggleMinimap bool
	ZoomIn        bool
	ZoomOut       bool
}

// LevelSource supplies fresh level geometry for periodic reloads.
type LevelSource interface {
	LoadLevel() (*Level, error)
}

// Report summarises what happened during one Update.
type Report struct {
	Tick        int
	Shot        *ShotResult
	DamageTaken int
	Spawned     int
	Removed     int
	Reloaded    bool
	ReloadErr   error
	GameOver    bool
}

type Minimap struct {
	Visible bool
	Scale   float64
}

// World owns all simulation state. It is driven by a single goroutine:
// Update mutates, everything else only reads.
type World struct {
	settings Settings
	player   Player
	enemies  []Enemy
	template Enemy
	level    *Level
	source   LevelSource
	clock    Clock
	rng      *rand.Rand
	state    State
	tick     int
	minimap  Minimap
}

func NewWorld(s Settings, level *Level, rng *rand.Rand) *World {
	if level == nil {
		level = EmptyLevel()
	}
	w := &World{
		settings: s,
		level:    level,
		rng:      rng,
		template: Enemy{
			Width:  s.EnemyWidth,
			Height: s.EnemyHeight,
		},
		minimap: Minimap{Scale: s.MinimapScale},
	}
	w.reset()
	return w
}

// reset puts the player, enemies and clock back to their starting values.
// The level and minimap preferences are kept.
func (w *World) reset() {
	w.player = NewPlayer(w.settings)
	w.enemies = nil
	w.clock = Clock{Gun: Counter(w.settings.GunCooldown)}
	w.state = StatePlaying
}

// Restart begins a fresh round on the current level.
func (w *World) Restart() {
	log.Info().Int("tick", w.tick).Msg("restarting")
	w.reset()
}

func (w *World) SetLevelSource(src LevelSource) {
	w.source = src
}

// SetLevel replaces the level between frames.
func (w *World) SetLevel(level *Level) {
	w.level = level
}

func (w *World) Settings() Settings { return w.settings }
func (w *World) Player() Player     { return w.player }
func (w *World) Level() *Level      { return w.level }
func (w *World) Clock() Clock       { return w.clock }
func (w *World) State() State       { return w.state }
func (w *World) Tick() int          { return w.tick }
func (w *World) Minimap() Minimap   { return w.minimap }
func (w *World) Basis() CameraBasis { return ComputeCameraBasis(w.player.ViewAngle) }
func (w *World) SetPlayer(p Player) { w.player = p }
func (w *World) EnemyCount() int    { return len(w.enemies) }
func (w *World) Enemy(i int) Enemy  { return w.enemies[i] }

func (w *World) Enemies() []Enemy {
	out := make([]Enemy, len(w.enemies))
	copy(out, w.enemies)
	return out
}

// LiveEnemies counts enemies that have not been shot.
func (w *World) LiveEnemies() int {
	n := 0
	for i := range w.enemies {
		if !w.enemies[i].Dead {
			n++
		}
	}
	return n
}

// Projector returns the projector for the current camera.
func (w *World) Projector() Projector {
	return Projector{
		Basis:       w.Basis(),
		Eye:         w.player.Eye(),
		MinDistance: w.settings.MinRenderDistance,
		MaxDistance: w.settings.MaxRenderDistance,
	}
}

// AddEnemy spawns an enemy from the template at pos.
func (w *World) AddEnemy(pos Vector3) uuid.UUID {
	var e Enemy
	if err := copier.Copy(&e, &w.template); err != nil {
		log.Error().Err(err).Msg("copy enemy template")
		e = w.template
	}
	e.ID = uuid.New()
	e.Position = pos
	w.enemies = append(w.enemies, e)

	log.Debug().Str("enemy", e.ID.String()).Float64("x", pos.X).Float64("z", pos.Z).Msg("enemy spawned")
	return e.ID
}

// Update advances the simulation by one frame.
func (w *World) Update(in Input) Report {
	w.tick++
	report := Report{Tick: w.tick}

	if w.state == StateGameOver {
		if in.Reset {
			w.Restart()
		}
		report.GameOver = w.state == StateGameOver
		return report
	}

	w.clock.Tick()

	// horizontal movement has no inertia
	w.player.Velocity.X = 0
	w.player.Velocity.Z = 0

	w.reloadLevel(&report)

	basis := w.applyInput(in)
	if in.Fire && w.clock.Gun.Trigger(w.settings.GunCooldown) {
		shot := w.fire(basis)
		report.Shot = &shot
	}

	w.stepPlayer()
	w.updateEnemies(&report)

	if w.player.IsDead() {
		w.state = StateGameOver
		report.GameOver = true
		log.Info().Int("tick", w.tick).Msg("player died")
	}

	return report
}

func (w *World) reloadLevel(report *Report) {
	if !w.clock.LoadFile.Trigger(w.settings.LevelReloadInterval) || w.source == nil {
		return
	}

	level, err := w.source.LoadLevel()
	if err != nil {
		log.Warn().Err(err).Msg("level reload failed, keeping previous level")
		report.ReloadErr = err
		return
	}

	w.level = level
	report.Reloaded = true
	log.Trace().Int("walls", level.Len()).Msg("level reloaded")
}

func (w *World) applyInput(in Input) CameraBasis {
	s := w.settings
	p := &w.player

	if in.Reset {
		p.Position = Vector3{}
	}

	if in.PanLeft {
		p.Pan(s.PanSpeed)
	}
	if in.PanRight {
		p.Pan(-s.PanSpeed)
	}
	basis := ComputeCameraBasis(p.ViewAngle)

	speed := s.MoveSpeed
	if in.Sprint {
		speed *= s.SprintMultiplier
	}

	var move Vector3
	if in.Forward {
		move = move.Add(basis.View.Scale(speed))
	}
	if in.Backward {
		move = move.Sub(basis.View.Scale(speed))
	}
	if in.StrafeLeft {
		move = move.Sub(basis.Right.Scale(speed))
	}
	if in.StrafeRight {
		move = move.Add(basis.Right.Scale(speed))
	}
	p.Velocity.X += move.X
	p.Velocity.Z += move.Z

	if in.Crouch {
		p.Crouch(s)
	} else {
		p.Stand(s)
	}

	if in.ToggleMinimap && w.clock.Click.Trigger(s.ClickDebounce) {
		w.minimap.Visible = !w.minimap.Visible
	}
	if in.ZoomIn && w.clock.Key.Trigger(s.KeyRepeat) {
		w.minimap.Scale = geom.Clamp(w.minimap.Scale+s.MinimapScaleStep, s.MinimapMinScale, s.MinimapMaxScale)
	}
	if in.ZoomOut && w.clock.Key.Trigger(s.KeyRepeat) {
		w.minimap.Scale = geom.Clamp(w.minimap.Scale-s.MinimapScaleStep, s.MinimapMinScale, s.MinimapMaxScale)
	}

	return basis
}

// stepPlayer integrates the player's motion, clamps to the floor and rejects
// horizontal movement into walls.
func (w *World) stepPlayer() {
	s := w.settings
	p := &w.player

	next := p.Position.Add(p.Velocity.Scale(s.Timestep))
	p.Velocity = p.Velocity.Add(Vector3{Y: s.Gravity * s.Timestep})

	if next.Y <= s.FloorHeight {
		p.Velocity.Y = 0
		next.Y = s.FloorHeight
	}

	if collides(next, s.HitboxSize, w.level.Segments()) {
		next.X, next.Z = p.Position.X, p.Position.Z
	}

	p.Position = next
}
