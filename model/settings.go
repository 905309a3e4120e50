package model

import "math"

// Settings holds every tunable used by the simulation. Durations are in frames.
type Settings struct {
	Timestep float64

	Gravity     float64
	FloorHeight float64

	MoveSpeed        float64
	SprintMultiplier float64
	PanSpeed         float64
	HitboxSize       float64
	StandingHeight   float64
	CrouchingHeight  float64
	PlayerHealth     int

	MinRenderDistance float64
	MaxRenderDistance float64

	GunCooldown      int
	GunAnimationTime int
	GunRange         float64

	EnemyCount       int
	EnemySpeed       float64
	EnemyReach       float64
	EnemyWidth       float64
	EnemyHeight      float64
	EnemySpawnRadius float64
	EnemyFadeStep    float64
	DamageCooldown   int

	LevelReloadInterval int
	ClickDebounce       int
	KeyRepeat           int

	MinimapScale     float64
	MinimapMinScale  float64
	MinimapMaxScale  float64
	MinimapScaleStep float64
}

func DefaultSettings() Settings {
	const fps = 60.0
	return Settings{
		Timestep: 1 / fps,

		Gravity:     -4,
		FloorHeight: 0,

		MoveSpeed:        2,
		SprintMultiplier: 3,
		PanSpeed:         math.Pi / 2 / fps,
		HitboxSize:       1.1,
		StandingHeight:   1,
		CrouchingHeight:  0.5,
		PlayerHealth:     3,

		MinRenderDistance: 0.0001,
		MaxRenderDistance: 1024,

		GunCooldown:      int(0.2 * fps),
		GunAnimationTime: int(0.1 * fps),
		GunRange:         100,

		EnemyCount:       8,
		EnemySpeed:       2,
		EnemyReach:       1,
		EnemyWidth:       1,
		EnemyHeight:      1.5,
		EnemySpawnRadius: 10,
		EnemyFadeStep:    0.05,
		DamageCooldown:   int(0.5 * fps),

		LevelReloadInterval: 15,
		ClickDebounce:       15,
		KeyRepeat:           10,

		MinimapScale:     8,
		MinimapMinScale:  2,
		MinimapMaxScale:  32,
		MinimapScaleStep: 2,
	}
}
