// Package config loads game settings from defaults, an optional config file
// and NOTDOOM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"notdoom/model"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	TPS    int    `mapstructure:"tps"`
	Title  string `mapstructure:"title"`
}

type Physics struct {
	Gravity     float64 `mapstructure:"gravity"`
	FloorHeight float64 `mapstructure:"floor_height"`
}

type Player struct {
	MoveSpeed        float64 `mapstructure:"move_speed"`
	SprintMultiplier float64 `mapstructure:"sprint_multiplier"`
	PanSpeed         float64 `mapstructure:"pan_speed"`
	HitboxSize       float64 `mapstructure:"hitbox_size"`
	StandingHeight   float64 `mapstructure:"standing_height"`
	CrouchingHeight  float64 `mapstructure:"crouching_height"`
	Health           int     `mapstructure:"health"`
}

type Render struct {
	MinDistance float64 `mapstructure:"min_distance"`
	MaxDistance float64 `mapstructure:"max_distance"`
}

type Gun struct {
	Cooldown      int     `mapstructure:"cooldown"`
	AnimationTime int     `mapstructure:"animation_time"`
	Range         float64 `mapstructure:"range"`
}

type Enemy struct {
	Count          int     `mapstructure:"count"`
	Speed          float64 `mapstructure:"speed"`
	Reach          float64 `mapstructure:"reach"`
	Width          float64 `mapstructure:"width"`
	Height         float64 `mapstructure:"height"`
	SpawnRadius    float64 `mapstructure:"spawn_radius"`
	FadeStep       float64 `mapstructure:"fade_step"`
	DamageCooldown int     `mapstructure:"damage_cooldown"`
}

// Timing holds frame-count thresholds for the clock gates.
type Timing struct {
	LevelReload   int `mapstructure:"level_reload"`
	ClickDebounce int `mapstructure:"click_debounce"`
	KeyRepeat     int `mapstructure:"key_repeat"`
}

type Minimap struct {
	Scale    float64 `mapstructure:"scale"`
	MinScale float64 `mapstructure:"min_scale"`
	MaxScale float64 `mapstructure:"max_scale"`
	Step     float64 `mapstructure:"step"`
}

type Config struct {
	Window  Window  `mapstructure:"window"`
	Level   string  `mapstructure:"level"`
	Physics Physics `mapstructure:"physics"`
	Player  Player  `mapstructure:"player"`
	Render  Render  `mapstructure:"render"`
	Gun     Gun     `mapstructure:"gun"`
	Enemy   Enemy   `mapstructure:"enemy"`
	Timing  Timing  `mapstructure:"timing"`
	Minimap Minimap `mapstructure:"minimap"`
}

func setDefaults(v *viper.Viper) {
	s := model.DefaultSettings()

	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.tps", 60)
	v.SetDefault("window.title", "notdoom")
	v.SetDefault("level", "levels/level1.txt")

	v.SetDefault("physics.gravity", s.Gravity)
	v.SetDefault("physics.floor_height", s.FloorHeight)

	v.SetDefault("player.move_speed", s.MoveSpeed)
	v.SetDefault("player.sprint_multiplier", s.SprintMultiplier)
	v.SetDefault("player.pan_speed", s.PanSpeed)
	v.SetDefault("player.hitbox_size", s.HitboxSize)
	v.SetDefault("player.standing_height", s.StandingHeight)
	v.SetDefault("player.crouching_height", s.CrouchingHeight)
	v.SetDefault("player.health", s.PlayerHealth)

	v.SetDefault("render.min_distance", s.MinRenderDistance)
	v.SetDefault("render.max_distance", s.MaxRenderDistance)

	v.SetDefault("gun.cooldown", s.GunCooldown)
	v.SetDefault("gun.animation_time", s.GunAnimationTime)
	v.SetDefault("gun.range", s.GunRange)

	v.SetDefault("enemy.count", s.EnemyCount)
	v.SetDefault("enemy.speed", s.EnemySpeed)
	v.SetDefault("enemy.reach", s.EnemyReach)
	v.SetDefault("enemy.width", s.EnemyWidth)
	v.SetDefault("enemy.height", s.EnemyHeight)
	v.SetDefault("enemy.spawn_radius", s.EnemySpawnRadius)
	v.SetDefault("enemy.fade_step", s.EnemyFadeStep)
	v.SetDefault("enemy.damage_cooldown", s.DamageCooldown)

	v.SetDefault("timing.level_reload", s.LevelReloadInterval)
	v.SetDefault("timing.click_debounce", s.ClickDebounce)
	v.SetDefault("timing.key_repeat", s.KeyRepeat)

	v.SetDefault("minimap.scale", s.MinimapScale)
	v.SetDefault("minimap.min_scale", s.MinimapMinScale)
	v.SetDefault("minimap.max_scale", s.MinimapMaxScale)
	v.SetDefault("minimap.step", s.MinimapScaleStep)
}

// Load reads the config from the OS filesystem. An empty path uses defaults
// and the environment only.
func Load(path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), path)
}

func LoadFs(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	v.SetEnvPrefix("NOTDOOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive", ErrInvalid)
	case c.Render.MinDistance < 0 || c.Render.MaxDistance <= c.Render.MinDistance:
		return fmt.Errorf("%w: render distance range [%v, %v]", ErrInvalid, c.Render.MinDistance, c.Render.MaxDistance)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player health must be positive", ErrInvalid)
	case c.Player.HitboxSize <= 0:
		return fmt.Errorf("%w: hitbox size must be positive", ErrInvalid)
	case c.Gun.Range <= 0:
		return fmt.Errorf("%w: gun range must be positive", ErrInvalid)
	case c.Enemy.Count < 0:
		return fmt.Errorf("%w: negative enemy count", ErrInvalid)
	case c.Enemy.FadeStep <= 0:
		return fmt.Errorf("%w: enemy fade step must be positive", ErrInvalid)
	case c.Enemy.DamageCooldown < 0:
		return fmt.Errorf("%w: negative damage cooldown", ErrInvalid)
	case c.Gun.Cooldown < 0:
		return fmt.Errorf("%w: negative gun cooldown", ErrInvalid)
	case c.Minimap.MinScale > c.Minimap.MaxScale ||
		c.Minimap.Scale < c.Minimap.MinScale || c.Minimap.Scale > c.Minimap.MaxScale:
		return fmt.Errorf("%w: minimap scale %v outside [%v, %v]", ErrInvalid, c.Minimap.Scale, c.Minimap.MinScale, c.Minimap.MaxScale)
	}
	return nil
}

// Settings converts the config into simulation settings.
func (c *Config) Settings() model.Settings {
	return model.Settings{
		Timestep: 1 / float64(c.Window.TPS),

		Gravity:     c.Physics.Gravity,
		FloorHeight: c.Physics.FloorHeight,

		MoveSpeed:        c.Player.MoveSpeed,
		SprintMultiplier: c.Player.SprintMultiplier,
		PanSpeed:         c.Player.PanSpeed,
		HitboxSize:       c.Player.HitboxSize,
		StandingHeight:   c.Player.StandingHeight,
		CrouchingHeight:  c.Player.CrouchingHeight,
		PlayerHealth:     c.Player.Health,

		MinRenderDistance: c.Render.MinDistance,
		MaxRenderDistance: c.Render.MaxDistance,

		GunCooldown:      c.Gun.Cooldown,
		GunAnimationTime: c.Gun.AnimationTime,
		GunRange:         c.Gun.Range,

		EnemyCount:       c.Enemy.Count,
		EnemySpeed:       c.Enemy.Speed,
		EnemyReach:       c.Enemy.Reach,
		EnemyWidth:       c.Enemy.Width,
		EnemyHeight:      c.Enemy.Height,
		EnemySpawnRadius: c.Enemy.SpawnRadius,
		EnemyFadeStep:    c.Enemy.FadeStep,
		DamageCooldown:   c.Enemy.DamageCooldown,

		LevelReloadInterval: c.Timing.LevelReload,
		ClickDebounce:       c.Timing.ClickDebounce,
		KeyRepeat:           c.Timing.KeyRepeat,

		MinimapScale:     c.Minimap.Scale,
		MinimapMinScale:  c.Minimap.MinScale,
		MinimapMaxScale:  c.Minimap.MaxScale,
		MinimapScaleStep: c.Minimap.Step,
	}
}
