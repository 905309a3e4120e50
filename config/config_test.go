package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notdoom/model"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadFs(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, model.DefaultSettings(), cfg.Settings())
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	// yaml config
	{
		require.NoError(t, afero.WriteFile(fs, "/etc/notdoom.yaml", []byte(`
window:
  width: 800
enemy:
  count: 2
  damage_cooldown: 10
level: custom.txt
`), 0o644))

		cfg, err := LoadFs(fs, "/etc/notdoom.yaml")
		require.NoError(t, err)
		assert.Equal(t, 800, cfg.Window.Width)
		assert.Equal(t, 480, cfg.Window.Height)
		assert.Equal(t, "custom.txt", cfg.Level)

		s := cfg.Settings()
		assert.Equal(t, 2, s.EnemyCount)
		assert.Equal(t, 10, s.DamageCooldown)
		assert.Equal(t, model.DefaultSettings().GunRange, s.GunRange)
	}

	// json config
	{
		require.NoError(t, afero.WriteFile(fs, "/etc/notdoom.json", []byte(`{"gun": {"range": 50}}`), 0o644))

		cfg, err := LoadFs(fs, "/etc/notdoom.json")
		require.NoError(t, err)
		assert.Equal(t, 50.0, cfg.Gun.Range)
	}

	_, err := LoadFs(fs, "/etc/missing.yaml")
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("NOTDOOM_ENEMY_COUNT", "3")
	t.Setenv("NOTDOOM_WINDOW_TPS", "30")

	cfg, err := LoadFs(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Enemy.Count)
	assert.InDelta(t, 1.0/30, cfg.Settings().Timestep, 1e-12)
}

func TestValidate(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte(`
render:
  min_distance: 10
  max_distance: 5
`), 0o644))

	_, err := LoadFs(fs, "bad.yaml")
	assert.ErrorIs(t, err, ErrInvalid)

	cfg, err := LoadFs(fs, "")
	require.NoError(t, err)
	cfg.Minimap.Scale = 100
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	for name, mutate := range map[string]func(*Config){
		"zero fade step":           func(c *Config) { c.Enemy.FadeStep = 0 },
		"negative fade step":       func(c *Config) { c.Enemy.FadeStep = -0.1 },
		"negative damage cooldown": func(c *Config) { c.Enemy.DamageCooldown = -1 },
		"negative gun cooldown":    func(c *Config) { c.Gun.Cooldown = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadFs(fs, "")
			require.NoError(t, err)
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	require.NoError(t, afero.WriteFile(fs, "nofade.yaml", []byte(`
enemy:
  fade_step: 0
`), 0o644))
	_, err = LoadFs(fs, "nofade.yaml")
	assert.ErrorIs(t, err, ErrInvalid)
}
