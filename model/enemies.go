package model

import (
	"github.com/harbdog/raycaster-go/geom"
	"github.com/rs/zerolog/log"
)

// spawnEnemies tops the live enemy count back up to the target, placing new
// enemies uniformly inside the spawn square around the origin.
func (w *World) spawnEnemies() int {
	r := w.settings.EnemySpawnRadius
	spawned := 0
	for w.LiveEnemies() < w.settings.EnemyCount {
		pos := Vector3{
			X: w.rng.Float64()*2*r - r,
			Y: w.settings.FloorHeight,
			Z: w.rng.Float64()*2*r - r,
		}
		w.AddEnemy(pos)
		spawned++
	}
	return spawned
}

// CanSeePlayer reports whether nothing in the level blocks the straight line
// between the enemy and the player.
func (w *World) CanSeePlayer(e *Enemy) bool {
	sight := NewSegment(w.player.Position.XZ(), e.Position.XZ())
	return !AnyIntersects(sight, w.level.Segments())
}

func (w *World) updateEnemies(report *Report) {
	s := w.settings
	report.Spawned = w.spawnEnemies()

	for i := range w.enemies {
		e := &w.enemies[i]

		if !e.Dead && w.CanSeePlayer(e) {
			// pursuit stays on the ground plane
			toPlayer := w.player.Position.Sub(e.Position)
			toPlayer.Y = 0
			if toPlayer.Length() > s.EnemyReach {
				e.Position = e.Position.Add(toPlayer.Normalize().Scale(s.EnemySpeed * s.Timestep))
			} else if w.clock.Damage.Trigger(s.DamageCooldown) {
				w.player.TakeDamage(1, s.PlayerHealth)
				report.DamageTaken++
				log.Debug().Str("enemy", e.ID.String()).Int("health", w.player.Health).Msg("player damaged")
			}
		}

		if e.Dead {
			e.Transparency = geom.Clamp(e.Transparency+s.EnemyFadeStep, 0, 1)
		}
	}

	report.Removed = w.removeFaded()
}

// removeFaded drops enemies whose fade-out has finished. Indices are collected
// first so the slice is never edited while it is being walked.
func (w *World) removeFaded() int {
	var faded []int
	for i := range w.enemies {
		if w.enemies[i].Faded() {
			faded = append(faded, i)
		}
	}
	if len(faded) == 0 {
		return 0
	}

	kept := make([]Enemy, 0, len(w.enemies)-len(faded))
	next := 0
	for i := range w.enemies {
		if next < len(faded) && faded[next] == i {
			next++
			log.Debug().Str("enemy", w.enemies[i].ID.String()).Msg("enemy removed")
			continue
		}
		kept = append(kept, w.enemies[i])
	}
	w.enemies = kept
	return len(faded)
}
