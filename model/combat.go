package model

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ShotResult describes one hit-scan shot.
type ShotResult struct {
	Hit     bool
	EnemyID uuid.UUID
	// Distance is how far the shot travelled before it was stopped by a wall,
	// an enemy, or its range.
	Distance float64
	Blocked  bool
}

// fire casts the gun ray along the view direction. The nearest wall caps the
// range, then the nearest live enemy inside that range is killed.
func (w *World) fire(basis CameraBasis) ShotResult {
	origin := w.player.Position.XZ()
	ray := NewSegment(origin, w.player.Position.Add(basis.View.Scale(w.settings.GunRange)).XZ())

	closest := w.settings.GunRange
	result := ShotResult{}
	for _, wall := range w.level.Segments() {
		p, ok := ray.IntersectPoint(wall)
		if !ok {
			continue
		}
		if d := distance2(p, origin); d < closest {
			closest = d
			result.Blocked = true
		}
	}

	target := -1
	for i := range w.enemies {
		e := &w.enemies[i]
		if e.Dead {
			continue
		}
		p, ok := ray.IntersectPoint(e.WidthSegment(basis.Right))
		if !ok {
			continue
		}
		if d := distance2(p, origin); d < closest {
			closest = d
			target = i
		}
	}

	result.Distance = closest
	if target >= 0 {
		e := &w.enemies[target]
		e.Dead = true
		result.Hit = true
		result.Blocked = false
		result.EnemyID = e.ID
		log.Debug().Str("enemy", e.ID.String()).Float64("distance", closest).Msg("enemy shot")
	}

	return result
}
