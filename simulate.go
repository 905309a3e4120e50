package main

import (
	"fmt"
	"io"
	"os"

	"notdoom/config"
	"notdoom/model"
)

type simStats struct {
	ticks int
	seed  int64

	shots        int
	hits         int
	damageTaken  int
	deaths       int
	spawned      int
	removed      int
	reloads      int
	reloadErrors int

	firstHitTick    int
	firstDamageTick int
	firstDeathTick  int
}

// scriptedInput turns slowly, walks back and forth and holds the trigger.
func scriptedInput(tick int, gameOver bool) model.Input {
	return model.Input{
		PanLeft:  tick%3 == 0,
		Forward:  (tick/120)%2 == 0,
		Backward: (tick/120)%2 == 1,
		Fire:     true,
		Reset:    gameOver,
	}
}

func runSimulation(world *model.World, ticks int) simStats {
	stats := simStats{ticks: ticks}
	gameOver := false

	for i := 0; i < ticks; i++ {
		r := world.Update(scriptedInput(i, gameOver))

		if r.Shot != nil {
			stats.shots++
			if r.Shot.Hit {
				stats.hits++
				if stats.firstHitTick == 0 {
					stats.firstHitTick = r.Tick
				}
			}
		}
		if r.DamageTaken > 0 {
			stats.damageTaken += r.DamageTaken
			if stats.firstDamageTick == 0 {
				stats.firstDamageTick = r.Tick
			}
		}
		if r.GameOver && !gameOver {
			stats.deaths++
			if stats.firstDeathTick == 0 {
				stats.firstDeathTick = r.Tick
			}
		}
		gameOver = r.GameOver

		stats.spawned += r.Spawned
		stats.removed += r.Removed
		if r.Reloaded {
			stats.reloads++
		}
		if r.ReloadErr != nil {
			stats.reloadErrors++
		}
	}

	return stats
}

func tickOrNone(t int) string {
	if t == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", t)
}

func printReport(w io.Writer, stats simStats, world *model.World) {
	p := world.Player()

	fmt.Fprintf(w, "=== Simulation Report ===\n")
	fmt.Fprintf(w, "ticks=%d seed=%d walls=%d\n\n", stats.ticks, stats.seed, world.Level().Len())
	fmt.Fprintf(w, "shots=%d hits=%d first_hit=%s\n", stats.shots, stats.hits, tickOrNone(stats.firstHitTick))
	fmt.Fprintf(w, "damage=%d deaths=%d first_damage=%s first_death=%s\n",
		stats.damageTaken, stats.deaths, tickOrNone(stats.firstDamageTick), tickOrNone(stats.firstDeathTick))
	fmt.Fprintf(w, "enemies spawned=%d removed=%d live=%d\n", stats.spawned, stats.removed, world.LiveEnemies())
	fmt.Fprintf(w, "level reloads=%d failed=%d\n", stats.reloads, stats.reloadErrors)
	fmt.Fprintf(w, "player pos=(%.2f, %.2f, %.2f) health=%d state=%s\n",
		p.Position.X, p.Position.Y, p.Position.Z, p.Health, world.State())
}

func simulateCommand(cfg *config.Config, ticks int, seed int64) error {
	if ticks <= 0 {
		return fmt.Errorf("--ticks must be > 0, got %d", ticks)
	}

	world, err := newWorld(cfg, seed)
	if err != nil {
		return err
	}

	stats := runSimulation(world, ticks)
	stats.seed = seed
	printReport(os.Stdout, stats, world)
	return nil
}
