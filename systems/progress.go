package systems

import (
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/systems/factory"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelListener is told whenever the current level or its rules change.
// *encounter.Orchestrator satisfies it.
type LevelListener interface {
	SetLevel(level int, alternates bool)
}

// NewUpdateProgress returns the system that fills the progress meter while
// the player walks an empty stretch, spawns whatever the level rolls when it
// is full and moves on once the level's exit condition is met.
func NewUpdateProgress(rng components.Roller, levels LevelListener) ecs.System {
	return func(ecs *ecs.ECS) {
		progress, ok := getProgress(ecs)
		if !ok {
			return
		}
		_, player, ok := getPlayer(ecs)
		if !ok {
			return
		}

		table := cfg.Levels
		level := table.Level(progress.Level)
		if progress.Complete(level) {
			advanceLevel(ecs, progress, table, levels)
			return
		}

		if !progress.Fill(dt, player.IsMoving, stageClear(ecs)) {
			return
		}
		spawn := progress.NextSpawn(level, rng)
		spawnEvent(ecs, spawn)
	}
}

func advanceLevel(ecs *ecs.ECS, progress *components.ProgressData, table *cfg.LevelTable, levels LevelListener) {
	from := progress.Level
	progress.Advance(len(table.Levels))
	removeAll(ecs, tags.Coin)
	removeAll(ecs, tags.Obstacle)
	removeAll(ecs, tags.Projectile)
	if levels != nil {
		levels.SetLevel(progress.Level, table.Alternates(progress.Level))
	}
	log.Info().Int("from", from).Int("to", progress.Level).Msg("level complete")
}

func spawnEvent(ecs *ecs.ECS, spawn components.Spawn) {
	stage := getStage(ecs)
	switch spawn.Kind {
	case components.SpawnCoin:
		factory.CreateCoin(ecs, stage.CoinSpawn.X, stage.CoinSpawn.Y)
		log.Debug().Msg("coin spawned")
	case components.SpawnObstacle:
		factory.CreateObstacle(ecs, stage.ObstacleSpawn.X, stage.ObstacleSpawn.Y)
		log.Debug().Msg("obstacle spawned")
	case components.SpawnEnemy:
		if _, err := factory.CreateEnemy(ecs, stage.EnemySpawn.X, stage.EnemySpawn.Y, spawn.Enemy); err != nil {
			log.Warn().Err(err).Msg("enemy spawn skipped")
			return
		}
		log.Debug().Str("enemy", spawn.Enemy).Msg("enemy spawned")
	}
}

// stageClear reports whether nothing is on screen that the player has to deal with.
func stageClear(ecs *ecs.ECS) bool {
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Enemy, tags.Coin, tags.Obstacle} {
		if _, ok := tag.First(ecs.World); ok {
			return false
		}
	}
	return true
}
