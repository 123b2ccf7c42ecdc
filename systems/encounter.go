package systems

import (
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/encounter"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateEncounter runs the orchestrator once per tick against the player
// and the enemy on screen. An enemy whose death has played out is removed and
// counted as a kill.
func NewUpdateEncounter(orch *encounter.Orchestrator) ecs.System {
	return func(ecs *ecs.ECS) {
		_, player, ok := getPlayer(ecs)
		if !ok {
			return
		}
		enemyEntry, enemy, _ := getEnemy(ecs)

		report := orch.Update(dt, player, enemy)
		if report.Resolved {
			log.Info().Stringer("outcome", report.Outcome).Int("hp", player.Health.Current).Msg("challenge resolved")
		}
		if !report.Killed || enemyEntry == nil {
			return
		}

		kind := enemy.Kind
		removeEntry(ecs, enemyEntry)
		if progress, ok := getProgress(ecs); ok {
			progress.RecordKill(cfg.Levels.Level(progress.Level))
			log.Info().Str("enemy", kind).Int("kills", progress.Kills).Msg("enemy defeated")
		}
	}
}

// Compile-time check that the player and enemy can be scripted.
var (
	_ encounter.Performer = (*components.PlayerData)(nil)
	_ encounter.Performer = (*components.EnemyData)(nil)
)
