package systems

import (
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateLevels swaps in level tables reloaded from disk. Tables arrive
// from the watcher goroutine and are only ever applied here, between
// gameplay systems.
func NewUpdateLevels(tables <-chan *cfg.LevelTable, errs <-chan error, levels LevelListener) ecs.System {
	return func(ecs *ecs.ECS) {
		select {
		case err := <-errs:
			log.Warn().Err(err).Msg("level table reload failed, keeping the current table")
		default:
		}

		var table *cfg.LevelTable
		select {
		case table = <-tables:
		default:
			return
		}

		cfg.Levels = table
		current := 1
		if progress, ok := getProgress(ecs); ok {
			progress.Level = min(progress.Level, len(table.Levels))
			current = progress.Level
		}
		if levels != nil {
			levels.SetLevel(current, table.Alternates(current))
		}
		log.Info().Int("levels", len(table.Levels)).Int("alternate_from", table.AlternateFrom).Msg("level table reloaded")
	}
}
