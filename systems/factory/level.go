package factory

import (
	"github.com/automoto/fitring-adventure/archetypes"
	"github.com/automoto/fitring-adventure/assets"
	"github.com/automoto/fitring-adventure/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage stores the loaded stage as the world's singleton.
func CreateStage(ecs *ecs.ECS, stage assets.Stage) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(entry, stage)
	return entry
}

// CreateProgress starts the level counters at level.
func CreateProgress(ecs *ecs.ECS, level int) *donburi.Entry {
	entry := archetypes.Progress.Spawn(ecs)
	components.Progress.SetValue(entry, components.ProgressData{Level: max(level, 1)})
	return entry
}
