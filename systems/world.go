package systems

import (
	"time"

	"github.com/automoto/fitring-adventure/assets"
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// dt is the fixed simulated time of one tick.
const dt = time.Second / ebiten.DefaultTPS

func getPlayer(ecs *ecs.ECS) (*donburi.Entry, *components.PlayerData, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Player.Get(entry), true
}

// getEnemy returns the enemy on screen. Progress spawns at most one at a time.
func getEnemy(ecs *ecs.ECS) (*donburi.Entry, *components.EnemyData, bool) {
	entry, ok := tags.Enemy.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Enemy.Get(entry), true
}

// getStage returns the stage singleton, or the default layout on the
// configured ground line when none was loaded.
func getStage(ecs *ecs.ECS) *assets.Stage {
	if entry, ok := components.Stage.First(ecs.World); ok {
		return components.Stage.Get(entry)
	}
	stage := assets.DefaultStage(cfg.C.GroundY)
	return &stage
}

func getProgress(ecs *ecs.ECS) (*components.ProgressData, bool) {
	entry, ok := components.Progress.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Progress.Get(entry), true
}

// removeEntry drops an entity and its collision box.
func removeEntry(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}

// removeAll drops every entity carrying tag.
func removeAll(ecs *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	var doomed []*donburi.Entry
	tag.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		removeEntry(ecs, e)
	}
}
