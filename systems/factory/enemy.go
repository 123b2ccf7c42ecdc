package factory

import (
	"fmt"

	"github.com/automoto/fitring-adventure/archetypes"
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// nextEnemyID numbers spawns so the encounter can tell a replacement enemy
// from the one it was fighting.
var nextEnemyID uint64

// CreateEnemy spawns an enemy of the given type at x on the ground line y.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyType string) (*donburi.Entry, error) {
	t, ok := cfg.Enemy.Types[enemyType]
	if !ok {
		return nil, fmt.Errorf("factory: unknown enemy type %q", enemyType)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	frames := GenerateFrames(t.Name, "enemy", t.FrameWidth, t.FrameHeight)
	data := components.NewEnemy(t, frames, components.Vector{X: x, Y: y})
	nextEnemyID++
	data.ID = nextEnemyID
	components.Enemy.SetValue(enemy, data)

	e := components.Enemy.Get(enemy)
	attachObject(enemy, &e.ActorData, tags.ResolvEnemy)
	return enemy, nil
}
