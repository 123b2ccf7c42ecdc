package archetypes

import (
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Progress = newArchetype(
		components.Progress,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
