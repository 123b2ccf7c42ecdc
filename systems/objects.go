package systems

import (
	"github.com/automoto/fitring-adventure/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects fits every collision box to its actor's current frame.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if a := actorOf(e); a != nil {
			components.Object.Get(e).Follow(a)
		}
	})
}

// actorOf returns the animated actor embedded in an entity, if it has one.
func actorOf(e *donburi.Entry) *components.ActorData {
	switch {
	case e.HasComponent(components.Player):
		return &components.Player.Get(e).ActorData
	case e.HasComponent(components.Enemy):
		return &components.Enemy.Get(e).ActorData
	case e.HasComponent(components.Coin):
		return &components.Coin.Get(e).ActorData
	case e.HasComponent(components.Obstacle):
		return &components.Obstacle.Get(e).ActorData
	case e.HasComponent(components.Projectile):
		return &components.Projectile.Get(e).ActorData
	}
	return nil
}
