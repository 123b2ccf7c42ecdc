package systems

import (
	"github.com/automoto/fitring-adventure/components"
	"github.com/automoto/fitring-adventure/systems/factory"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies walks enemies in, opens their challenge on arrival, fires
// ranged attacks and advances their animation.
func UpdateEnemies(ecs *ecs.ECS) {
	_, player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	stage := getStage(ecs)

	type shot struct {
		x, y   float64
		damage int
	}
	var shots []shot
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Think(player, dt) {
			x, _, _, _ := enemy.Bounds()
			shots = append(shots, shot{x: x, y: enemy.Anchor.Y + stage.ProjectileOffset, damage: enemy.ProjectileDamage})
			log.Debug().Str("enemy", enemy.Kind).Msg("fireball")
		}
		enemy.Animate(true)
	})

	// Spawn after iterating so the enemy query is not modified mid-walk.
	for _, s := range shots {
		factory.CreateProjectile(ecs, s.x, s.y, s.damage)
	}
}
