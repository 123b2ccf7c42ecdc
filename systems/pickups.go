package systems

import (
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins scrolls coins toward the player and collects an arrived coin
// on PickUp.
func UpdateCoins(ecs *ecs.ECS) {
	_, player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	cmds := getOrCreateInput(ecs).Commands()

	var collected []*donburi.Entry
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		coin.Update(player, float32(dt.Seconds()))
		coin.Animate(true)
		if cmds.Has(cfg.ActionPickUp) && coin.PickUp(player) {
			collected = append(collected, e)
		}
	})

	for _, e := range collected {
		removeEntry(ecs, e)
		if progress, ok := getProgress(ecs); ok {
			progress.RecordCoin()
			log.Info().Int("coins", progress.Coins).Msg("coin collected")
		}
	}
}

// UpdateObstacles blocks the player at each obstacle until they jump it.
func UpdateObstacles(ecs *ecs.ECS) {
	_, player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	cmds := getOrCreateInput(ecs).Commands()

	var gone []*donburi.Entry
	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		obstacle := components.Obstacle.Get(e)
		if cmds.Has(cfg.ActionJump) && obstacle.TryClear(player) {
			log.Debug().Msg("obstacle cleared")
		}
		if obstacle.Update(player, float32(dt.Seconds())) {
			gone = append(gone, e)
		}
	})

	for _, e := range gone {
		removeEntry(ecs, e)
	}
}

// UpdateProjectiles flies fireballs, hits the player on contact and removes
// them once their explosion has played.
func UpdateProjectiles(ecs *ecs.ECS) {
	_, player, ok := getPlayer(ecs)
	if !ok {
		return
	}

	var done []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		if projectile.Flying() {
			obj := components.Object.Get(e)
			if check := obj.Check(0, 0, tags.ResolvPlayer); check != nil {
				if player.StartHit(projectile.Damage) {
					log.Debug().Int("hp", player.Health.Current).Msg("fireball hit")
				}
				projectile.Explode()
			}
		}
		if projectile.Update(dt) {
			done = append(done, e)
		}
	})

	for _, e := range done {
		removeEntry(ecs, e)
	}
}
