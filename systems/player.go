package systems

import (
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// KeyFilter decides whether an attack action counts toward a running
// challenge. *encounter.Orchestrator satisfies it.
type KeyFilter interface {
	Accepts(action cfg.ActionID) bool
}

var attackActions = []struct {
	action cfg.ActionID
	state  cfg.StateID
}{
	{cfg.ActionPrimaryAttack, cfg.Attack},
	{cfg.ActionSecondaryAttack, cfg.Attack2},
}

// NewUpdatePlayer returns the system that feeds the tick's commands to the
// player, then applies gravity and advances its animation.
func NewUpdatePlayer(keys KeyFilter) ecs.System {
	return func(ecs *ecs.ECS) {
		_, player, ok := getPlayer(ecs)
		if !ok {
			return
		}
		input := getOrCreateInput(ecs)
		stage := getStage(ecs)
		cmds := input.Commands()

		player.Tick(dt)
		player.ExternalMove = input.Impulse.Consume(dt)

		if cmds.Has(cfg.ActionRevive) && player.Dead {
			player.Revive()
			player.Health.Restore()
			log.Info().Int("hp", player.Health.Current).Msg("player revived")
		}

		player.HandleInput(cmds)
		DispatchAttacks(player, cmds, keys)
		player.ApplyGravity(stage.GroundY)
		player.Animate(player.Body.OnGround)
	}
}

// DispatchAttacks hands attack presses to the player. While a challenge runs
// only the expected key is counted.
func DispatchAttacks(p *components.PlayerData, cmds components.ActionSet, keys KeyFilter) {
	for _, a := range attackActions {
		if !cmds.Has(a.action) {
			continue
		}
		if p.ChallengeLock && keys != nil && !keys.Accepts(a.action) {
			continue
		}
		p.StartAttack(a.state)
	}
}
