package factory

import (
	"github.com/automoto/fitring-adventure/archetypes"
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player of the given class standing at x on the
// ground line y.
func CreatePlayer(ecs *ecs.ECS, class string, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	frames := GenerateFrames(class, "player", cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	components.Player.SetValue(player, components.NewPlayer(class, frames, components.Vector{X: x, Y: y}))

	p := components.Player.Get(player)
	attachObject(player, &p.ActorData, tags.ResolvPlayer)
	return player
}
