package factory

import (
	"github.com/automoto/fitring-adventure/archetypes"
	"github.com/automoto/fitring-adventure/assets"
	"github.com/automoto/fitring-adventure/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCell is the resolv cell size. Collision boxes are far larger, so a
// box only ever spans a handful of cells.
const spaceCell = 20

// CreateSpace builds the collision space for a stage. It extends a full
// stage width past the right edge so actors spawned off screen are
// registered before they scroll in.
func CreateSpace(ecs *ecs.ECS, stage assets.Stage) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(stage.Width*2, stage.Height, spaceCell, spaceCell))
	return space
}
