package components

import (
	"github.com/automoto/fitring-adventure/assets"
	"github.com/yohamta/donburi"
)

// Stage is the loaded backdrop and spawn layout, one per world.
var Stage = donburi.NewComponentType[assets.Stage]()
