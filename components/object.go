package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision box of an entity.
type ObjectData struct {
	*resolv.Object
}

// Follow moves and resizes the box onto an actor's current frame.
func (o *ObjectData) Follow(a *ActorData) {
	x, y, w, h := a.Bounds()
	o.X, o.Y = x, y
	if o.W != w || o.H != h {
		o.W, o.H = w, h
		o.SetShape(resolv.NewRectangle(0, 0, w, h))
	}
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
