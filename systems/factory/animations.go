package factory

import (
	"github.com/automoto/fitring-adventure/assets"
	"github.com/automoto/fitring-adventure/assets/animations"
	"github.com/automoto/fitring-adventure/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// sprites is where every actor's frames come from. Without a sprite
// directory actors are drawn as blank frames of their configured size.
var sprites = assets.NewSpriteLoader(nil)

// UseSprites replaces the sprite loader used by the factories.
func UseSprites(l *assets.SpriteLoader) {
	sprites = l
}

// GenerateFrames loads the animation set for a character key, e.g. "wizard"
// or "goblin". kind picks the required states checked by the loader.
func GenerateFrames(key, kind string, frameWidth, frameHeight int) animations.Set {
	return sprites.Set(key, kind, frameWidth, frameHeight)
}

// attachObject gives an entry a collision box matching the actor's current
// frame and adds it to the world's space.
func attachObject(entry *donburi.Entry, a *components.ActorData, tag string) *resolv.Object {
	x, y, w, h := a.Bounds()
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	obj.AddTags(tag)
	obj.Data = entry
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	if spaceEntry, ok := components.Space.First(entry.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
