package animations

import (
	"github.com/automoto/fitring-adventure/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one image of a strip. Width and Height are kept separately so
// logic and tests never need to touch the image.
type Frame struct {
	Image  *ebiten.Image
	Width  int
	Height int
}

// Strip is the ordered frames of one state.
type Strip []Frame

// Set maps every state an actor can show to its strip.
type Set map[config.StateID]Strip

// Placeholder is drawn when a set has nothing to show, not even idle.
var Placeholder = Frame{Width: 1, Height: 1}

// Strip returns the frames for state, falling back to idle and then to the placeholder.
func (s Set) Strip(state config.StateID) Strip {
	if strip := s[state]; len(strip) > 0 {
		return strip
	}
	if idle := s[config.Idle]; len(idle) > 0 {
		return idle
	}
	return Strip{Placeholder}
}

// Has reports whether the set holds frames of its own for state.
func (s Set) Has(state config.StateID) bool {
	return len(s[state]) > 0
}

// Missing lists the required states without frames, idle first when absent.
func (s Set) Missing(required ...config.StateID) []config.StateID {
	var missing []config.StateID
	if !s.Has(config.Idle) {
		missing = append(missing, config.Idle)
	}
	for _, state := range required {
		if state != config.Idle && !s.Has(state) {
			missing = append(missing, state)
		}
	}
	return missing
}

// Blank builds a set of imageless frames of size w x h covering every state
// of key's animation table. It stands in for sprites that were never loaded.
func Blank(key string, w, h int) Set {
	set := make(Set)
	for state, def := range config.CharacterAnimations[key] {
		strip := make(Strip, max(def.Frames, 1))
		for i := range strip {
			strip[i] = Frame{Width: w, Height: h}
		}
		set[state] = strip
	}
	return set
}

// Animation is the frame clock of a single state. The index is fractional and
// advances by Rate every Update; what happens at the end depends on Category.
type Animation struct {
	Frames   int
	Rate     float64
	Category config.Category
	index    float64
	held     bool
}

func NewAnimation(frames int, rate float64, category config.Category) *Animation {
	if frames < 1 {
		frames = 1
	}
	return &Animation{
		Frames:   frames,
		Rate:     rate,
		Category: category,
	}
}

// Update advances the clock and reports whether the strip reached its end.
// Looping and one-shot strips wrap to 0. Terminal strips hold the last frame
// and keep reporting the end on every call.
func (a *Animation) Update() bool {
	if a.held {
		return true
	}
	a.index += a.Rate
	if a.index < float64(a.Frames) {
		return false
	}
	switch a.Category {
	case config.Terminal:
		a.index = float64(a.Frames - 1)
		a.held = true
		return true
	case config.OneShot:
		a.index = 0
		return true
	default:
		a.index = 0
		return false
	}
}

// Frame returns the strip position to draw.
func (a *Animation) Frame() int {
	f := int(a.index)
	if f >= a.Frames {
		return a.Frames - 1
	}
	return f
}

// Index returns the fractional frame index.
func (a *Animation) Index() float64 {
	return a.index
}

func (a *Animation) Restart() {
	a.index = 0
	a.held = false
}
