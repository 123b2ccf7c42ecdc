package components

import (
	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
)

// ActorData is the animation state machine shared by every visual actor.
// Anchor is the bottom-centre of the drawn frame, so swapping to a frame of a
// different size never moves the actor's ground contact point.
type ActorData struct {
	Key    string // animation table key, e.g. "wizard" or "goblin"
	Frames animations.Set
	Rates  map[cfg.StateID]float64
	Anchor Vector
	Locked bool
	Dead   bool

	state        cfg.StateID
	anim         *animations.Animation
	justFinished cfg.StateID
}

// NewActor builds an actor standing in idle at anchor.
func NewActor(key string, frames animations.Set, rates map[cfg.StateID]float64, anchor Vector) ActorData {
	a := ActorData{
		Key:          key,
		Frames:       frames,
		Rates:        rates,
		Anchor:       anchor,
		state:        cfg.StateNone,
		justFinished: cfg.StateNone,
	}
	a.SetState(cfg.Idle)
	return a
}

// State returns the current state.
func (a *ActorData) State() cfg.StateID {
	return a.state
}

// SetState switches state, restarting the frame clock only on an actual change.
// A dead actor only accepts Death.
func (a *ActorData) SetState(state cfg.StateID) {
	if a.Dead && state != cfg.Death {
		return
	}
	if state == a.state && a.anim != nil {
		return
	}
	a.state = state
	a.anim = animations.NewAnimation(len(a.Frames.Strip(state)), a.rate(state), state.Category())
}

// Animate advances the frame clock by one tick. A finished one-shot releases
// the lock and hands over to idle, or jump when airborne.
func (a *ActorData) Animate(grounded bool) {
	a.justFinished = cfg.StateNone
	if a.anim == nil {
		a.SetState(cfg.Idle)
	}
	if !a.anim.Update() {
		return
	}

	finished := a.state
	a.justFinished = finished
	if finished.Category() != cfg.OneShot {
		return
	}
	a.Locked = false
	if grounded {
		a.SetState(cfg.Idle)
	} else {
		a.SetState(cfg.Jump)
	}
}

// JustFinished returns the state whose strip ended this tick, or StateNone.
func (a *ActorData) JustFinished() cfg.StateID {
	return a.justFinished
}

// Die locks the actor into its terminal death animation.
func (a *ActorData) Die() {
	a.Locked = true
	a.SetState(cfg.Death)
	a.Dead = true
}

// FrameIndex returns the fractional index into the current strip.
func (a *ActorData) FrameIndex() float64 {
	if a.anim == nil {
		return 0
	}
	return a.anim.Index()
}

// Frame returns the frame to draw this tick.
func (a *ActorData) Frame() animations.Frame {
	strip := a.Frames.Strip(a.state)
	if a.anim == nil {
		return strip[0]
	}
	i := a.anim.Frame()
	if i >= len(strip) {
		i = len(strip) - 1
	}
	return strip[i]
}

// Bounds returns the top-left corner and size of the current frame.
func (a *ActorData) Bounds() (x, y, w, h float64) {
	f := a.Frame()
	w, h = float64(f.Width), float64(f.Height)
	return a.Anchor.X - w/2, a.Anchor.Y - h, w, h
}

func (a *ActorData) rate(state cfg.StateID) float64 {
	if r, ok := a.Rates[state]; ok {
		return r
	}
	return cfg.DefaultAnimationRate
}
