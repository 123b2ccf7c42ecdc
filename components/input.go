package components

import (
	"time"

	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/yohamta/donburi"
)

// InputSource records where the most recent input came from.
type InputSource int

const (
	InputKeyboard InputSource = iota
	InputSerial
)

func (s InputSource) String() string {
	if s == InputSerial {
		return "controller"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// ActionSet is the set of abstract commands active on one tick.
type ActionSet [cfg.ActionCount]bool

// Has reports whether the action is in the set.
func (s ActionSet) Has(id cfg.ActionID) bool {
	if id < 0 || id >= cfg.ActionCount {
		return false
	}
	return s[id]
}

// Add puts the action into the set.
func (s *ActionSet) Add(id cfg.ActionID) {
	if id > cfg.ActionNone && id < cfg.ActionCount {
		s[id] = true
	}
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// Serial commands arrive as discrete presses and land in Serial for one tick.
type InputData struct {
	Current    ActionSet // Current frame's keyboard Pressed state
	Previous   ActionSet // Previous frame's keyboard Pressed state
	Serial     ActionSet // Serial commands received this tick
	LastSource InputSource

	// Impulse is the remaining serial movement time; each step command extends it.
	Impulse ImpulseData
}

// Commands folds held movement and fresh presses into the set the player consumes.
func (in *InputData) Commands() ActionSet {
	var cmds ActionSet
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		held := in.Current[id]
		fresh := held && !in.Previous[id]
		if (id == cfg.ActionMoveRight && held) || fresh || in.Serial[id] {
			cmds[id] = true
		}
	}
	return cmds
}

// ImpulseData is the serial movement reservoir. Each step command adds Step,
// capped at Max, and the player walks while any time remains.
type ImpulseData struct {
	Remaining time.Duration
	Step      time.Duration
	Max       time.Duration
}

// Kick extends the impulse by one step.
func (i *ImpulseData) Kick() {
	i.Remaining = min(i.Remaining+i.Step, i.Max)
}

// Consume spends dt of the impulse and reports whether the player should move.
func (i *ImpulseData) Consume(dt time.Duration) bool {
	if i.Remaining <= 0 {
		return false
	}
	i.Remaining = max(i.Remaining-dt, 0)
	return true
}

var Input = donburi.NewComponentType[InputData]()
