package config

// StateID identifies an actor's animation state.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Run
	Jump
	Attack
	Attack2
	Hit
	Death

	// Projectile states
	Fly
	Explode
)

// Category decides what happens when a state's frame index reaches the end of its strip.
type Category int

const (
	// Looping states wrap back to the first frame.
	Looping Category = iota
	// OneShot states wrap, report completion once and hand control back to idle or jump.
	OneShot
	// Terminal states hold the last frame and report completion every tick.
	Terminal
)

// StateToFileName maps StateID to the sprite strip file name prefix.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Run:     "run",
	Jump:    "jump",
	Attack:  "attack",
	Attack2: "attack2",
	Hit:     "hit",
	Death:   "death",
	Fly:     "fly",
	Explode: "explode",
}

// AllStates lists every state in declaration order.
var AllStates = []StateID{Idle, Run, Jump, Attack, Attack2, Hit, Death, Fly, Explode}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// ParseState returns the StateID for a strip name.
func ParseState(name string) (StateID, bool) {
	for id, n := range StateToFileName {
		if n == name {
			return id, true
		}
	}
	return StateNone, false
}

// Category returns the wrap policy for the state.
func (s StateID) Category() Category {
	switch s {
	case Attack, Attack2, Hit, Explode:
		return OneShot
	case Death:
		return Terminal
	default:
		return Looping
	}
}

// IsAttack reports whether the state is one of the attack animations.
func (s StateID) IsAttack() bool {
	return s == Attack || s == Attack2
}
