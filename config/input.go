package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveRight
	ActionJump
	ActionPrimaryAttack
	ActionSecondaryAttack
	ActionPickUp
	ActionRevive
	ActionPause
	ActionResume
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionNone:            "none",
	ActionMoveRight:       "move",
	ActionJump:            "jump",
	ActionPrimaryAttack:   "primary",
	ActionSecondaryAttack: "secondary",
	ActionPickUp:          "pickup",
	ActionRevive:          "revive",
	ActionPause:           "pause",
	ActionResume:          "resume",
	ActionDebug:           "debug",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
			},
			ActionPrimaryAttack: {
				Keys: []ebiten.Key{ebiten.KeyJ},
			},
			// ActionSecondaryAttack is bound per class, see BindClass.
			ActionPickUp: {
				Keys: []ebiten.Key{ebiten.KeyI},
			},
			ActionRevive: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
	BindClass(Classes["wizard"])
}

// BindClass points the secondary attack at the class's key.
func BindClass(class ClassConfig) {
	Input.Bindings[ActionSecondaryAttack] = InputBinding{
		Keys: []ebiten.Key{class.SecondaryKey},
	}
}
