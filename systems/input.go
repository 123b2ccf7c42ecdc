package systems

import (
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/serial"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// CommandSource is anything that hands over queued controller commands
// without blocking. *serial.Controller satisfies it.
type CommandSource interface {
	DrainCommands() []serial.Command
}

// NewUpdateInput polls the keyboard and drains the controller into the
// InputData singleton. src may be nil when no controller is attached.
// Must run BEFORE UpdatePlayer in the system order.
func NewUpdateInput(src CommandSource) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = components.ActionSet{}
		input.Serial = components.ActionSet{}

		keyboardUsed := false
		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
					keyboardUsed = true
				}
			}
		}
		if keyboardUsed {
			input.LastSource = components.InputKeyboard
		}

		if GetAction(input, cfg.ActionDebug).JustPressed {
			cfg.Debug.Enabled = !cfg.Debug.Enabled
		}

		if src == nil {
			return
		}
		cmds := src.DrainCommands()
		if len(cmds) == 0 {
			return
		}
		class := cfg.Classes[playerClass(ecs)]
		actions, steps := SerialActions(cmds, class)
		input.Serial = actions
		for range steps {
			input.Impulse.Kick()
		}
		input.LastSource = components.InputSerial
		log.Debug().Int("commands", len(cmds)).Msg("controller input")
	}
}

// SerialActions maps controller commands onto actions for the given class
// and counts the movement steps. A secondary attack byte only counts when it
// belongs to the class.
func SerialActions(cmds []serial.Command, class cfg.ClassConfig) (components.ActionSet, int) {
	var actions components.ActionSet
	steps := 0
	for _, cmd := range cmds {
		switch cmd {
		case serial.CmdPrimary:
			actions.Add(cfg.ActionPrimaryAttack)
		case serial.CmdSecondaryM:
			if class.SecondaryByte == 'M' {
				actions.Add(cfg.ActionSecondaryAttack)
			}
		case serial.CmdSecondaryP:
			if class.SecondaryByte == 'P' {
				actions.Add(cfg.ActionSecondaryAttack)
			}
		case serial.CmdJump:
			actions.Add(cfg.ActionJump)
		case serial.CmdStep:
			steps++
		case serial.CmdPickUp:
			actions.Add(cfg.ActionPickUp)
		case serial.CmdPause:
			actions.Add(cfg.ActionPause)
		case serial.CmdResume:
			actions.Add(cfg.ActionResume)
		}
	}
	return actions, steps
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{
			Impulse: components.ImpulseData{
				Step: cfg.Player.ImpulseStep,
				Max:  cfg.Player.ImpulseMax,
			},
		})
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for a keyboard action.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func playerClass(ecs *ecs.ECS) string {
	if entry, ok := tags.Player.First(ecs.World); ok {
		return components.Player.Get(entry).Class
	}
	return "wizard"
}
