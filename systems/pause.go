package systems

import (
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on Esc and follows the controller's PAUSE and
// RESUME lines. This system should run AFTER UpdateInput but BEFORE other
// game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	was := pause.IsPaused
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.By = components.InputKeyboard
	}
	if input.Serial.Has(cfg.ActionPause) {
		pause.IsPaused = true
		pause.By = components.InputSerial
	}
	if input.Serial.Has(cfg.ActionResume) {
		pause.IsPaused = false
		pause.By = components.InputSerial
	}
	if pause.IsPaused != was {
		log.Info().Bool("paused", pause.IsPaused).Str("by", pause.By.String()).Msg("pause toggled")
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFace := fonts.Title.Get()
	titleWidth := text.BoundString(titleFace, cfg.Pause.Title).Dx()
	text.Draw(screen, cfg.Pause.Title, titleFace, int(width-float64(titleWidth))/2, int(height/2), cfg.Pause.TextColor)

	hint := cfg.Pause.KeyboardHint
	if pause.By == components.InputSerial {
		hint = cfg.Pause.ControllerHint
	}
	hintFace := fonts.Small.Get()
	hintWidth := text.BoundString(hintFace, hint).Dx()
	text.Draw(screen, hint, hintFace, int(width-float64(hintWidth))/2, int(height)-12, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
