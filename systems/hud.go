package systems

import (
	"fmt"

	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/serial"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/automoto/fitring-adventure/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LinkStatus reports the controller link. *serial.Controller satisfies it.
type LinkStatus interface {
	State() serial.ControllerState
}

// NewUpdateHUD returns the system that refreshes the HUD panel. link may be
// nil when playing on the keyboard only.
func NewUpdateHUD(hud *ui.HUD, link LinkStatus) ecs.System {
	return func(ecs *ecs.ECS) {
		hud.Set(HUDState(ecs, link))
		hud.Update()
	}
}

// NewDrawHUD draws the HUD panel.
func NewDrawHUD(hud *ui.HUD) ecs.Renderer {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		hud.Draw(screen)
	}
}

// HUDState collects what the panel shows from the world.
func HUDState(ecs *ecs.ECS, link LinkStatus) ui.HUDState {
	var s ui.HUDState
	if progress, ok := getProgress(ecs); ok {
		level := cfg.Levels.Level(progress.Level)
		s.Level = progress.Level
		s.Coins = progress.Coins
		s.CoinsToPass = level.CoinsToPass
		s.Kills = progress.Kills
		s.KillTarget = level.KillTarget
		s.TotalKills = progress.TotalKills
	}
	if _, p, ok := getPlayer(ecs); ok {
		s.HP, s.MaxHP = p.Health.Current, p.Health.Max
		s.Dead = p.Dead
	}
	if _, e, ok := getEnemy(ecs); ok {
		s.Enemy = e.Kind
		s.EnemyHP, s.EnemyMax = e.Health.Current, e.Health.Max
	}
	if link != nil {
		s.Controller = fmt.Sprintf("controller %s", link.State())
	} else {
		s.Controller = "keyboard"
	}
	return s
}

// DrawHealthBars renders a bar above the player and every enemy.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		drawHealthBar(screen, &p.ActorData, p.Health)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		drawHealthBar(screen, &enemy.ActorData, enemy.Health)
	})
}

func drawHealthBar(screen *ebiten.Image, a *components.ActorData, hp components.HealthData) {
	if a.Dead {
		return
	}
	x, y, w, _ := a.Bounds()
	barW := min(w, cfg.UI.HealthBarWidth)
	barX := x + (w-barW)/2
	barY := y - cfg.UI.HealthBarHeight - 4

	// Background
	vector.FillRect(screen, float32(barX), float32(barY), float32(barW), float32(cfg.UI.HealthBarHeight), cfg.UI.PanelColor, false)
	// Current HP
	vector.FillRect(screen, float32(barX), float32(barY), float32(barW*hp.Ratio()), float32(cfg.UI.HealthBarHeight), cfg.Green, false)
}
