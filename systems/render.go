package systems

import (
	"image/color"

	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawStage renders the tiled backdrop, or a flat ground line when the
// stage has no rendered layers.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
	stage := getStage(ecs)
	if stage.Background != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		screen.DrawImage(stage.Background, drawOp)
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(stage.GroundY), float32(w), float32(float64(h)-stage.GroundY), cfg.UI.GroundColor, false)
}

// DrawActors renders every animated actor, back to front.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		drawActor(screen, &components.Obstacle.Get(e).ActorData, 0, cfg.UI.ObstacleColor)
	})
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		drawActor(screen, &coin.ActorData, coin.BobOffset, cfg.UI.CoinColor)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		fill := cfg.UI.EnemyColor
		if enemy.Boss {
			fill = cfg.UI.BossColor
		}
		drawActor(screen, &enemy.ActorData, 0, fill)
	})
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		drawActor(screen, &components.Projectile.Get(e).ActorData, 0, cfg.UI.ProjectileColor)
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		drawActor(screen, &player.ActorData, 0, cfg.UI.PlayerColor)
	})
}

// drawActor draws the current frame with its bottom-centre on the anchor.
// Frames without an image are drawn as a filled box of the frame's size.
func drawActor(screen *ebiten.Image, a *components.ActorData, dy float64, fill color.RGBA) {
	x, y, w, h := a.Bounds()
	y += dy
	frame := a.Frame()
	if frame.Image == nil {
		if a.Dead {
			fill = color.RGBA{R: fill.R / 3, G: fill.G / 3, B: fill.B / 3, A: fill.A / 3}
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(frame.Image, drawOp)
}
