package factory

import (
	"github.com/automoto/fitring-adventure/archetypes"
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin spawns a coin whose bottom edge sits at y.
func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	size := int(cfg.Coin.Size)
	frames := GenerateFrames("coin", "coin", size, size)
	components.Coin.SetValue(coin, components.NewCoin(frames, components.Vector{X: x, Y: y}))

	c := components.Coin.Get(coin)
	attachObject(coin, &c.ActorData, tags.ResolvCoin)
	return coin
}

// CreateObstacle spawns a ground obstacle at x on the ground line y.
func CreateObstacle(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	frames := GenerateFrames("obstacle", "obstacle", int(cfg.Obstacle.Width), int(cfg.Obstacle.Height))
	components.Obstacle.SetValue(obstacle, components.NewObstacle(frames, components.Vector{X: x, Y: y}))

	o := components.Obstacle.Get(obstacle)
	attachObject(obstacle, &o.ActorData, tags.ResolvObstacle)
	return obstacle
}

// CreateProjectile spawns a fireball flying left from (x, y).
func CreateProjectile(ecs *ecs.ECS, x, y float64, damage int) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	size := int(cfg.Projectile.Size)
	frames := GenerateFrames("fireball", "projectile", size, size)
	components.Projectile.SetValue(projectile, components.NewProjectile(frames, components.Vector{X: x, Y: y}, damage))

	p := components.Projectile.Get(projectile)
	attachObject(projectile, &p.ActorData, tags.ResolvProjectile)
	return projectile
}
