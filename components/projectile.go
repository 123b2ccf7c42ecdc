package components

import (
	"time"

	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/yohamta/donburi"
)

// ProjectileData is a fireball: it flies left until it hits the player or
// runs out of time, then plays its explosion once.
type ProjectileData struct {
	ActorData
	Speed    float64
	Damage   int
	Lifetime time.Duration
}

func NewProjectile(frames animations.Set, anchor Vector, damage int) ProjectileData {
	p := ProjectileData{
		ActorData: NewActor("fireball", frames, cfg.AnimationRates("fireball"), anchor),
		Speed:     cfg.Projectile.Speed,
		Damage:    damage,
		Lifetime:  cfg.Projectile.Lifetime,
	}
	p.SetState(cfg.Fly)
	return p
}

// Flying reports whether the fireball can still hit something.
func (p *ProjectileData) Flying() bool {
	return p.State() == cfg.Fly
}

// Update moves a flying fireball and reports whether it is finished and can be removed.
func (p *ProjectileData) Update(dt time.Duration) bool {
	if p.Flying() {
		p.Anchor.X -= p.Speed
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			p.Explode()
		}
	}
	p.Animate(true)
	return p.JustFinished() == cfg.Explode
}

// Explode stops the fireball and starts its explosion.
func (p *ProjectileData) Explode() {
	if p.Flying() {
		p.SetState(cfg.Explode)
	}
}

var Projectile = donburi.NewComponentType[ProjectileData]()
