package components

import (
	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ObstaclePhase is where an obstacle is in its pass-by.
type ObstaclePhase int

const (
	ObstacleApproach ObstaclePhase = iota // scrolls in while the player walks
	ObstacleWait                          // blocks the player until they jump
	ObstaclePass                          // slides behind the jumping player
	ObstacleTail                          // scrolls off screen
)

type ObstacleData struct {
	ActorData
	Phase ObstaclePhase

	StopOffset    float64
	ApproachSpeed float64
	ExitSpeed     float64
	PassMargin    float64
	PassDuration  float32

	pass *gween.Tween
}

func NewObstacle(frames animations.Set, anchor Vector) ObstacleData {
	return ObstacleData{
		ActorData:     NewActor("obstacle", frames, cfg.AnimationRates("obstacle"), anchor),
		StopOffset:    cfg.Obstacle.StopOffset,
		ApproachSpeed: cfg.Obstacle.ApproachSpeed,
		ExitSpeed:     cfg.Obstacle.ExitSpeed,
		PassMargin:    cfg.Obstacle.PassMargin,
		PassDuration:  cfg.Obstacle.PassDuration,
	}
}

// Update moves the obstacle for one tick and reports whether it has left the screen.
func (o *ObstacleData) Update(p *PlayerData, dt float32) bool {
	switch o.Phase {
	case ObstacleApproach:
		target := p.Anchor.X + o.StopOffset
		if o.Anchor.X > target {
			if p.IsMoving {
				o.Anchor.X = max(o.Anchor.X-o.ApproachSpeed, target)
			}
			return false
		}
		o.startWait(p)
	case ObstacleWait:
	case ObstaclePass:
		x, done := o.pass.Update(dt)
		o.Anchor.X = float64(x)
		if done {
			o.Phase = ObstacleTail
		}
	case ObstacleTail:
		if p.IsMoving {
			o.Anchor.X -= o.ExitSpeed
		}
		x, _, w, _ := o.Bounds()
		return x+w < 0
	}
	return false
}

// TryClear lets a waiting obstacle be jumped. It reports whether the jump cleared it.
func (o *ObstacleData) TryClear(p *PlayerData) bool {
	if o.Phase != ObstacleWait || !p.ObstacleLock {
		return false
	}
	p.ObstacleLock = false
	if !p.Jump() {
		p.ObstacleLock = true
		return false
	}
	o.Phase = ObstaclePass
	o.pass = gween.New(float32(o.Anchor.X), float32(p.Anchor.X-o.PassMargin), o.PassDuration, ease.OutQuad)
	return true
}

func (o *ObstacleData) startWait(p *PlayerData) {
	o.Phase = ObstacleWait
	p.ObstacleLock = true
	p.IsMoving = false
	if p.Body.OnGround && !p.Locked {
		p.SetState(cfg.Idle)
	}
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
