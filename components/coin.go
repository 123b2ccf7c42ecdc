package components

import (
	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type CoinData struct {
	ActorData
	Arrived bool
	Speed   float64

	// BobOffset is added to the drawn height; bob drives it up and down.
	BobOffset float64
	bob       *gween.Sequence
}

func NewCoin(frames animations.Set, anchor Vector) CoinData {
	amp := float32(cfg.Coin.BobAmplitude)
	dur := cfg.Coin.BobDuration
	return CoinData{
		ActorData: NewActor("coin", frames, cfg.AnimationRates("coin"), anchor),
		Speed:     cfg.Coin.ApproachSpeed,
		bob: gween.NewSequence(
			gween.New(0, -amp, dur, ease.InOutSine),
			gween.New(-amp, 0, dur, ease.InOutSine),
		),
	}
}

// Update scrolls the coin toward the player while they walk and bobs it.
// Once it reaches the player it imposes the coin lock until picked up.
func (c *CoinData) Update(p *PlayerData, dt float32) {
	if c.bob != nil {
		v, _, complete := c.bob.Update(dt)
		c.BobOffset = float64(v)
		if complete {
			c.bob.Reset()
		}
	}
	if c.Arrived {
		return
	}
	if c.Anchor.X > p.Anchor.X {
		if p.IsMoving {
			c.Anchor.X = max(c.Anchor.X-c.Speed, p.Anchor.X)
		}
		return
	}
	c.Arrived = true
	p.CoinLock = true
	p.IsMoving = false
	if !p.Locked {
		p.SetState(cfg.Idle)
	}
}

// PickUp collects an arrived coin and releases the coin lock.
func (c *CoinData) PickUp(p *PlayerData) bool {
	if !c.Arrived || !p.CoinLock {
		return false
	}
	p.CoinLock = false
	return true
}

var Coin = donburi.NewComponentType[CoinData]()
