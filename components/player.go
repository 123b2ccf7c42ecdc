package components

import (
	"time"

	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/yohamta/donburi"
)

// PlayerData is the player controller. Three layers of locks decide which
// inputs are honoured: FullLock stops movement and jumping, ChallengeLock turns
// attack presses into counted hits, and the action locks (Locked, CoinLock,
// ObstacleLock) pause the player while something else owns the moment.
type PlayerData struct {
	ActorData
	Class  string
	Body   BodyData
	Health HealthData

	FullLock      bool
	ChallengeLock bool
	CoinLock      bool
	ObstacleLock  bool

	AttackCount int
	IsMoving    bool

	// ExternalMove is set by the serial impulse for the current tick.
	ExternalMove bool

	Invulnerable   time.Duration // remaining invulnerability
	InvulnDuration time.Duration
	JumpPower      float64
}

// NewPlayer creates a grounded, idle player of the given class.
func NewPlayer(class string, frames animations.Set, anchor Vector) PlayerData {
	return PlayerData{
		ActorData: NewActor(class, frames, cfg.AnimationRates(class), anchor),
		Class:     class,
		Body: BodyData{
			OnGround: true,
			Gravity:  cfg.Player.Gravity,
		},
		Health:         HealthData{Current: cfg.Player.Health, Max: cfg.Player.Health},
		InvulnDuration: cfg.Player.Invulnerable,
		JumpPower:      cfg.Player.JumpPower,
	}
}

// Tick counts down the invulnerability window.
func (p *PlayerData) Tick(dt time.Duration) {
	if p.Invulnerable > 0 {
		p.Invulnerable = max(p.Invulnerable-dt, 0)
	}
}

// HandleInput applies movement and jump commands. Nothing happens while any
// lock is held or the player is dead.
func (p *PlayerData) HandleInput(cmds ActionSet) {
	if p.FullLock || p.Locked || p.Dead || p.CoinLock || p.ObstacleLock {
		p.IsMoving = false
		return
	}

	p.IsMoving = cmds.Has(cfg.ActionMoveRight) || p.ExternalMove
	if cmds.Has(cfg.ActionJump) && p.Jump() {
		return
	}
	if !p.Body.OnGround || p.State().Category() == cfg.OneShot {
		return
	}
	if p.IsMoving {
		p.SetState(cfg.Run)
	} else {
		p.SetState(cfg.Idle)
	}
}

// Jump launches the player if grounded.
func (p *PlayerData) Jump() bool {
	if !p.Body.OnGround || p.Dead {
		return false
	}
	p.Body.VelY = -p.JumpPower
	p.Body.OnGround = false
	p.SetState(cfg.Jump)
	return true
}

// StartAttack handles an attack press from the input source. During a
// challenge the press is counted instead of animated. A dead player's
// presses are ignored.
func (p *PlayerData) StartAttack(state cfg.StateID) {
	if p.Dead {
		return
	}
	if p.ChallengeLock {
		p.AttackCount++
		return
	}
	if p.FullLock {
		return
	}
	p.PlayNamedAttack(state, false)
}

// PlayNamedAttack plays an attack animation, falling back to Attack when the
// set has no frames for state. ignoreLocked lets a scripted sequence override
// a stale lock.
func (p *PlayerData) PlayNamedAttack(state cfg.StateID, ignoreLocked bool) {
	if p.Dead {
		return
	}
	if p.ChallengeLock {
		p.AttackCount++
		return
	}
	if p.Locked && !ignoreLocked {
		return
	}
	if !state.IsAttack() || !p.Frames.Has(state) {
		state = cfg.Attack
	}
	p.Locked = true
	p.SetState(state)
}

// StartHit applies damage unless the player is still invulnerable. It
// reports whether the hit landed.
func (p *PlayerData) StartHit(damage int) bool {
	if p.Dead || p.Invulnerable > 0 {
		return false
	}
	if p.Health.Damage(damage) {
		p.IsMoving = false
		p.Die()
		return true
	}
	p.Locked = true
	p.Invulnerable = p.InvulnDuration
	p.SetState(cfg.Hit)
	return true
}

// Revive brings a dead player back to idle. Hit points are left to the caller.
func (p *PlayerData) Revive() {
	p.Dead = false
	p.Locked = false
	p.Body.VelY = 0
	p.Body.OnGround = true
	p.Invulnerable = 0
	p.justFinished = cfg.StateNone
	p.SetState(cfg.Idle)
}

// ApplyGravity integrates the fall and returns to idle on landing.
func (p *PlayerData) ApplyGravity(groundY float64) {
	if p.Body.Fall(&p.Anchor.Y, groundY) && !p.Locked && !p.Dead {
		p.SetState(cfg.Idle)
	}
}

// SetFullLock engages or releases the full lock. Engaging it stops all
// movement at once.
func (p *PlayerData) SetFullLock(active bool) {
	p.FullLock = active
	if !active {
		return
	}
	p.IsMoving = false
	p.ExternalMove = false
	if p.Body.OnGround && !p.Locked && !p.Dead {
		p.SetState(cfg.Idle)
	}
}

func (p *PlayerData) SetChallengeLock(active bool) {
	p.ChallengeLock = active
}

// ReleaseLocks drops every combat lock. Used when an encounter is abandoned.
func (p *PlayerData) ReleaseLocks() {
	p.FullLock = false
	p.ChallengeLock = false
	if !p.Dead {
		p.Locked = false
	}
}

// ReleaseStaleLock clears Locked when no one-shot animation is holding it.
func (p *PlayerData) ReleaseStaleLock() {
	if p.Locked && !p.Dead && p.State().Category() != cfg.OneShot {
		p.Locked = false
	}
}

// Perform plays a scripted beat.
func (p *PlayerData) Perform(cue Cue) {
	switch cue.Kind {
	case CueAttack:
		p.PlayNamedAttack(cue.State, true)
	case CueHit:
		p.StartHit(cue.Damage)
	case CueDeath:
		p.Die()
	}
}

// Completed reports whether the beat has played out. A dead player cannot
// perform, so every beat but death counts as done.
func (p *PlayerData) Completed(cue Cue) bool {
	if p.Dead && cue.Kind != CueDeath {
		return true
	}
	switch cue.Kind {
	case CueAttack:
		return p.JustFinished().IsAttack()
	case CueHit:
		// A hit swallowed by invulnerability never enters the hit state.
		return p.JustFinished() == cfg.Hit || p.State() != cfg.Hit
	case CueDeath:
		return p.JustFinished() == cfg.Death
	}
	return true
}

var Player = donburi.NewComponentType[PlayerData]()
