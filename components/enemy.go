package components

import (
	"time"

	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	ActorData
	ID     uint64 // unique per spawn
	Kind   string // "goblin", "gorgon" etc...
	Boss   bool
	Health HealthData

	Speed         float64
	StopOffset    float64 // stand-off distance in front of the player
	Damage        int
	RequiredDelta int

	// Challenge window. ChallengeLeft is counted down by the encounter, not here.
	ChallengeTotal  time.Duration
	ChallengeLeft   time.Duration
	ChallengeActive bool
	Baseline        int

	// Ranged enemies fire while a challenge is running.
	FirePeriod       time.Duration
	FireDelay        time.Duration
	ProjectileDamage int
	fireCooldown     time.Duration
}

// NewEnemy creates an enemy of the given type running in from anchor.
func NewEnemy(t cfg.EnemyTypeConfig, frames animations.Set, anchor Vector) EnemyData {
	required := t.RequiredDelta
	if required <= 0 {
		required = cfg.Enemy.RequiredDelta
	}
	e := EnemyData{
		ActorData:        NewActor(t.Name, frames, cfg.AnimationRates(t.Name), anchor),
		Kind:             t.Name,
		Boss:             t.Boss,
		Health:           HealthData{Current: t.Health, Max: t.Health},
		Speed:            t.Speed,
		StopOffset:       cfg.Enemy.StopOffset,
		Damage:           t.Damage,
		RequiredDelta:    required,
		ChallengeTotal:   cfg.Enemy.Challenge,
		FirePeriod:       t.FirePeriod,
		FireDelay:        t.FireDelay,
		ProjectileDamage: t.ProjectileDamage,
	}
	e.SetState(cfg.Run)
	return e
}

// Think walks toward the stand-off point and starts the challenge on arrival.
// It reports whether a ranged enemy should fire this tick. Player locks are
// never touched here.
func (e *EnemyData) Think(p *PlayerData, dt time.Duration) bool {
	if e.Dead || e.Locked {
		return false
	}
	if e.ChallengeActive {
		e.SetState(cfg.Idle)
		return e.fireTick(dt)
	}

	target := p.Anchor.X + e.StopOffset
	if e.Anchor.X > target {
		e.Anchor.X = max(e.Anchor.X-e.Speed, target)
		e.SetState(cfg.Run)
		return false
	}
	e.StartChallenge(p)
	return false
}

// StartChallenge opens the challenge window against the player's current count.
func (e *EnemyData) StartChallenge(p *PlayerData) {
	e.Baseline = p.AttackCount
	e.ChallengeLeft = e.ChallengeTotal
	e.ChallengeActive = true
	e.fireCooldown = e.FireDelay
	e.Locked = false
	e.SetState(cfg.Idle)
}

// Challenge returns the time left in the window, if one is open.
func (e *EnemyData) Challenge() (time.Duration, bool) {
	return e.ChallengeLeft, e.ChallengeActive
}

// CountDown spends dt of the open window and reports whether it has run out.
func (e *EnemyData) CountDown(dt time.Duration) bool {
	if !e.ChallengeActive {
		return false
	}
	e.ChallengeLeft -= dt
	return e.ChallengeLeft <= 0
}

// ResolveChallenge closes the window and compares the hits landed against
// RequiredDelta. The player's count is reset either way.
func (e *EnemyData) ResolveChallenge(p *PlayerData) Outcome {
	delta := p.AttackCount - e.Baseline
	p.AttackCount = 0
	e.Baseline = 0
	e.ChallengeLeft = 0
	e.ChallengeActive = false
	if delta >= e.RequiredDelta {
		return PlayerWin
	}
	return EnemyWin
}

// Approaching reports whether the enemy is still walking in.
func (e *EnemyData) Approaching() bool {
	return !e.Dead && !e.ChallengeActive && e.State() == cfg.Run
}

// Perform plays a scripted beat.
func (e *EnemyData) Perform(cue Cue) {
	switch cue.Kind {
	case CueAttack:
		e.Locked = true
		e.SetState(cfg.Attack)
	case CueHit:
		e.Locked = true
		e.SetState(cfg.Hit)
	case CueDeath:
		e.Die()
	}
}

// Completed reports whether the beat has played out.
func (e *EnemyData) Completed(cue Cue) bool {
	if e.Dead && cue.Kind != CueDeath {
		return true
	}
	switch cue.Kind {
	case CueAttack:
		return e.JustFinished() == cfg.Attack
	case CueHit:
		return e.JustFinished() == cfg.Hit
	case CueDeath:
		return e.JustFinished() == cfg.Death
	}
	return true
}

func (e *EnemyData) fireTick(dt time.Duration) bool {
	if e.FirePeriod <= 0 {
		return false
	}
	e.fireCooldown -= dt
	if e.fireCooldown > 0 {
		return false
	}
	e.fireCooldown = e.FirePeriod
	return true
}

var Enemy = donburi.NewComponentType[EnemyData]()
