package encounter

import (
	"time"

	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/rs/zerolog"
)

// Phase is where the current encounter stands.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseApproaching
	PhaseChallenging
	PhaseResolving
	PhaseSequencePlaying
	PhaseEnded
)

var phaseNames = map[Phase]string{
	PhaseIdle:            "idle",
	PhaseApproaching:     "approaching",
	PhaseChallenging:     "challenging",
	PhaseResolving:       "resolving",
	PhaseSequencePlaying: "sequence_playing",
	PhaseEnded:           "ended",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Key is the attack button a challenge counts.
type Key int

const (
	KeyPrimary Key = iota
	KeySecondary
)

func (k Key) String() string {
	if k == KeySecondary {
		return "secondary"
	}
	return "primary"
}

func (k Key) toggle() Key {
	if k == KeyPrimary {
		return KeySecondary
	}
	return KeyPrimary
}

// Report is what happened during one Update.
type Report struct {
	Outcome   components.Outcome
	Resolved  bool // a challenge was resolved
	Completed bool // a sequence finished
	Killed    bool // the enemy's death played out and it can be removed
	Orphaned  bool // a sequence lost its enemy and was dropped
}

// Orchestrator owns the encounter with the active enemy. It counts the
// challenge down, resolves it exactly once, plays the reaction sequence and
// recomputes the player's combat locks at the end of every tick.
type Orchestrator struct {
	log zerolog.Logger

	phase    Phase
	enemyID  uint64
	hasEnemy bool

	seq     *Sequence
	killing bool // the running sequence ends in the enemy's death
	pending bool // a fresh challenge starts on the next opportunity

	level      int
	alternates bool
	expected   Key

	resolutions int
	completions int
}

func New(log zerolog.Logger) *Orchestrator {
	return &Orchestrator{log: log, level: 1}
}

// SetLevel tells the orchestrator the current level and whether it
// alternates the expected key. A level change resets the key to primary.
func (o *Orchestrator) SetLevel(level int, alternates bool) {
	if level != o.level {
		o.expected = KeyPrimary
	}
	o.level = level
	o.alternates = alternates
	if !alternates {
		o.expected = KeyPrimary
	}
}

func (o *Orchestrator) Level() int {
	return o.level
}

func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// ExpectedKey returns the button the next challenge counts.
func (o *Orchestrator) ExpectedKey() Key {
	return o.expected
}

// Accepts reports whether an attack action counts toward the challenge.
func (o *Orchestrator) Accepts(action cfg.ActionID) bool {
	switch action {
	case cfg.ActionPrimaryAttack:
		return o.expected == KeyPrimary
	case cfg.ActionSecondaryAttack:
		return o.expected == KeySecondary
	}
	return false
}

// Sequence returns the running sequence, or nil.
func (o *Orchestrator) Sequence() *Sequence {
	return o.seq
}

// Resolutions counts resolved challenges.
func (o *Orchestrator) Resolutions() int {
	return o.resolutions
}

// Completions counts finished sequences.
func (o *Orchestrator) Completions() int {
	return o.completions
}

// Update advances the encounter by one tick. e is the active enemy, or nil
// when there is none.
func (o *Orchestrator) Update(dt time.Duration, p *components.PlayerData, e *components.EnemyData) Report {
	var r Report
	if p == nil {
		return r
	}
	o.track(p, e, &r)

	if o.seq != nil && o.seq.Update() {
		o.finish(p, &r)
	} else if o.pending && e != nil && o.seq == nil {
		o.reopen(p, e)
	}

	if e != nil && o.seq == nil && o.phase != PhaseEnded {
		if _, active := e.Challenge(); active {
			// the window opened during this tick, so its first countdown is the next one
			opened := o.phase != PhaseChallenging
			if opened {
				o.phase = PhaseChallenging
				o.log.Debug().Str("enemy", e.Kind).Stringer("key", o.expected).Msg("challenge started")
			}
			if !opened && e.CountDown(dt) {
				o.resolve(p, e, &r)
			}
		} else if e.Approaching() {
			o.phase = PhaseApproaching
		}
	}

	o.lock(p, e)
	return r
}

// reopen starts the challenge scheduled by the last completed sequence.
func (o *Orchestrator) reopen(p *components.PlayerData, e *components.EnemyData) {
	switch {
	case e.Dead:
		o.pending = false
	case p.Dead:
		// held until the player is revived
	default:
		o.pending = false
		if _, active := e.Challenge(); !active {
			e.StartChallenge(p)
		}
	}
}

// track notices a new or vanished enemy. Any sequence still bound to the
// old one is dropped and the player is freed.
func (o *Orchestrator) track(p *components.PlayerData, e *components.EnemyData, r *Report) {
	present := e != nil
	if present == o.hasEnemy && (!present || e.ID == o.enemyID) {
		return
	}

	if o.seq != nil {
		r.Orphaned = true
		o.log.Debug().Int("step", o.seq.Index()).Msg("sequence orphaned")
		o.seq = nil
	}
	if o.hasEnemy {
		p.ReleaseLocks()
	}
	o.killing = false
	o.pending = false
	o.hasEnemy = present
	o.enemyID = 0
	o.phase = PhaseIdle
	if present {
		o.enemyID = e.ID
		o.phase = PhaseApproaching
		o.log.Debug().Str("enemy", e.Kind).Uint64("id", e.ID).Msg("enemy engaged")
	}
}

func (o *Orchestrator) resolve(p *components.PlayerData, e *components.EnemyData, r *Report) {
	o.phase = PhaseResolving
	p.SetChallengeLock(false)
	outcome := e.ResolveChallenge(p)
	o.resolutions++
	r.Resolved = true
	r.Outcome = outcome

	var steps []Step
	if outcome == components.PlayerWin {
		attack := cfg.Attack
		if o.expected == KeySecondary {
			attack = cfg.Attack2
		}
		if o.alternates {
			o.expected = o.expected.toggle()
		}
		o.killing = e.Health.Damage(1)

		finisher := Step{Kind: StepEnemyHit, Performer: e, Cue: components.Cue{Kind: components.CueHit, State: cfg.Hit}}
		if o.killing {
			finisher = Step{Kind: StepEnemyDeath, Performer: e, Cue: components.Cue{Kind: components.CueDeath, State: cfg.Death}}
		}
		steps = []Step{
			{Kind: StepPlayerAttack, Performer: p, Cue: components.Cue{Kind: components.CueAttack, State: attack}},
			finisher,
		}
	} else {
		o.killing = false
		steps = []Step{
			{Kind: StepEnemyAttack, Performer: e, Cue: components.Cue{Kind: components.CueAttack, State: cfg.Attack}},
			{Kind: StepPlayerHit, Performer: p, Cue: components.Cue{Kind: components.CueHit, State: cfg.Hit, Damage: e.Damage}},
		}
	}

	o.seq = NewSequence(steps...)
	o.phase = PhaseSequencePlaying
	o.log.Debug().
		Stringer("outcome", outcome).
		Int("enemy_hp", e.Health.Current).
		Stringer("next_key", o.expected).
		Msg("challenge resolved")
}

func (o *Orchestrator) finish(p *components.PlayerData, r *Report) {
	o.completions++
	o.seq = nil
	r.Completed = true
	if o.killing {
		o.killing = false
		o.phase = PhaseEnded
		r.Killed = true
		p.ReleaseLocks()
		o.log.Debug().Msg("enemy defeated")
		return
	}
	o.pending = true
	o.phase = PhaseApproaching
}

// lock derives the player's combat locks from the encounter state.
func (o *Orchestrator) lock(p *components.PlayerData, e *components.EnemyData) {
	var challenging, approaching bool
	if e != nil {
		_, challenging = e.Challenge()
		approaching = e.Approaching()
	}
	active := o.seq != nil
	inCombat := e != nil && (active || challenging || approaching || o.pending)

	p.SetFullLock(inCombat)
	p.SetChallengeLock(inCombat && challenging)
	if active || (o.pending && p.Dead) {
		// keeps Think from reopening the window between beats
		e.Locked = true
	}
	if !inCombat {
		p.ReleaseStaleLock()
	}
}
