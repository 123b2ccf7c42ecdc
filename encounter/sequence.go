// Package encounter runs the approach, challenge and scripted reaction loop
// between the player and the active enemy.
package encounter

import "github.com/automoto/fitring-adventure/components"

// Performer is an actor that can be cued by a sequence.
type Performer interface {
	// Perform starts the beat. It is called once per step.
	Perform(cue components.Cue)
	// Completed reports whether the beat finished on this tick.
	Completed(cue components.Cue) bool
}

// StepKind names a scripted beat.
type StepKind int

const (
	StepPlayerAttack StepKind = iota
	StepEnemyHit
	StepEnemyDeath
	StepEnemyAttack
	StepPlayerHit
)

var stepNames = map[StepKind]string{
	StepPlayerAttack: "player_attack",
	StepEnemyHit:     "enemy_hit",
	StepEnemyDeath:   "enemy_death",
	StepEnemyAttack:  "enemy_attack",
	StepPlayerHit:    "player_hit",
}

func (k StepKind) String() string {
	if name, ok := stepNames[k]; ok {
		return name
	}
	return "unknown"
}

// Step binds a beat to the actor that plays it.
type Step struct {
	Kind      StepKind
	Performer Performer
	Cue       components.Cue
}

// Sequence plays its steps one at a time. A step is started once and the
// sequence only moves on when that step's performer reports completion.
type Sequence struct {
	steps   []Step
	index   int
	started bool
	done    bool
}

func NewSequence(steps ...Step) *Sequence {
	return &Sequence{steps: steps, done: len(steps) == 0}
}

// Update drives the current step for one tick. It returns true exactly once,
// on the tick the last step completes.
func (s *Sequence) Update() bool {
	if s.done {
		return false
	}
	step := s.steps[s.index]
	if !s.started {
		step.Performer.Perform(step.Cue)
		s.started = true
	}
	if !step.Performer.Completed(step.Cue) {
		return false
	}

	s.index++
	s.started = false
	if s.index < len(s.steps) {
		return false
	}
	s.done = true
	return true
}

// Current returns the step being played.
func (s *Sequence) Current() (Step, bool) {
	if s.done {
		return Step{}, false
	}
	return s.steps[s.index], true
}

// Started reports whether the current step has been issued.
func (s *Sequence) Started() bool {
	return s.started
}

// Index returns the position of the current step.
func (s *Sequence) Index() int {
	return s.index
}

func (s *Sequence) Done() bool {
	return s.done
}

// Kinds lists the step kinds in order.
func (s *Sequence) Kinds() []StepKind {
	kinds := make([]StepKind, len(s.steps))
	for i, step := range s.steps {
		kinds[i] = step.Kind
	}
	return kinds
}
