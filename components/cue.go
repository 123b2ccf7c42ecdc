package components

import cfg "github.com/automoto/fitring-adventure/config"

// CueKind is a scripted beat an actor can be told to play.
type CueKind int

const (
	CueAttack CueKind = iota
	CueHit
	CueDeath
)

func (k CueKind) String() string {
	switch k {
	case CueAttack:
		return "attack"
	case CueHit:
		return "hit"
	case CueDeath:
		return "death"
	}
	return "unknown"
}

// Cue is one command issued to an actor by a scripted sequence.
type Cue struct {
	Kind   CueKind
	State  cfg.StateID // attack animation to play, CueAttack only
	Damage int         // damage to apply, CueHit on the player only
}

// Outcome is the result of a resolved challenge.
type Outcome int

const (
	NoOutcome Outcome = iota
	PlayerWin
	EnemyWin
)

func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "player_win"
	case EnemyWin:
		return "enemy_win"
	}
	return "none"
}
