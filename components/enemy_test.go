package components

import (
	"testing"
	"time"

	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnemy(kind string, x float64) *EnemyData {
	e := NewEnemy(cfg.Enemy.Types[kind], animations.Blank(kind, 150, 150), Vector{X: x, Y: cfg.C.GroundY})
	return &e
}

func TestEnemyApproach(t *testing.T) {
	p := newTestPlayer()
	e := newTestEnemy("goblin", p.Anchor.X+cfg.Enemy.StopOffset+5)
	assert.True(t, e.Approaching())

	e.Think(p, time.Millisecond)
	assert.Equal(t, cfg.Run, e.State())
	assert.Less(t, e.Anchor.X, p.Anchor.X+cfg.Enemy.StopOffset+5)

	for range 10 {
		e.Think(p, time.Millisecond)
	}
	_, active := e.Challenge()
	assert.True(t, active)
	assert.Equal(t, cfg.Idle, e.State())
	assert.Equal(t, p.Anchor.X+cfg.Enemy.StopOffset, e.Anchor.X)
	assert.False(t, e.Approaching())
}

func TestEnemyThinkLeavesPlayerLocks(t *testing.T) {
	p := newTestPlayer()
	e := newTestEnemy("goblin", p.Anchor.X+cfg.Enemy.StopOffset)

	e.Think(p, time.Millisecond)
	_, active := e.Challenge()
	require.True(t, active)
	assert.False(t, p.FullLock)
	assert.False(t, p.ChallengeLock)
}

func TestEnemyIdleWhenLockedOrDead(t *testing.T) {
	p := newTestPlayer()
	e := newTestEnemy("goblin", 900)

	e.Locked = true
	e.Think(p, time.Millisecond)
	assert.Equal(t, 900.0, e.Anchor.X)

	e.Locked = false
	e.Die()
	e.Think(p, time.Millisecond)
	assert.Equal(t, 900.0, e.Anchor.X)
}

func TestResolveChallenge(t *testing.T) {
	tests := []struct {
		baseline int
		presses  int
		required int
		want     Outcome
	}{
		{baseline: 0, presses: 3, required: 3, want: PlayerWin},
		{baseline: 0, presses: 2, required: 3, want: EnemyWin},
		{baseline: 4, presses: 3, required: 3, want: PlayerWin},
		{baseline: 4, presses: 2, required: 3, want: EnemyWin},
		{baseline: 0, presses: 5, required: 6, want: EnemyWin},
		{baseline: 0, presses: 9, required: 6, want: PlayerWin},
	}
	for _, tt := range tests {
		p := newTestPlayer()
		e := newTestEnemy("goblin", 500)
		e.RequiredDelta = tt.required

		p.AttackCount = tt.baseline
		e.StartChallenge(p)
		assert.Equal(t, tt.baseline, e.Baseline)
		p.AttackCount += tt.presses

		assert.Equal(t, tt.want, e.ResolveChallenge(p))
		assert.Zero(t, p.AttackCount)
		_, active := e.Challenge()
		assert.False(t, active)
	}
}

func TestChallengeCountDown(t *testing.T) {
	p := newTestPlayer()
	e := newTestEnemy("goblin", 500)
	assert.False(t, e.CountDown(time.Second), "no window, nothing to count")

	e.StartChallenge(p)
	assert.False(t, e.CountDown(4*time.Second))
	left, active := e.Challenge()
	assert.True(t, active)
	assert.Equal(t, time.Second, left)
	assert.True(t, e.CountDown(time.Second))
}

func TestBossRequiredDelta(t *testing.T) {
	assert.Equal(t, 3, newTestEnemy("mushroom", 0).RequiredDelta)
	assert.Equal(t, 6, newTestEnemy("gorgon", 0).RequiredDelta)
	assert.Equal(t, 7, newTestEnemy("fireworm", 0).RequiredDelta)

	typ := cfg.Enemy.Types["goblin"]
	typ.RequiredDelta = 0
	e := NewEnemy(typ, nil, Vector{})
	assert.Equal(t, cfg.Enemy.RequiredDelta, e.RequiredDelta)
}

func TestRangedEnemyFires(t *testing.T) {
	p := newTestPlayer()
	e := newTestEnemy("fireworm", p.Anchor.X+cfg.Enemy.StopOffset)
	e.Think(p, 0)

	var shots int
	for range 5 * 60 {
		if e.Think(p, time.Second/60) {
			shots++
		}
	}
	// first shot after the delay, then one per period
	assert.Equal(t, 2, shots)

	melee := newTestEnemy("goblin", p.Anchor.X+cfg.Enemy.StopOffset)
	melee.Think(p, 0)
	for range 5 * 60 {
		assert.False(t, melee.Think(p, time.Second/60))
	}
}

func TestEnemyPerform(t *testing.T) {
	e := newTestEnemy("goblin", 500)

	hit := Cue{Kind: CueHit, State: cfg.Hit}
	e.Perform(hit)
	assert.True(t, e.Locked)
	assert.Equal(t, cfg.Hit, e.State())

	finished := false
	for range 100 {
		e.Animate(true)
		if e.Completed(hit) {
			finished = true
			break
		}
	}
	assert.True(t, finished)
	assert.False(t, e.Locked)

	death := Cue{Kind: CueDeath, State: cfg.Death}
	e.Perform(death)
	assert.True(t, e.Dead)
	for range 100 {
		e.Animate(true)
		if e.Completed(death) {
			break
		}
	}
	assert.True(t, e.Completed(death))
	assert.Equal(t, cfg.Death, e.State())
}
