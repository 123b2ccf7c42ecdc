package components

import (
	"testing"
	"time"

	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameSeconds = float32(1) / 60

func TestCoinApproachAndPickUp(t *testing.T) {
	p := newTestPlayer()
	c := NewCoin(animations.Blank("coin", 24, 24), Vector{X: p.Anchor.X + 35, Y: p.Anchor.Y})

	c.Update(p, frameSeconds)
	assert.Equal(t, p.Anchor.X+35, c.Anchor.X, "coin waits while the player stands")

	p.IsMoving = true
	for range 10 {
		c.Update(p, frameSeconds)
		if c.Arrived {
			break
		}
		p.IsMoving = true
	}
	require.True(t, c.Arrived)
	assert.True(t, p.CoinLock)
	assert.False(t, p.IsMoving)

	p.HandleInput(commands(cfg.ActionMoveRight))
	assert.False(t, p.IsMoving, "coin lock holds the player")

	assert.True(t, c.PickUp(p))
	assert.False(t, p.CoinLock)
	assert.False(t, c.PickUp(p))
}

func TestCoinBobs(t *testing.T) {
	p := newTestPlayer()
	c := NewCoin(animations.Blank("coin", 24, 24), Vector{X: 900, Y: 400})

	lowest := 0.0
	for range 30 {
		c.Update(p, frameSeconds)
		lowest = min(lowest, c.BobOffset)
	}
	assert.Less(t, lowest, 0.0)
	assert.GreaterOrEqual(t, lowest, -cfg.Coin.BobAmplitude-1e-3)
}

func TestObstacleBlocksUntilJump(t *testing.T) {
	p := newTestPlayer()
	o := NewObstacle(animations.Blank("obstacle", 40, 40), Vector{X: p.Anchor.X + cfg.Obstacle.StopOffset + 6, Y: p.Anchor.Y})

	assert.False(t, o.TryClear(p), "nothing to clear yet")

	for range 5 {
		p.IsMoving = true
		o.Update(p, frameSeconds)
	}
	require.Equal(t, ObstacleWait, o.Phase)
	assert.True(t, p.ObstacleLock)
	assert.False(t, p.IsMoving)

	p.HandleInput(commands(cfg.ActionJump))
	assert.True(t, p.Body.OnGround, "plain jump input is held by the lock")

	require.True(t, o.TryClear(p))
	assert.False(t, p.ObstacleLock)
	assert.False(t, p.Body.OnGround)
	assert.Equal(t, ObstaclePass, o.Phase)

	for range 60 {
		o.Update(p, frameSeconds)
	}
	assert.Equal(t, ObstacleTail, o.Phase)
	assert.InDelta(t, p.Anchor.X-cfg.Obstacle.PassMargin, o.Anchor.X, 1e-3)

	gone := false
	for range 1000 {
		p.IsMoving = true
		if o.Update(p, frameSeconds) {
			gone = true
			break
		}
	}
	assert.True(t, gone)
}

func TestObstacleNeedsGroundedJump(t *testing.T) {
	p := newTestPlayer()
	o := NewObstacle(nil, Vector{X: p.Anchor.X + cfg.Obstacle.StopOffset, Y: p.Anchor.Y})
	o.Update(p, frameSeconds)
	require.Equal(t, ObstacleWait, o.Phase)

	p.Body.OnGround = false
	assert.False(t, o.TryClear(p))
	assert.True(t, p.ObstacleLock)
	assert.Equal(t, ObstacleWait, o.Phase)
}

func TestProjectileLifetime(t *testing.T) {
	f := NewProjectile(animations.Blank("fireball", 24, 24), Vector{X: 800, Y: 400}, 5)
	assert.True(t, f.Flying())
	assert.Equal(t, cfg.Fly, f.State())

	step := 100 * time.Millisecond
	removed := false
	for range 200 {
		if f.Update(step) {
			removed = true
			break
		}
	}
	assert.True(t, removed)
	assert.False(t, f.Flying())
	assert.Less(t, f.Anchor.X, 800.0)
}

func TestProjectileExplodesOnce(t *testing.T) {
	f := NewProjectile(animations.Blank("fireball", 24, 24), Vector{X: 800, Y: 400}, 5)
	f.Explode()
	x := f.Anchor.X

	removals := 0
	for range 100 {
		if f.Update(time.Second / 60) {
			removals++
		}
	}
	assert.Equal(t, 1, removals)
	assert.Equal(t, x, f.Anchor.X, "an exploding fireball stays put")
}

func TestInputCommands(t *testing.T) {
	var in InputData
	in.Current[cfg.ActionMoveRight] = true
	in.Current[cfg.ActionJump] = true
	in.Current[cfg.ActionPrimaryAttack] = true
	in.Previous[cfg.ActionMoveRight] = true
	in.Previous[cfg.ActionPrimaryAttack] = true
	in.Serial.Add(cfg.ActionPickUp)

	cmds := in.Commands()
	assert.True(t, cmds.Has(cfg.ActionMoveRight), "movement counts while held")
	assert.True(t, cmds.Has(cfg.ActionJump), "fresh press")
	assert.False(t, cmds.Has(cfg.ActionPrimaryAttack), "held attack is not repeated")
	assert.True(t, cmds.Has(cfg.ActionPickUp), "serial press")
	assert.False(t, cmds.Has(cfg.ActionCount))
}

func TestImpulse(t *testing.T) {
	imp := ImpulseData{Step: 140 * time.Millisecond, Max: 300 * time.Millisecond}
	assert.False(t, imp.Consume(time.Millisecond))

	imp.Kick()
	imp.Kick()
	imp.Kick()
	assert.Equal(t, 300*time.Millisecond, imp.Remaining)

	moved := 0
	for imp.Consume(100 * time.Millisecond) {
		moved++
	}
	assert.Equal(t, 3, moved)
}
