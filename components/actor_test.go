package components

import (
	"testing"

	"github.com/automoto/fitring-adventure/assets/animations"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/stretchr/testify/assert"
)

func TestActorMissingFramesFallBack(t *testing.T) {
	frames := animations.Set{
		cfg.Idle: {{Width: 40, Height: 60}, {Width: 40, Height: 60}},
	}
	a := NewActor("goblin", frames, nil, Vector{X: 100, Y: 400})

	a.SetState(cfg.Attack)
	assert.Equal(t, cfg.Attack, a.State())
	assert.Equal(t, 40, a.Frame().Width)

	empty := NewActor("goblin", nil, nil, Vector{X: 100, Y: 400})
	empty.SetState(cfg.Run)
	for range 50 {
		empty.Animate(true)
	}
	assert.Equal(t, animations.Placeholder, empty.Frame())
}

func TestActorAnchorIsBottomCentre(t *testing.T) {
	frames := animations.Set{
		cfg.Idle:   {{Width: 40, Height: 60}},
		cfg.Attack: {{Width: 100, Height: 80}},
	}
	a := NewActor("goblin", frames, nil, Vector{X: 100, Y: 400})

	x, y, w, h := a.Bounds()
	assert.Equal(t, []float64{80, 340, 40, 60}, []float64{x, y, w, h})

	a.SetState(cfg.Attack)
	x, y, w, h = a.Bounds()
	assert.Equal(t, []float64{50, 320, 100, 80}, []float64{x, y, w, h})
	assert.Equal(t, 400.0, y+h)
}

func TestActorSameStateKeepsClock(t *testing.T) {
	a := NewActor("wizard", animations.Blank("wizard", 10, 10), cfg.AnimationRates("wizard"), Vector{})
	a.SetState(cfg.Run)
	for range 10 {
		a.Animate(true)
	}
	before := a.FrameIndex()
	assert.Greater(t, before, 0.0)

	a.SetState(cfg.Run)
	assert.Equal(t, before, a.FrameIndex())

	a.SetState(cfg.Idle)
	assert.Zero(t, a.FrameIndex())
}

func TestOneShotReturnsToJumpInAir(t *testing.T) {
	a := NewActor("wizard", animations.Blank("wizard", 10, 10), cfg.AnimationRates("wizard"), Vector{})
	a.Locked = true
	a.SetState(cfg.Attack)
	for range 100 {
		a.Animate(false)
		if a.JustFinished() == cfg.Attack {
			break
		}
	}
	assert.Equal(t, cfg.Jump, a.State())
	assert.False(t, a.Locked)
}

func TestDeathHolds(t *testing.T) {
	a := NewActor("goblin", animations.Blank("goblin", 10, 10), cfg.AnimationRates("goblin"), Vector{})
	a.Die()

	fired := 0
	for range 100 {
		a.Animate(true)
		if a.JustFinished() == cfg.Death {
			fired++
		}
		assert.Less(t, a.FrameIndex(), float64(len(a.Frames.Strip(cfg.Death))))
	}
	assert.Greater(t, fired, 1, "death keeps reporting once finished")
	assert.Equal(t, cfg.Death, a.State())
	assert.True(t, a.Locked)
}
