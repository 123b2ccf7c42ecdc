package animations

import (
	"math"
	"testing"

	"github.com/automoto/fitring-adventure/config"
	"github.com/stretchr/testify/assert"
)

func strip(n int) Strip {
	s := make(Strip, n)
	for i := range s {
		s[i] = Frame{Width: 10 + i, Height: 20}
	}
	return s
}

func TestLoopingWrapsAfterCeilTicks(t *testing.T) {
	tests := []struct {
		frames int
		rate   float64
	}{
		{4, 0.25},
		{6, 0.5},
		{3, 0.125},
		{5, 1},
	}
	for _, tt := range tests {
		a := NewAnimation(tt.frames, tt.rate, config.Looping)
		ticks := int(math.Ceil(float64(tt.frames) / tt.rate))
		for i := 0; i < ticks; i++ {
			assert.False(t, a.Update(), "looping strips never report an end")
		}
		assert.GreaterOrEqual(t, a.Index(), 0.0)
		assert.Less(t, a.Index(), tt.rate)
	}
}

func TestOneShotReportsOncePerActivation(t *testing.T) {
	a := NewAnimation(4, 0.5, config.OneShot)
	var finishedAt []int
	for i := 1; i <= 8; i++ {
		if a.Update() {
			finishedAt = append(finishedAt, i)
		}
	}
	assert.Equal(t, []int{8}, finishedAt)
	assert.Zero(t, a.Index())
}

func TestTerminalHoldsLastFrame(t *testing.T) {
	a := NewAnimation(3, 0.5, config.Terminal)
	first := -1
	for i := 1; i <= 20; i++ {
		done := a.Update()
		assert.LessOrEqual(t, a.Frame(), 2)
		if done && first < 0 {
			first = i
		}
		if first > 0 {
			assert.True(t, done, "tick %d", i)
			assert.Equal(t, 2.0, a.Index())
		}
	}
	assert.Equal(t, 6, first)

	a.Restart()
	assert.Zero(t, a.Index())
	assert.False(t, a.Update())
}

func TestZeroFramesIsSingleFrame(t *testing.T) {
	a := NewAnimation(0, 1, config.Looping)
	assert.Equal(t, 1, a.Frames)
	assert.Equal(t, 0, a.Frame())
}

func TestSetFallbacks(t *testing.T) {
	set := Set{
		config.Idle:   strip(2),
		config.Run:    strip(3),
		config.Attack: {},
	}
	assert.Len(t, set.Strip(config.Run), 3)
	assert.Len(t, set.Strip(config.Attack), 2, "empty strip falls back to idle")
	assert.Len(t, set.Strip(config.Hit), 2, "missing strip falls back to idle")

	empty := Set{config.Idle: {}}
	assert.Equal(t, Strip{Placeholder}, empty.Strip(config.Run))
	assert.Equal(t, Strip{Placeholder}, Set(nil).Strip(config.Idle))
}

func TestSetMissing(t *testing.T) {
	set := Set{config.Run: strip(1), config.Hit: {}}
	assert.Equal(t,
		[]config.StateID{config.Idle, config.Hit, config.Death},
		set.Missing(config.Idle, config.Run, config.Hit, config.Death))
	assert.Empty(t, Set{config.Idle: strip(1)}.Missing(config.Idle))
}
