package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCategories(t *testing.T) {
	tests := []struct {
		state StateID
		want  Category
	}{
		{Idle, Looping},
		{Run, Looping},
		{Jump, Looping},
		{Fly, Looping},
		{Attack, OneShot},
		{Attack2, OneShot},
		{Hit, OneShot},
		{Explode, OneShot},
		{Death, Terminal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.Category(), tt.state.String())
	}
}

func TestParseStateRoundTrip(t *testing.T) {
	for _, s := range AllStates {
		got, ok := ParseState(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseState("crouch")
	assert.False(t, ok)
	assert.Equal(t, "unknown", StateNone.String())
}

func TestAnimationTablesCoverRequiredStates(t *testing.T) {
	for key := range Classes {
		for _, s := range RequiredStates["player"] {
			assert.Contains(t, CharacterAnimations[key], s, "%s %s", key, s)
		}
	}
	for key := range Enemy.Types {
		for _, s := range RequiredStates["enemy"] {
			assert.Contains(t, CharacterAnimations[key], s, "%s %s", key, s)
		}
	}
}
