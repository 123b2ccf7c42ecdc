package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevels(t *testing.T) {
	require.NotNil(t, Levels)
	assert.Len(t, Levels.Levels, 5)
	assert.Equal(t, 3, Levels.AlternateFrom)

	l1 := Levels.Level(1)
	assert.Equal(t, 10, l1.CoinsToPass)
	assert.Equal(t, 1.0, l1.CoinChance)

	l4 := Levels.Level(4)
	assert.Equal(t, 15, l4.KillTarget)
	assert.Equal(t, "gorgon", l4.FinalBoss)

	l5 := Levels.Level(5)
	assert.Zero(t, l5.KillTarget)
	assert.Equal(t, 5, l5.BossEvery)
}

func TestLevelClamps(t *testing.T) {
	assert.Equal(t, 1, Levels.Level(0).Number)
	assert.Equal(t, 5, Levels.Level(99).Number)
}

func TestAlternates(t *testing.T) {
	tests := []struct {
		level int
		want  bool
	}{
		{1, false},
		{2, false},
		{3, true},
		{5, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Levels.Alternates(tt.level), "level %d", tt.level)
	}
}

func TestParseLevelsRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "alternate_from: 3\nlevels: []\n"},
		{"bad alternate", "alternate_from: 0\nlevels:\n  - number: 1\n    coin_chance: 1\n"},
		{"gap in numbering", "alternate_from: 1\nlevels:\n  - number: 2\n    coin_chance: 1\n"},
		{"chance out of range", "alternate_from: 1\nlevels:\n  - number: 1\n    coin_chance: 1.5\n"},
		{"unknown enemy", "alternate_from: 1\nlevels:\n  - number: 1\n    monster_chance: 1\n    enemies: [dragon]\n"},
		{"boss list missing", "alternate_from: 1\nlevels:\n  - number: 1\n    coin_chance: 1\n    boss_every: 2\n"},
		{"not yaml", "levels: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevels([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadLevels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	require.NoError(t, os.WriteFile(path, defaultLevels, 0o644))

	table, err := LoadLevels(path)
	require.NoError(t, err)
	assert.Equal(t, Levels.Levels, table.Levels)

	_, err = LoadLevels(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultLevelsNameKnownEnemies(t *testing.T) {
	require.NotEmpty(t, Enemy.Types)
	for _, l := range Levels.Levels {
		names := append(append([]string{}, l.Enemies...), l.Bosses...)
		if l.FinalBoss != "" {
			names = append(names, l.FinalBoss)
		}
		for _, name := range names {
			assert.Contains(t, Enemy.Types, name, "level %d", l.Number)
		}
	}
	assert.NotPanics(t, func() { MustParseLevels(defaultLevels) })
}
