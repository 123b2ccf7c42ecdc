package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevels []byte

// LevelConfig describes the spawn policy and exit condition of one level.
type LevelConfig struct {
	Number        int      `yaml:"number"`
	CoinsToPass   int      `yaml:"coins_to_pass"` // coins needed to leave a coin level
	KillTarget    int      `yaml:"kill_target"`   // kills needed to leave, zero for endless
	CoinChance    float64  `yaml:"coin_chance"`
	MonsterChance float64  `yaml:"monster_chance"` // monster vs obstacle once the coin roll fails
	Enemies       []string `yaml:"enemies"`
	FinalBoss     string   `yaml:"final_boss"` // spawned as the last kill of the level
	BossEvery     int      `yaml:"boss_every"` // endless levels: force a boss after this many kills
	Bosses        []string `yaml:"bosses"`
}

// LevelTable is the ordered list of levels plus level-wide challenge rules.
type LevelTable struct {
	AlternateFrom int           `yaml:"alternate_from"` // first level where the expected attack key alternates
	Levels        []LevelConfig `yaml:"levels"`
}

// Levels is the active level table. It is filled in by the package init in
// config.go once the enemy kinds exist.
var Levels *LevelTable

// ParseLevels decodes and validates a level table.
func ParseLevels(data []byte) (*LevelTable, error) {
	var t LevelTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: unmarshal levels: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// MustParseLevels is ParseLevels for embedded data.
func MustParseLevels(data []byte) *LevelTable {
	t, err := ParseLevels(data)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadLevels reads a level table from disk.
func LoadLevels(path string) (*LevelTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseLevels(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Validate checks numbering, chances and enemy names.
func (t *LevelTable) Validate() error {
	if len(t.Levels) == 0 {
		return errors.New("config: level table is empty")
	}
	if t.AlternateFrom < 1 {
		return fmt.Errorf("config: alternate_from must be at least 1, got %d", t.AlternateFrom)
	}

	var errs []error
	for i, l := range t.Levels {
		if l.Number != i+1 {
			errs = append(errs, fmt.Errorf("level %d: expected number %d", l.Number, i+1))
		}
		if l.CoinChance < 0 || l.CoinChance > 1 || l.MonsterChance < 0 || l.MonsterChance > 1 {
			errs = append(errs, fmt.Errorf("level %d: chances must be within [0, 1]", l.Number))
		}
		if l.CoinChance < 1 && len(l.Enemies) == 0 && l.MonsterChance > 0 {
			errs = append(errs, fmt.Errorf("level %d: monster spawns need an enemy list", l.Number))
		}
		if l.BossEvery > 0 && len(l.Bosses) == 0 {
			errs = append(errs, fmt.Errorf("level %d: boss_every needs a boss list", l.Number))
		}
		names := append(append([]string{}, l.Enemies...), l.Bosses...)
		if l.FinalBoss != "" {
			names = append(names, l.FinalBoss)
		}
		for _, name := range names {
			if _, ok := Enemy.Types[name]; !ok {
				errs = append(errs, fmt.Errorf("level %d: unknown enemy %q", l.Number, name))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid level table: %w", errors.Join(errs...))
	}
	return nil
}

// Level returns the config for a level number, clamped to the last level.
func (t *LevelTable) Level(n int) LevelConfig {
	if n < 1 {
		n = 1
	}
	if n > len(t.Levels) {
		n = len(t.Levels)
	}
	return t.Levels[n-1]
}

// Alternates reports whether the expected attack key alternates at this level.
func (t *LevelTable) Alternates(level int) bool {
	return level >= t.AlternateFrom
}
