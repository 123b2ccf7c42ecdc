package components

import (
	"time"

	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/yohamta/donburi"
)

// SpawnKind is what a full progress meter brings on screen.
type SpawnKind int

const (
	SpawnCoin SpawnKind = iota
	SpawnEnemy
	SpawnObstacle
)

// Spawn is one spawn decision.
type Spawn struct {
	Kind  SpawnKind
	Enemy string // enemy type, SpawnEnemy only
}

// Roller is the random source used for spawn rolls. *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
	IntN(n int) int
}

// ProgressData holds the level counters that decide what spawns next and
// when the player moves on.
type ProgressData struct {
	Level      int
	Meter      float64
	Coins      int // collected on this level
	Kills      int // on this level
	TotalKills int
	CycleKills int // kills since the last forced boss
	ForceBoss  bool
}

// Fill grows the meter while the player walks and nothing is on screen, and
// reports whether it is full.
func (pr *ProgressData) Fill(dt time.Duration, moving, clear bool) bool {
	if moving && clear {
		pr.Meter = min(pr.Meter+cfg.Progress.PerMilli*float64(dt.Milliseconds()), cfg.Progress.Max)
	}
	return pr.Meter >= cfg.Progress.Max
}

// NextSpawn rolls the next event for level l and empties the meter.
func (pr *ProgressData) NextSpawn(l cfg.LevelConfig, rng Roller) Spawn {
	pr.Meter = 0
	if pr.ForceBoss && len(l.Bosses) > 0 {
		pr.ForceBoss = false
		return Spawn{Kind: SpawnEnemy, Enemy: l.Bosses[rng.IntN(len(l.Bosses))]}
	}
	if rng.Float64() < l.CoinChance {
		return Spawn{Kind: SpawnCoin}
	}
	if len(l.Enemies) == 0 || rng.Float64() >= l.MonsterChance {
		return Spawn{Kind: SpawnObstacle}
	}
	if l.FinalBoss != "" && l.KillTarget > 0 && pr.Kills == l.KillTarget-1 {
		return Spawn{Kind: SpawnEnemy, Enemy: l.FinalBoss}
	}
	return Spawn{Kind: SpawnEnemy, Enemy: l.Enemies[rng.IntN(len(l.Enemies))]}
}

// RecordCoin counts a collected coin.
func (pr *ProgressData) RecordCoin() {
	pr.Coins++
	pr.Meter = 0
}

// RecordKill counts a kill and arms the next boss on endless levels.
func (pr *ProgressData) RecordKill(l cfg.LevelConfig) {
	pr.Kills++
	pr.TotalKills++
	pr.Meter = 0
	if l.BossEvery <= 0 {
		return
	}
	pr.CycleKills++
	if pr.CycleKills >= l.BossEvery {
		pr.CycleKills = 0
		pr.ForceBoss = true
	}
}

// Complete reports whether level l's exit condition is met.
func (pr *ProgressData) Complete(l cfg.LevelConfig) bool {
	if l.CoinsToPass > 0 && pr.Coins >= l.CoinsToPass {
		return true
	}
	return l.KillTarget > 0 && pr.Kills >= l.KillTarget
}

// Advance moves to the next level, staying on the last one.
func (pr *ProgressData) Advance(levels int) {
	if pr.Level < levels {
		pr.Level++
	}
	pr.Meter = 0
	pr.Coins = 0
	pr.Kills = 0
	pr.CycleKills = 0
	pr.ForceBoss = false
}

var Progress = donburi.NewComponentType[ProgressData]()
