package systems

import (
	"testing"

	"github.com/automoto/fitring-adventure/assets"
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/encounter"
	"github.com/automoto/fitring-adventure/serial"
	"github.com/automoto/fitring-adventure/systems/factory"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// zeroRoller always rolls the lowest outcome.
type zeroRoller struct{}

func (zeroRoller) Float64() float64 { return 0 }
func (zeroRoller) IntN(int) int     { return 0 }

type testWorld struct {
	ecs     *ecs.ECS
	orch    *encounter.Orchestrator
	player  *components.PlayerData
	systems []ecs.System
}

func newTestWorld(t *testing.T, level int) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, assets.DefaultStage(cfg.C.GroundY))
	factory.CreateProgress(e, level)
	playerEntry := factory.CreatePlayer(e, "wizard", 200, cfg.C.GroundY)

	orch := encounter.New(zerolog.Nop())
	orch.SetLevel(level, cfg.Levels.Alternates(level))
	return &testWorld{
		ecs:    e,
		orch:   orch,
		player: components.Player.Get(playerEntry),
		systems: []ecs.System{
			NewUpdatePlayer(orch),
			UpdateEnemies,
			UpdateCoins,
			UpdateObstacles,
			UpdateProjectiles,
			NewUpdateProgress(zeroRoller{}, orch),
			NewUpdateEncounter(orch),
			UpdateObjects,
		},
	}
}

func (w *testWorld) input() *components.InputData {
	return getOrCreateInput(w.ecs)
}

func (w *testWorld) progress() *components.ProgressData {
	p, _ := getProgress(w.ecs)
	return p
}

// tick runs one frame and then retires the frame's controller commands.
func (w *testWorld) tick() {
	for _, s := range w.systems {
		s(w.ecs)
	}
	in := w.input()
	in.Previous = in.Current
	in.Serial = components.ActionSet{}
}

func (w *testWorld) until(t *testing.T, cond func() bool, each func()) {
	t.Helper()
	for range 5000 {
		if cond() {
			return
		}
		if each != nil {
			each()
		}
		w.tick()
	}
	t.Fatal("condition never met")
}

func (w *testWorld) count(tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func TestSerialActions(t *testing.T) {
	cmds := []serial.Command{serial.CmdPrimary, serial.CmdSecondaryM, serial.CmdSecondaryP, serial.CmdStep, serial.CmdStep, serial.CmdJump}

	wizard, steps := SerialActions(cmds, cfg.Classes["wizard"])
	assert.Equal(t, 2, steps)
	assert.True(t, wizard.Has(cfg.ActionPrimaryAttack))
	assert.True(t, wizard.Has(cfg.ActionSecondaryAttack))
	assert.True(t, wizard.Has(cfg.ActionJump))

	swordman, _ := SerialActions([]serial.Command{serial.CmdSecondaryM}, cfg.Classes["swordman"])
	assert.False(t, swordman.Has(cfg.ActionSecondaryAttack), "M belongs to the wizard")

	control, _ := SerialActions([]serial.Command{serial.CmdPause, serial.CmdResume, serial.CmdPickUp}, cfg.Classes["wizard"])
	assert.True(t, control.Has(cfg.ActionPause))
	assert.True(t, control.Has(cfg.ActionResume))
	assert.True(t, control.Has(cfg.ActionPickUp))
}

type secondaryOnly struct{}

func (secondaryOnly) Accepts(a cfg.ActionID) bool { return a == cfg.ActionSecondaryAttack }

func TestDispatchAttacksCountsExpectedKey(t *testing.T) {
	w := newTestWorld(t, 3)
	p := w.player
	var cmds components.ActionSet
	cmds.Add(cfg.ActionPrimaryAttack)
	cmds.Add(cfg.ActionSecondaryAttack)

	p.SetChallengeLock(true)
	DispatchAttacks(p, cmds, secondaryOnly{})
	assert.Equal(t, 1, p.AttackCount)

	p.SetChallengeLock(false)
	DispatchAttacks(p, cmds, secondaryOnly{})
	assert.Equal(t, 1, p.AttackCount, "outside a challenge presses animate")
	assert.Equal(t, cfg.Attack, p.State())
}

func TestEncounterKillsEnemyOnce(t *testing.T) {
	w := newTestWorld(t, 2)
	_, err := factory.CreateEnemy(w.ecs, w.player.Anchor.X+cfg.Enemy.StopOffset+40, cfg.C.GroundY, "goblin")
	require.NoError(t, err)

	w.tick()
	assert.True(t, w.player.FullLock, "an approaching enemy locks the player")

	mash := func() {
		if w.player.ChallengeLock {
			w.input().Serial.Add(cfg.ActionPrimaryAttack)
		}
	}
	w.until(t, func() bool { return w.count(tags.Enemy) == 0 }, mash)

	assert.Equal(t, 1, w.progress().Kills)
	assert.Equal(t, 1, w.progress().TotalKills)
	assert.Equal(t, cfg.Enemy.Types["goblin"].Health, w.orch.Resolutions())
	assert.Equal(t, w.orch.Resolutions(), w.orch.Completions())
	assert.Equal(t, cfg.Player.Health, w.player.Health.Current)

	w.tick()
	assert.False(t, w.player.FullLock)
	assert.False(t, w.player.ChallengeLock)
}

func TestEncounterLossHurtsPlayer(t *testing.T) {
	w := newTestWorld(t, 2)
	_, err := factory.CreateEnemy(w.ecs, w.player.Anchor.X+cfg.Enemy.StopOffset, cfg.C.GroundY, "skeleton")
	require.NoError(t, err)

	w.until(t, func() bool { return w.orch.Completions() == 1 }, nil)
	assert.Equal(t, cfg.Player.Health-cfg.Enemy.Types["skeleton"].Damage, w.player.Health.Current)
	assert.Equal(t, 1, w.count(tags.Enemy))
	assert.Zero(t, w.progress().Kills)
}

func TestProgressSpawnsCoinAndAdvances(t *testing.T) {
	w := newTestWorld(t, 1)
	w.input().Current.Add(cfg.ActionMoveRight)

	w.until(t, func() bool { return w.count(tags.Coin) == 1 }, nil)
	assert.Zero(t, w.progress().Meter)

	w.until(t, func() bool { return w.player.CoinLock }, nil)
	assert.False(t, w.player.IsMoving)

	w.progress().Coins = 9
	w.input().Serial.Add(cfg.ActionPickUp)
	w.tick()
	assert.Zero(t, w.count(tags.Coin))
	assert.False(t, w.player.CoinLock)

	w.tick()
	assert.Equal(t, 2, w.progress().Level)
	assert.Zero(t, w.progress().Coins)
	assert.Equal(t, 2, w.orch.Level())
}

func TestProjectileHitsPlayer(t *testing.T) {
	w := newTestWorld(t, 5)
	factory.CreateProjectile(w.ecs, w.player.Anchor.X+30, cfg.C.GroundY-60, 5)

	w.tick()
	assert.Equal(t, cfg.Player.Health-5, w.player.Health.Current)
	assert.Equal(t, cfg.Hit, w.player.State())

	w.until(t, func() bool { return w.count(tags.Projectile) == 0 }, nil)
	assert.Equal(t, cfg.Player.Health-5, w.player.Health.Current, "an exploding fireball hits once")
}

func TestObstacleClearedByJump(t *testing.T) {
	w := newTestWorld(t, 3)
	factory.CreateObstacle(w.ecs, w.player.Anchor.X+cfg.Obstacle.StopOffset, cfg.C.GroundY)
	w.input().Current.Add(cfg.ActionMoveRight)

	w.tick()
	require.True(t, w.player.ObstacleLock)
	assert.False(t, w.player.IsMoving)

	w.input().Serial.Add(cfg.ActionJump)
	w.tick()
	assert.False(t, w.player.ObstacleLock)
	assert.False(t, w.player.Body.OnGround)

	w.until(t, func() bool { return w.count(tags.Obstacle) == 0 }, nil)
}

func TestPauseFollowsController(t *testing.T) {
	w := newTestWorld(t, 1)
	ran := 0
	counted := WithGameplayChecks(func(*ecs.ECS) { ran++ })

	w.input().Serial.Add(cfg.ActionPause)
	UpdatePause(w.ecs)
	counted(w.ecs)
	assert.True(t, GetOrCreatePause(w.ecs).IsPaused)
	assert.Equal(t, components.InputSerial, GetOrCreatePause(w.ecs).By)
	assert.Zero(t, ran)

	w.input().Serial = components.ActionSet{}
	w.input().Serial.Add(cfg.ActionResume)
	UpdatePause(w.ecs)
	counted(w.ecs)
	assert.False(t, GetOrCreatePause(w.ecs).IsPaused)
	assert.Equal(t, 1, ran)
}

type levelRecorder struct {
	level      int
	alternates bool
}

func (r *levelRecorder) SetLevel(level int, alternates bool) {
	r.level, r.alternates = level, alternates
}

func TestLevelReloadClampsProgress(t *testing.T) {
	saved := cfg.Levels
	t.Cleanup(func() { cfg.Levels = saved })

	w := newTestWorld(t, 5)
	table, err := cfg.ParseLevels([]byte(`
alternate_from: 2
levels:
  - {number: 1, coins_to_pass: 3, coin_chance: 1}
  - {number: 2, kill_target: 2, monster_chance: 1, enemies: [goblin]}
`))
	require.NoError(t, err)

	tables := make(chan *cfg.LevelTable, 1)
	errs := make(chan error, 1)
	rec := &levelRecorder{}
	update := NewUpdateLevels(tables, errs, rec)

	update(w.ecs)
	assert.Zero(t, rec.level, "nothing to apply")

	tables <- table
	update(w.ecs)
	assert.Same(t, table, cfg.Levels)
	assert.Equal(t, 2, w.progress().Level)
	assert.Equal(t, &levelRecorder{level: 2, alternates: true}, rec)
}

type fixedLink serial.ControllerState

func (l fixedLink) State() serial.ControllerState { return serial.ControllerState(l) }

func TestHUDState(t *testing.T) {
	w := newTestWorld(t, 2)
	_, err := factory.CreateEnemy(w.ecs, 900, cfg.C.GroundY, "mushroom")
	require.NoError(t, err)
	w.progress().Kills = 3

	s := HUDState(w.ecs, fixedLink(serial.StateConnected))
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 5, s.KillTarget)
	assert.Equal(t, 3, s.Kills)
	assert.Equal(t, "mushroom", s.Enemy)
	assert.Equal(t, cfg.Player.Health, s.HP)
	assert.Equal(t, "controller connected", s.Controller)

	assert.Equal(t, "keyboard", HUDState(w.ecs, nil).Controller)
}

func TestRemoveEntryDropsCollisionBox(t *testing.T) {
	w := newTestWorld(t, 1)
	coin := factory.CreateCoin(w.ecs, 500, 300)
	obj := components.Object.Get(coin).Object

	spaceEntry, _ := components.Space.First(w.ecs.World)
	space := components.Space.Get(spaceEntry)
	require.Contains(t, space.Objects(), obj)

	removeEntry(w.ecs, coin)
	assert.NotContains(t, space.Objects(), obj)
	assert.Zero(t, w.count(tags.Coin))
}
