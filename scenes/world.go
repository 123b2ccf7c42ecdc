package scenes

import (
	"image/color"
	"math/rand/v2"
	"sync"

	"github.com/automoto/fitring-adventure/assets"
	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/encounter"
	"github.com/automoto/fitring-adventure/serial"
	"github.com/automoto/fitring-adventure/systems"
	"github.com/automoto/fitring-adventure/systems/factory"
	"github.com/automoto/fitring-adventure/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures an adventure run.
type Options struct {
	Class string
	Level int
	Seed  uint64

	// Controller is the serial fitness controller, nil for keyboard only.
	Controller *serial.Controller
	// Watcher reloads the level table from disk, nil when using the embedded one.
	Watcher *cfg.LevelWatcher

	Log zerolog.Logger
}

// AdventureScene is the side-scrolling run: one player walking right while
// coins, obstacles and enemies come to meet them.
type AdventureScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once

	orch   *encounter.Orchestrator
	prompt *systems.ChallengePrompt
	hud    *ui.HUD

	startSent bool
}

func NewAdventureScene(opts Options) *AdventureScene {
	return &AdventureScene{opts: opts}
}

func (s *AdventureScene) Update() {
	s.once.Do(s.configure)
	s.signalStart()
	s.ecs.Update()
}

func (s *AdventureScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// signalStart tells the controller the run has begun once its port is open.
func (s *AdventureScene) signalStart() {
	ctrl := s.opts.Controller
	if s.startSent || ctrl == nil || ctrl.State() != serial.StateConnected {
		return
	}
	s.startSent = true
	if err := ctrl.SendStart(); err != nil {
		s.opts.Log.Warn().Err(err).Msg("controller start signal failed")
		return
	}
	s.opts.Log.Info().Msg("controller session started")
}

func (s *AdventureScene) configure() {
	stage := assets.MustLoadStage()

	hud, err := ui.NewHUD()
	if err != nil {
		panic("failed to build hud: " + err.Error())
	}
	s.hud = hud

	level := max(s.opts.Level, 1)
	s.orch = encounter.New(s.opts.Log.With().Str("component", "encounter").Logger())
	s.orch.SetLevel(level, cfg.Levels.Alternates(level))
	s.prompt = systems.NewChallengePrompt(s.orch)

	seed := s.opts.Seed
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	// nil interfaces when there is no controller
	var src systems.CommandSource
	var link systems.LinkStatus
	if s.opts.Controller != nil {
		src = s.opts.Controller
		link = s.opts.Controller
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.NewUpdateInput(src))
	ecs.AddSystem(systems.UpdatePause)
	if w := s.opts.Watcher; w != nil {
		ecs.AddSystem(systems.NewUpdateLevels(w.Tables, w.Errors, s.orch))
	}

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.NewUpdatePlayer(s.orch)))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCoins))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObstacles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.NewUpdateProgress(rng, s.orch)))
	ecs.AddSystem(systems.WithGameplayChecks(systems.NewUpdateEncounter(s.orch)))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(s.prompt.Update))

	// HUD refreshes even when paused
	ecs.AddSystem(systems.NewUpdateHUD(s.hud, link))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawStage)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.NewDrawHUD(s.hud))
	ecs.AddRenderer(cfg.Default, s.prompt.Draw)
	ecs.AddRenderer(cfg.Default, systems.NewDrawDebug(s.orch))
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	s.ecs = ecs

	// The space must exist before any actor so their boxes land in it. It
	// reaches past the right edge where spawns wait to scroll in.
	factory.CreateSpace(s.ecs, stage)
	factory.CreateStage(s.ecs, stage)
	factory.CreateProgress(s.ecs, level)

	player := factory.CreatePlayer(s.ecs, s.opts.Class, stage.PlayerSpawn.X, stage.PlayerSpawn.Y)
	p := components.Player.Get(player)
	s.opts.Log.Info().
		Str("class", p.Class).
		Int("level", level).
		Str("stage", stage.Name).
		Msg("adventure started")
}
