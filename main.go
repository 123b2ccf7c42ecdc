package main

import (
	"flag"
	"image"
	"os"
	"time"

	"github.com/automoto/fitring-adventure/assets"
	"github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/fonts"
	"github.com/automoto/fitring-adventure/scenes"
	"github.com/automoto/fitring-adventure/serial"
	"github.com/automoto/fitring-adventure/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts scenes.Options) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewAdventureScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var (
		class      = flag.String("class", "wizard", "player class: wizard | swordman")
		level      = flag.Int("level", 1, "level to start on")
		serialPort = flag.String("serial", "", "serial port of the fitness controller, empty for keyboard only")
		baud       = flag.Int("baud", config.Serial.Baud, "serial baud rate")
		levelsPath = flag.String("levels", "", "level table yaml to load and watch instead of the built-in one")
		assetsDir  = flag.String("assets", "", "directory of <actor>/<state>.png sprite strips")
		seed       = flag.Uint64("seed", 0, "spawn roll seed, 0 for time based")
		debug      = flag.Bool("debug", false, "debug logging and collision overlay")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	config.Debug.Enabled = *debug

	classCfg, ok := config.Classes[*class]
	if !ok {
		log.Fatal().Str("class", *class).Msg("unknown player class")
	}
	config.BindClass(classCfg)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	if *assetsDir != "" {
		factory.UseSprites(assets.NewSpriteLoaderDir(*assetsDir))
		log.Info().Str("dir", *assetsDir).Msg("loading sprites")
	}

	opts := scenes.Options{
		Class: classCfg.Name,
		Level: *level,
		Seed:  *seed,
		Log:   log.Logger,
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	config.Debug.Seed = opts.Seed

	// ---- Level table (optional, hot reloaded) ----
	if *levelsPath != "" {
		table, err := config.LoadLevels(*levelsPath)
		if err != nil {
			log.Warn().Err(err).Str("path", *levelsPath).Msg("level table load failed; using built-in levels")
		} else {
			config.Levels = table
			watcher, err := config.WatchLevels(*levelsPath)
			if err != nil {
				log.Warn().Err(err).Str("path", *levelsPath).Msg("level table watch failed; reload disabled")
			} else {
				defer watcher.Close()
				opts.Watcher = watcher
			}
		}
	}

	// ---- Serial controller (optional) ----
	if *serialPort != "" {
		ctrl := serial.NewController(log.Logger.With().Str("component", "serial").Logger(), config.Serial.Buffer)
		ctrl.Connect(*serialPort, *baud, config.Serial.ReadTimeout)
		defer ctrl.Disconnect()
		opts.Controller = ctrl
	}

	log.Info().Uint64("seed", opts.Seed).Str("class", opts.Class).Msg("starting")

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("FITRING Adventure")

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Error().Err(err).Msg("game exited with error")
	}
}
