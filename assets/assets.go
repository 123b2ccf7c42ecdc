package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/automoto/fitring-adventure/assets/animations"
	"github.com/automoto/fitring-adventure/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/rs/zerolog/log"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// StagePath is the embedded stage map.
const StagePath = "levels/stage.tmx"

// Point is a spawn position. Y is the ground contact point.
type Point struct {
	X, Y float64
}

// Stage is the fixed backdrop the run scrolls past and the places actors
// appear at.
type Stage struct {
	Background *ebiten.Image
	Name       string
	Width      int
	Height     int

	GroundY          float64
	PlayerSpawn      Point
	EnemySpawn       Point
	CoinSpawn        Point
	ObstacleSpawn    Point
	ProjectileOffset float64 // launch height above an enemy's feet
}

var errNoGround = errors.New("stage has no Ground object")

// DefaultStage is the layout used when a map leaves spawn groups out: the
// player stands on the left, everything else enters from past the right edge.
func DefaultStage(groundY float64) Stage {
	w := float64(config.C.Width)
	return Stage{
		Width:            config.C.Width,
		Height:           config.C.Height,
		GroundY:          groundY,
		PlayerSpawn:      Point{X: config.Player.SpawnX, Y: groundY},
		EnemySpawn:       Point{X: w + config.Enemy.SpawnOffset, Y: groundY},
		CoinSpawn:        Point{X: w + config.Coin.Size, Y: groundY - config.Coin.Height},
		ObstacleSpawn:    Point{X: w + config.Obstacle.Width, Y: groundY},
		ProjectileOffset: -config.Player.CollisionSize[1] * 0.75,
	}
}

// ParseStage reads the spawn layout from a loaded map. Missing spawn groups
// fall back to DefaultStage.
func ParseStage(name string, m *tiled.Map) (Stage, error) {
	groundY, found := 0.0, false
	for _, og := range m.ObjectGroups {
		if og.Name == "Ground" && len(og.Objects) > 0 {
			groundY = og.Objects[0].Y
			found = true
		}
	}
	if !found {
		return Stage{}, fmt.Errorf("%s: %w", name, errNoGround)
	}

	stage := DefaultStage(groundY)
	stage.Name = name
	stage.Width = m.Width * m.TileWidth
	stage.Height = m.Height * m.TileHeight

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			stage.PlayerSpawn = firstPoint(og, stage.PlayerSpawn)
		case "EnemySpawn":
			stage.EnemySpawn = firstPoint(og, stage.EnemySpawn)
		case "CoinSpawn":
			stage.CoinSpawn = firstPoint(og, stage.CoinSpawn)
		case "ObstacleSpawn":
			stage.ObstacleSpawn = firstPoint(og, stage.ObstacleSpawn)
		case "ProjectileOrigin":
			if v := og.Properties.GetFloat("offsetY"); v != 0 {
				stage.ProjectileOffset = v
			}
		}
	}
	return stage, nil
}

func firstPoint(og *tiled.ObjectGroup, fallback Point) Point {
	if len(og.Objects) == 0 {
		return fallback
	}
	o := og.Objects[0]
	return Point{X: o.X, Y: o.Y}
}

// LoadStageMap loads a map from the embedded levels.
func LoadStageMap(levelPath string) (*tiled.Map, error) {
	m, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load stage %s: %w", levelPath, err)
	}
	return m, nil
}

// MustLoadStage loads, parses and renders the embedded stage.
func MustLoadStage() Stage {
	m, err := LoadStageMap(StagePath)
	if err != nil {
		panic(err)
	}
	stage, err := ParseStage(StagePath, m)
	if err != nil {
		panic(err)
	}
	stage.Background = renderBackground(m)
	return stage
}

// renderBackground draws every tile layer flagged with the "render" property.
func renderBackground(m *tiled.Map) *ebiten.Image {
	bg := ebiten.NewImage(m.Width*m.TileWidth, m.Height*m.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(m, assetFS)
	if err != nil {
		log.Warn().Err(err).Msg("stage renderer unavailable, drawing a bare backdrop")
		return bg
	}
	for i, layer := range m.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Warn().Err(err).Int("layer", i).Msg("failed to render stage layer")
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		if layer.Opacity > 0 {
			op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		}
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return bg
}

// SpriteLoader builds animation sets from horizontal PNG strips laid out as
// <key>/<state>.png. Without a file system every actor gets blank frames.
type SpriteLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// NewSpriteLoaderDir loads strips from a directory on disk. An empty dir
// means no sprites.
func NewSpriteLoaderDir(dir string) *SpriteLoader {
	if dir == "" {
		return NewSpriteLoader(nil)
	}
	return NewSpriteLoader(os.DirFS(filepath.Clean(dir)))
}

// Set returns the frames for key. Frames default to w x h when there is no
// strip to measure. kind selects the required states that get checked.
func (l *SpriteLoader) Set(key, kind string, w, h int) animations.Set {
	if l.fsys == nil {
		return animations.Blank(key, w, h)
	}

	set := make(animations.Set)
	for state, def := range config.CharacterAnimations[key] {
		strip, err := l.strip(key, state, def.Frames)
		if err != nil {
			log.Warn().Err(err).Str("actor", key).Stringer("state", state).Msg("sprite strip unavailable")
			continue
		}
		set[state] = strip
	}

	if missing := set.Missing(config.RequiredStates[kind]...); len(missing) > 0 {
		log.Warn().Str("actor", key).Interface("missing", missing).Msg("animation set incomplete, falling back")
	}
	if len(set) == 0 {
		return animations.Blank(key, w, h)
	}
	return set
}

func (l *SpriteLoader) strip(key string, state config.StateID, frames int) (animations.Strip, error) {
	sheet, err := l.image(path.Join(key, state.String()+".png"))
	if err != nil {
		return nil, err
	}
	frames = max(frames, 1)
	b := sheet.Bounds()
	fw := b.Dx() / frames
	if fw == 0 {
		return nil, fmt.Errorf("%s/%s: strip narrower than %d frames", key, state, frames)
	}

	strip := make(animations.Strip, frames)
	for i := range strip {
		rect := image.Rect(b.Min.X+i*fw, b.Min.Y, b.Min.X+(i+1)*fw, b.Max.Y)
		strip[i] = animations.Frame{
			Image:  sheet.SubImage(rect).(*ebiten.Image),
			Width:  fw,
			Height: b.Dy(),
		}
	}
	return strip, nil
}

func (l *SpriteLoader) image(name string) (*ebiten.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	l.cache[name] = img
	return img, nil
}
