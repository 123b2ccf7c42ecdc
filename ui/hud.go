package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDState is what the HUD panel shows on one tick.
type HUDState struct {
	Level       int
	Coins       int
	CoinsToPass int
	Kills       int
	KillTarget  int
	TotalKills  int
	HP, MaxHP   int
	Dead        bool

	Enemy             string
	EnemyHP, EnemyMax int

	Controller string
}

// LevelLine is the level title with its exit condition.
func (s HUDState) LevelLine() string {
	switch {
	case s.CoinsToPass > 0:
		return fmt.Sprintf("Level %d  coins %d/%d", s.Level, s.Coins, s.CoinsToPass)
	case s.KillTarget > 0:
		return fmt.Sprintf("Level %d  kills %d/%d", s.Level, s.Kills, s.KillTarget)
	}
	return fmt.Sprintf("Level %d  endless  kills %d", s.Level, s.TotalKills)
}

// HealthLine is the player's hit points, or the revive hint once dead.
func (s HUDState) HealthLine() string {
	if s.Dead {
		return "Defeated - press R to revive"
	}
	return fmt.Sprintf("HP %d/%d", s.HP, s.MaxHP)
}

// EnemyLine names the enemy on screen and its hit points.
func (s HUDState) EnemyLine() string {
	if s.Enemy == "" {
		return ""
	}
	return fmt.Sprintf("%s  HP %d/%d", s.Enemy, s.EnemyHP, s.EnemyMax)
}

// HUD holds the ebitenui panel drawn in the top-left corner.
type HUD struct {
	UI *ebitenui.UI

	levelLabel      *widget.Label
	healthLabel     *widget.Label
	enemyLabel      *widget.Label
	controllerLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewHUD builds the panel.
func NewHUD() (*HUD, error) {
	h := &HUD{}
	if err := h.loadFonts(); err != nil {
		return nil, err
	}
	h.buildUI()
	return h, nil
}

func (h *HUD) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("ui: load hud font: %w", err)
	}
	h.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	h.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (h *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(int(cfg.UI.Margin/2))),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.levelLabel = h.label(panel, &h.normalFace, cfg.UI.TextColor)
	h.healthLabel = h.label(panel, &h.normalFace, cfg.LightGreen)
	h.enemyLabel = h.label(panel, &h.normalFace, cfg.Red)
	h.controllerLabel = h.label(panel, &h.smallFace, cfg.LightBlue)

	rootContainer.AddChild(panel)
	h.UI = &ebitenui.UI{Container: rootContainer}
}

func (h *HUD) label(parent *widget.Container, face *text.Face, idle color.Color) *widget.Label {
	l := widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{Idle: idle}),
	)
	parent.AddChild(l)
	return l
}

// Set copies the tick's state into the labels.
func (h *HUD) Set(s HUDState) {
	h.levelLabel.Label = s.LevelLine()
	h.healthLabel.Label = s.HealthLine()
	h.enemyLabel.Label = s.EnemyLine()
	h.controllerLabel.Label = s.Controller
}

func (h *HUD) Update() {
	h.UI.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
