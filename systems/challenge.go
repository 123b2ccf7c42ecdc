package systems

import (
	"fmt"

	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/encounter"
	"github.com/automoto/fitring-adventure/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ChallengePrompt shows which key to mash, how many hits have landed and
// how much of the window is left. The prompt pulses while a window is open.
type ChallengePrompt struct {
	orch  *encounter.Orchestrator
	pulse *gween.Sequence
	scale float64
}

func NewChallengePrompt(orch *encounter.Orchestrator) *ChallengePrompt {
	return &ChallengePrompt{
		orch: orch,
		pulse: gween.NewSequence(
			gween.New(1, 1.25, 0.25, ease.OutQuad),
			gween.New(1.25, 1, 0.25, ease.InQuad),
		),
		scale: 1,
	}
}

// Update advances the pulse while a challenge is running.
func (c *ChallengePrompt) Update(ecs *ecs.ECS) {
	_, enemy, ok := getEnemy(ecs)
	if !ok || !enemy.ChallengeActive {
		c.pulse.Reset()
		c.scale = 1
		return
	}
	v, _, done := c.pulse.Update(float32(dt.Seconds()))
	c.scale = float64(v)
	if done {
		c.pulse.Reset()
	}
}

// Draw renders the prompt above the enemy.
func (c *ChallengePrompt) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	_, enemy, ok := getEnemy(ecs)
	if !ok {
		return
	}
	left, active := enemy.Challenge()
	if !active {
		return
	}
	_, player, ok := getPlayer(ecs)
	if !ok {
		return
	}

	msg := fmt.Sprintf("HIT %s!  %d/%d", c.keyLabel(player), max(player.AttackCount-enemy.Baseline, 0), enemy.RequiredDelta)
	face := fonts.Prompt.Get()
	bounds := text.BoundString(face, msg)
	w := float64(screen.Bounds().Dx())

	// Scale the prompt around its centre.
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(bounds.Min.X)-float64(bounds.Dx())/2, -float64(bounds.Min.Y)-float64(bounds.Dy())/2)
	drawOp.GeoM.Scale(c.scale, c.scale)
	drawOp.GeoM.Translate(w/2, 90)
	drawOp.ColorScale.ScaleWithColor(cfg.UI.PromptColor)
	text.DrawWithOptions(screen, msg, face, drawOp)

	// Remaining window
	ratio := 0.0
	if enemy.ChallengeTotal > 0 {
		ratio = max(float64(left)/float64(enemy.ChallengeTotal), 0)
	}
	barW := cfg.UI.HealthBarWidth * 2
	barX := (w - barW) / 2
	vector.FillRect(screen, float32(barX), 120, float32(barW), float32(cfg.UI.HealthBarHeight), cfg.UI.PanelColor, false)
	vector.FillRect(screen, float32(barX), 120, float32(barW*ratio), float32(cfg.UI.HealthBarHeight), cfg.UI.TimerColor, false)
}

func (c *ChallengePrompt) keyLabel(p *components.PlayerData) string {
	if c.orch.ExpectedKey() == encounter.KeySecondary {
		return string(rune(cfg.Classes[p.Class].SecondaryByte))
	}
	return "J"
}
