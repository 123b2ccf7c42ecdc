package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/fitring-adventure/components"
	cfg "github.com/automoto/fitring-adventure/config"
	"github.com/automoto/fitring-adventure/encounter"
	"github.com/automoto/fitring-adventure/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug outlines every collision box and prints the encounter state
// while debug mode is on (F3 or -debug).
func NewDrawDebug(orch *encounter.Orchestrator) ecs.Renderer {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.Enabled {
			return
		}

		spaceEntry, ok := components.Space.First(ecs.World)
		if ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				// Determine color based on tags
				c := color.RGBA{0, 255, 255, 255} // Cyan default
				if obj.HasTags(tags.ResolvPlayer) {
					c = color.RGBA{0, 0, 255, 255} // Blue
				} else if obj.HasTags(tags.ResolvEnemy) {
					c = color.RGBA{255, 0, 0, 255} // Red
				} else if obj.HasTags(tags.ResolvProjectile) {
					c = color.RGBA{255, 140, 0, 255} // Orange
				}

				x, y := obj.X, obj.Y
				// Draw outline
				vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
				vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
				vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
				vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
			}
		}

		msg := fmt.Sprintf("TPS %.0f  phase %s  key %s  resolved %d  completed %d",
			ebiten.ActualTPS(), orch.Phase(), orch.ExpectedKey(), orch.Resolutions(), orch.Completions())
		if _, p, ok := getPlayer(ecs); ok {
			msg += fmt.Sprintf("\nstate %s  full %t  challenge %t  locked %t  count %d",
				p.State(), p.FullLock, p.ChallengeLock, p.Locked, p.AttackCount)
		}
		ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-40)
	}
}
