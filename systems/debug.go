package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DebugView is what the overlay prints about the running session.
type DebugView interface {
	SessionView
	Round() int
}

// NewDrawDebug returns a renderer that outlines every collision object and
// prints the session state while the debug overlay is on.
func NewDrawDebug(view DebugView) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.Overlay {
			return
		}

		spaceEntry, ok := components.Space.First(ecs.World)
		if ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				c := color.RGBA{0, 255, 255, 255} // Cyan default
				if obj.HasTags(tags.ResolvDetector) {
					c = color.RGBA{0, 255, 0, 255}
				} else if obj.HasTags(tags.ResolvBlocker) {
					c = color.RGBA{255, 0, 255, 255}
				} else if obj.HasTags(tags.ResolvBall) {
					c = color.RGBA{255, 140, 0, 255}
				} else if obj.HasTags(tags.ResolvRim) {
					c = color.RGBA{255, 255, 0, 255}
				} else if obj.HasTags(tags.ResolvSurface) {
					c = color.RGBA{160, 120, 80, 255}
				} else if obj.HasTags(tags.ResolvSolid) {
					c = color.RGBA{100, 100, 100, 255}
				}
				vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
			}
		}

		bounces := 0
		if entry, ok := tags.Ball.First(ecs.World); ok {
			bounces = components.Ball.Get(entry).Bounces
		}

		gs := view.GameState()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"round %d  %s\npower %.0f  balls %d  basket %v  scored %v\nbounces %d  TPS %.0f",
			view.Round(), view.State(),
			gs.Power, gs.RemainingBalls, gs.BasketPlaced, gs.Scored,
			bounces, ebiten.ActualTPS(),
		), 4, cfg.C.Height-48)
	}
}
