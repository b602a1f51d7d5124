package systems

import (
	"image/color"

	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/fonts"
	"github.com/automoto/troveyball/shared/roundstate"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// HUD shows the session's hint and ball counter. It implements the hint and
// label half of the session's UI collaborator.
type HUD struct {
	ecs *ecs.ECS
}

func NewHUD(e *ecs.ECS) *HUD {
	return &HUD{ecs: e}
}

func (h *HUD) ShowHint(msg string) {
	hud := getOrCreateHUD(h.ecs)
	hud.HintText = msg
	hud.HintVisible = true
	hud.HintAlpha = 1
	hud.HintFade = nil
}

// HideHint fades the hint out.
func (h *HUD) HideHint() {
	hud := getOrCreateHUD(h.ecs)
	if !hud.HintVisible || hud.HintFade != nil {
		return
	}
	hud.HintFade = gween.New(hud.HintAlpha, 0, cfg.HUD.HintFadeTime, ease.Linear)
}

func (h *HUD) SetBallsLabel(label string, visible bool) {
	hud := getOrCreateHUD(h.ecs)
	hud.BallsLabel = label
	hud.BallsVisible = visible
}

// getOrCreateHUD returns the singleton HUD component, creating if needed
func getOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.HUD))
	}
	return components.HUD.Get(entry)
}

// SessionView is what the HUD needs to know about the running session.
type SessionView interface {
	State() roundstate.ID
	GameState() components.GameStateData
}

// NewDrawHUD draws the hint, the ball counter and, while charging, the power
// bar.
func NewDrawHUD(view SessionView) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		hud := getOrCreateHUD(e)
		width := float64(screen.Bounds().Dx())

		if hud.HintVisible && hud.HintText != "" {
			drawHint(screen, hud, width)
		}

		if hud.BallsVisible {
			face := fonts.Bold.Get()
			text.Draw(screen, hud.BallsLabel, face,
				int(cfg.HUD.Margin), int(cfg.HUD.Margin)+face.Metrics().Ascent.Ceil(), cfg.HUD.TextColor)
		}

		if view.State() == roundstate.Charging {
			drawPowerBar(screen, view.GameState().Power, width)
		}
	}
}

func drawHint(screen *ebiten.Image, hud *components.HUDData, width float64) {
	face := fonts.Regular.Get()
	bounds := text.BoundString(face, hud.HintText)
	pad := cfg.HUD.HintPadding
	boxW := float64(bounds.Dx()) + 2*pad
	boxH := float64(bounds.Dy()) + 2*pad
	boxX := (width - boxW) / 2
	boxY := cfg.HUD.HintTopMargin

	vector.FillRect(screen,
		float32(boxX), float32(boxY), float32(boxW), float32(boxH),
		withAlpha(cfg.HUD.HintBoxColor, hud.HintAlpha), false)
	text.Draw(screen, hud.HintText, face,
		int(boxX+pad)-bounds.Min.X, int(boxY+pad)-bounds.Min.Y,
		withAlpha(cfg.HUD.TextColor, hud.HintAlpha))
}

func drawPowerBar(screen *ebiten.Image, power, width float64) {
	x := width - cfg.HUD.Margin - cfg.HUD.PowerBarWidth
	y := cfg.HUD.Margin

	ratio := power / cfg.HUD.PowerBarMax
	if ratio > 1 {
		ratio = 1
	}

	vector.FillRect(screen,
		float32(x), float32(y),
		float32(cfg.HUD.PowerBarWidth), float32(cfg.HUD.PowerBarHeight),
		cfg.HUD.PowerBarBgColor, false)
	vector.FillRect(screen,
		float32(x), float32(y),
		float32(cfg.HUD.PowerBarWidth*ratio), float32(cfg.HUD.PowerBarHeight),
		cfg.HUD.PowerBarFgColor, false)
}

func withAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	// Colors are premultiplied.
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	x := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, s, face, x, y, c)
}
