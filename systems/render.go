package systems

import (
	"image/color"

	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/systems/factory"
	"github.com/automoto/troveyball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawCourt renders the side view of the room: surfaces, plane markers, the
// hoop, balls and the viewer with its line of sight.
func DrawCourt(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	tags.Surface.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		c := cfg.Colors.Surface
		if components.Surface.Get(e).Name == "floor" {
			c = cfg.Colors.Floor
		}
		fillRect(screen, obj.X, obj.Y, obj.W, obj.H, c)
	})

	components.PlaneMarker.Each(ecs.World, func(e *donburi.Entry) {
		m := components.PlaneMarker.Get(e)
		vector.StrokeRect(screen, float32(m.X), float32(m.Y), float32(m.W), float32(m.H), 2, cfg.Colors.Marker, false)
	})

	drawHoop(ecs, screen)
	drawViewer(ecs, screen)

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		cx, cy := obj.Center()
		vector.FillCircle(screen, float32(cx), float32(cy), float32(obj.W/2), cfg.Colors.Ball, true)
	})
}

// DrawConfetti renders celebration pieces above everything else in the
// room.
func DrawConfetti(ecs *ecs.ECS, screen *ebiten.Image) {
	size := cfg.Confetti.PieceSize
	components.Confetti.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Confetti.Get(e)
		x := c.X + c.Drift*float64(c.Progress)
		y := c.BaseY + c.Distance*float64(c.Progress)
		vector.FillRect(screen, float32(x), float32(y), size, size, withAlpha(c.Color, c.Alpha), false)
	})
}

func drawHoop(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Hoop.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		part := components.HoopPart.Get(e)
		switch part.Part {
		case components.HoopBackboard:
			fillRect(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Colors.Backboard)
			vector.StrokeLine(screen,
				float32(part.RimX), float32(part.RingY),
				float32(obj.X), float32(part.RingY),
				2, cfg.Colors.Rim, true)
		case components.HoopRim:
			fillRect(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Colors.Rim)
		}
	})

	if !cfg.Debug.Overlay {
		return
	}
	tags.Detector.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		fillRect(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Colors.Detector)
	})
}

func drawViewer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return
	}
	proj := factory.Projection(ecs)
	pose := components.Viewer.Get(entry).Pose()

	x, y := proj.ToScreen(pose.Position)
	dx, dy := proj.ScreenDelta(pose.Forward(), 1)
	vector.StrokeLine(screen,
		float32(x), float32(y), float32(x+dx), float32(y+dy),
		1, cfg.Colors.AimLine, true)
	vector.FillCircle(screen, float32(x), float32(y), 6, cfg.Colors.Viewer, true)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}
