package factory

import (
	"github.com/automoto/troveyball/archetypes"
	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/automoto/troveyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HoopBodies describes a freshly placed hoop.
type HoopBodies struct {
	Backboard *donburi.Entry
	Detector  *donburi.Entry
	Ring      gamemath.Vec3
}

// CreateHoop stands a backboard on the anchor, with the rim sticking out
// towards the viewer. The detector spans the ring opening just below the
// rim, and a one-way blocker below it keeps balls coming from underneath
// from reaching it.
func CreateHoop(ecs *ecs.ECS, anchor gamemath.Vec3, hoopID, detectorID uint64, detectorCategory uint32) HoopBodies {
	proj := Projection(ecs)
	ax, ay := proj.ToScreen(anchor)

	boardW := proj.Pixels(cfg.Hoop.BackboardWidth)
	boardH := proj.Pixels(cfg.Hoop.BackboardHeight)
	thickness := proj.Pixels(cfg.Hoop.RimThickness)
	boardX := ax - boardW
	ringY := ay - proj.Pixels(cfg.Hoop.BackboardHeight+cfg.Hoop.RingOffsetY)
	rimX := boardX - proj.Pixels(cfg.Hoop.RimDepth)
	ringX := (rimX + boardX) / 2

	board := spawnHoopPart(ecs, components.HoopBackboard,
		resolv.NewObject(boardX, ay-boardH, boardW, boardH, tags.ResolvSolid))
	components.Body.Get(board).ID = hoopID

	spawnHoopPart(ecs, components.HoopRim,
		resolv.NewObject(rimX, ringY-thickness/2, thickness, thickness, tags.ResolvSolid, tags.ResolvRim))

	detW := proj.Pixels(cfg.Hoop.RimDepth) - 2*thickness
	detH := proj.Pixels(cfg.Hoop.DetectorSize)
	detX := ringX - detW/2
	detY := ringY - proj.Pixels(cfg.Hoop.DetectorOffsetY) - detH/2

	detector := archetypes.Detector.Spawn(ecs)
	components.Body.SetValue(detector, components.BodyData{
		ID:       detectorID,
		Category: detectorCategory,
	})
	addToSpace(ecs, detector, resolv.NewObject(detX, detY, detW, detH, tags.ResolvDetector))

	spawnHoopPart(ecs, components.HoopBlocker,
		resolv.NewObject(detX, detY+detH+proj.Pixels(cfg.Hoop.BlockerOffset), detW, 1, tags.ResolvBlocker))

	hp := components.HoopPart.Get(board)
	hp.RingX, hp.RingY, hp.RimX = ringX, ringY, rimX

	return HoopBodies{
		Backboard: board,
		Detector:  detector,
		Ring:      proj.ToWorld(ringX, ringY),
	}
}

func spawnHoopPart(ecs *ecs.ECS, part components.HoopPartID, obj *resolv.Object) *donburi.Entry {
	entry := archetypes.HoopPart.Spawn(ecs)
	components.HoopPart.SetValue(entry, components.HoopPartData{Part: part})
	components.Body.SetValue(entry, components.BodyData{
		Restitution: cfg.Hoop.Restitution,
	})
	addToSpace(ecs, entry, obj)
	return entry
}
