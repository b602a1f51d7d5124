package systems

import (
	"math"

	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/session"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/automoto/troveyball/shared/roomdata"
	"github.com/automoto/troveyball/systems/factory"
	"github.com/automoto/troveyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RoomTracker stands in for device surface tracking: surfaces of the loaded
// room become detectable on a schedule, and hit tests run against the
// detected ones.
type RoomTracker struct {
	ecs *ecs.ECS
}

func NewRoomTracker(e *ecs.ECS) *RoomTracker {
	return &RoomTracker{ecs: e}
}

// ScheduleDetection reports each vertical surface to notify once its
// detection delay has passed on timers. Floors and table tops stay solid but
// are never detected.
func (t *RoomTracker) ScheduleDetection(timers session.Timers, notify func(session.PlaneAnchor)) {
	proj := factory.Projection(t.ecs)
	tags.Surface.Each(t.ecs.World, func(entry *donburi.Entry) {
		surface := components.Surface.Get(entry)
		if !surface.Vertical() {
			return
		}
		timers.After(surface.DetectAfter, func() {
			if !entry.Valid() || surface.Detected {
				return
			}
			surface.Detected = true
			notify(planeAnchor(proj, surface.Surface))
		})
	})
}

func (t *RoomTracker) HitTest(p session.ScreenPoint) (session.Hit, bool) {
	proj := factory.Projection(t.ecs)
	tolerance := cfg.Room.HitTestTolerance

	var best session.Hit
	bestDist := math.Inf(1)
	tags.Surface.Each(t.ecs.World, func(entry *donburi.Entry) {
		surface := components.Surface.Get(entry)
		if !surface.Detected || !surface.Vertical() {
			return
		}
		hx, hy, ok := surfaceHit(surface.Surface, p.X, p.Y, tolerance)
		if !ok {
			return
		}
		if d := math.Hypot(hx-p.X, hy-p.Y); d < bestDist {
			bestDist = d
			best = session.Hit{Position: proj.ToWorld(hx, hy), PlaneID: surface.ID}
		}
	})
	return best, !math.IsInf(bestDist, 1)
}

func (t *RoomTracker) ViewerPose() (gamemath.Pose, bool) {
	entry, ok := tags.Viewer.First(t.ecs.World)
	if !ok {
		return gamemath.Pose{}, false
	}
	return components.Viewer.Get(entry).Pose(), true
}

// AimPoint walks the viewer's line of sight across the room and returns the
// first point that hits a detected surface.
func (t *RoomTracker) AimPoint() (session.ScreenPoint, bool) {
	pose, ok := t.ViewerPose()
	if !ok {
		return session.ScreenPoint{}, false
	}
	proj := factory.Projection(t.ecs)
	x, y := proj.ToScreen(pose.Position)
	dx, dy := proj.ScreenDelta(pose.Forward(), 1/proj.PixelsPerMeter)

	const step = 2.0
	limit := float64(cfg.C.Width + cfg.C.Height)
	for travelled := 0.0; travelled < limit; travelled += step {
		p := session.ScreenPoint{X: x + dx*travelled, Y: y + dy*travelled}
		if _, ok := t.HitTest(p); ok {
			return p, true
		}
	}
	return session.ScreenPoint{}, false
}

// surfaceHit projects (x, y) onto the face of s that looks at the viewer:
// the near side of a wall or the top of anything else. Points further than
// tolerance from s miss.
func surfaceHit(s roomdata.Surface, x, y, tolerance float64) (float64, float64, bool) {
	if x < s.X-tolerance || x > s.X+s.W+tolerance ||
		y < s.Y-tolerance || y > s.Y+s.H+tolerance {
		return 0, 0, false
	}
	if s.Vertical() {
		return s.X, clamp(y, s.Y, s.Y+s.H), true
	}
	return clamp(x, s.X, s.X+s.W), s.Y, true
}

func planeAnchor(proj gamemath.Projection, s roomdata.Surface) session.PlaneAnchor {
	// Walls face the viewer, towards +Z.
	normal := gamemath.Vec3{Z: 1}
	return session.PlaneAnchor{
		ID: s.ID,
		Pose: gamemath.Pose{
			Position: proj.ToWorld(s.X+s.W/2, s.Y+s.H/2),
			ZAxis:    normal,
		},
		Width:  proj.Meters(s.W),
		Height: proj.Meters(s.H),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
