package systems

import (
	"math"

	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/automoto/troveyball/systems/factory"
	"github.com/automoto/troveyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBalls applies gravity to thrown balls, moves them through the
// collision space and bounces them off solid objects. Balls that leave the
// room are destroyed.
func UpdateBalls(ecs *ecs.ECS) {
	roomEntry, ok := components.Room.First(ecs.World)
	if !ok {
		return
	}
	room := components.Room.Get(roomEntry)
	proj := factory.Projection(ecs)
	dt := 1.0 / float64(cfg.C.TPS)

	detectors := detectorObjects(ecs)

	var lost []*donburi.Entry
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		ball := components.Ball.Get(e)
		obj := components.Object.Get(e)

		body.Velocity.Y = gamemath.ApplyGravity(body.Velocity.Y, cfg.Room.Gravity, dt)
		body.Velocity.Y = gamemath.ClampSpeed(body.Velocity.Y, cfg.Throw.MaxBallSpeed)
		body.Velocity.Z = gamemath.ClampSpeed(body.Velocity.Z, cfg.Throw.MaxBallSpeed)

		dx, dy := proj.ScreenDelta(body.Velocity, dt)
		steps := substeps(dx, dy, obj.W/2)
		for i := 0; i < steps; i++ {
			if moveBallHorizontal(body, obj.Object, dx/float64(steps)) {
				ball.Bounces++
			}
			if moveBallVertical(body, obj.Object, dy/float64(steps)) {
				ball.Bounces++
			}
			sweepDetectors(ball, body, obj.Object, detectors)
		}
		obj.Update()

		if obj.Y > float64(room.Height) || obj.X+obj.W < 0 || obj.X > float64(room.Width) {
			lost = append(lost, e)
		}
	})
	destroyEntities(lost)
}

// detectorObjects returns the collision object of every detector by body ID.
func detectorObjects(ecs *ecs.ECS) map[uint64]*resolv.Object {
	detectors := map[uint64]*resolv.Object{}
	tags.Detector.Each(ecs.World, func(e *donburi.Entry) {
		detectors[components.Body.Get(e).ID] = components.Object.Get(e).Object
	})
	return detectors
}

// sweepDetectors remembers detectors the ball overlaps part way through a
// tick, so a fast ball that crosses one between two contact checks is
// still reported. Only a falling ball enters a detector.
func sweepDetectors(ball *components.BallData, body *components.BodyData, obj *resolv.Object, detectors map[uint64]*resolv.Object) {
	if body.Velocity.Y >= 0 {
		return
	}
	for id, det := range detectors {
		if !overlaps(obj, det, 0, 0) {
			continue
		}
		if ball.Swept == nil {
			ball.Swept = map[uint64]bool{}
		}
		ball.Swept[id] = true
	}
}

// substeps splits a move so no single step is longer than maxStep.
func substeps(dx, dy, maxStep float64) int {
	if maxStep <= 0 {
		return 1
	}
	n := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / maxStep))
	if n < 1 {
		n = 1
	}
	return n
}

// moveBallHorizontal moves the ball by dx pixels, stopping against and
// bouncing off the first solid in the way. It reports whether it bounced.
func moveBallHorizontal(body *components.BodyData, ball *resolv.Object, dx float64) bool {
	if dx == 0 {
		return false
	}
	solid := blockingObject(ball, dx, 0, tags.ResolvSolid)
	if solid == nil {
		ball.X += dx
		return false
	}
	if dx > 0 {
		ball.X = solid.X - ball.W
	} else {
		ball.X = solid.X + solid.W
	}
	body.Velocity.Z = gamemath.Bounce(body.Velocity.Z, restitutionAgainst(body, solid))
	return true
}

// moveBallVertical is moveBallHorizontal for dy. Balls moving up are also
// stopped by hoop blockers.
func moveBallVertical(body *components.BodyData, ball *resolv.Object, dy float64) bool {
	if dy == 0 {
		return false
	}
	solid := blockingObject(ball, 0, dy, tags.ResolvSolid)
	if solid == nil && dy < 0 {
		solid = blockingObject(ball, 0, dy, tags.ResolvBlocker)
	}
	if solid == nil {
		ball.Y += dy
		return false
	}
	if dy > 0 {
		ball.Y = solid.Y - ball.H
	} else {
		ball.Y = solid.Y + solid.H
	}
	body.Velocity.Y = gamemath.Bounce(body.Velocity.Y, restitutionAgainst(body, solid))
	return true
}

// blockingObject returns the nearest object with tag that the ball would
// overlap after moving by (dx, dy), or nil.
func blockingObject(ball *resolv.Object, dx, dy float64, tag string) *resolv.Object {
	check := ball.Check(dx, dy, tag)
	if check == nil {
		return nil
	}
	var nearest *resolv.Object
	nearestDist := math.Inf(1)
	for _, o := range check.ObjectsByTags(tag) {
		if !overlaps(ball, o, dx, dy) || overlaps(ball, o, 0, 0) {
			continue
		}
		d := math.Abs(o.X-ball.X) + math.Abs(o.Y-ball.Y)
		if d < nearestDist {
			nearest, nearestDist = o, d
		}
	}
	return nearest
}

// overlaps reports whether a moved by (dx, dy) intersects b.
func overlaps(a, b *resolv.Object, dx, dy float64) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && ax+a.W > b.X && ay < b.Y+b.H && ay+a.H > b.Y
}

// restitutionAgainst combines the ball's restitution with the other body's,
// when it has one.
func restitutionAgainst(body *components.BodyData, other *resolv.Object) float64 {
	r := body.Restitution
	if entry, ok := other.Data.(*donburi.Entry); ok && entry.Valid() && entry.HasComponent(components.Body) {
		if or := components.Body.Get(entry).Restitution; or > 0 {
			r *= or
		}
	}
	return r
}
