package factory

import (
	"time"

	"github.com/automoto/troveyball/archetypes"
	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/automoto/troveyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BallParams describes a ball to launch.
type BallParams struct {
	ID          uint64
	Position    gamemath.Vec3
	Impulse     gamemath.Vec3
	Radius      float64
	Restitution float64
	Mass        float64
	Category    uint32
	ContactMask uint32
}

// CreateBall spawns a ball centred on p.Position and applies the launch
// impulse at once.
func CreateBall(ecs *ecs.ECS, p BallParams) *donburi.Entry {
	proj := Projection(ecs)
	entry := archetypes.Ball.Spawn(ecs)

	components.Ball.SetValue(entry, components.BallData{
		Touching: map[uint64]bool{},
	})
	components.Body.SetValue(entry, components.BodyData{
		ID:          p.ID,
		Velocity:    gamemath.VelocityFromImpulse(p.Impulse, p.Mass),
		Restitution: p.Restitution,
		Mass:        p.Mass,
		Category:    p.Category,
		ContactMask: p.ContactMask,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		FramesRemaining: framesFor(cfg.Room.BallLifetime),
	})

	cx, cy := proj.ToScreen(p.Position)
	size := proj.Pixels(2 * p.Radius)
	obj := resolv.NewObject(cx-size/2, cy-size/2, size, size, tags.ResolvBall)
	addToSpace(ecs, entry, obj)

	return entry
}

// framesFor converts a duration to update ticks, at least one.
func framesFor(d time.Duration) int {
	frames := int(d.Seconds() * float64(cfg.C.TPS))
	if frames < 1 {
		frames = 1
	}
	return frames
}
