package components

import (
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the physics side of a ball, hoop part or detector. Hoop
// parts and detectors never move; their restitution still applies to
// bounces.
type BodyData struct {
	ID          uint64
	Velocity    gamemath.Vec3 // metres/second
	Restitution float64
	Mass        float64
	Category    uint32
	ContactMask uint32 // categories this body reports contacts with
}

var Body = donburi.NewComponentType[BodyData]()
