package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/troveyball/components"
	"github.com/automoto/troveyball/session"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/automoto/troveyball/systems/factory"
	"github.com/automoto/troveyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoRoom       = errors.New("no room loaded")
	ErrUnknownPlane = errors.New("unknown plane")
)

var kindTags = map[session.ObjectKind]*donburi.ComponentType[donburi.Tag]{
	session.KindBall:        tags.Ball,
	session.KindHoop:        tags.Hoop,
	session.KindDetector:    tags.Detector,
	session.KindPlaneMarker: tags.PlaneMarker,
}

// Court places and removes scene objects on behalf of the session.
type Court struct {
	ecs    *ecs.ECS
	nextID uint64
}

func NewCourt(e *ecs.ECS) *Court {
	return &Court{ecs: e}
}

func (c *Court) newID() session.BodyID {
	c.nextID++
	return session.BodyID(c.nextID)
}

func (c *Court) AddPlaneMarker(anchor session.PlaneAnchor) error {
	entry, ok := findSurface(c.ecs, anchor.ID)
	if !ok {
		return fmt.Errorf("plane %d: %w", anchor.ID, ErrUnknownPlane)
	}
	factory.CreatePlaneMarker(c.ecs, components.Surface.Get(entry).Surface)
	return nil
}

func (c *Court) PlaceHoop(at gamemath.Vec3) (session.HoopPlacement, error) {
	if _, ok := components.Space.First(c.ecs.World); !ok {
		return session.HoopPlacement{}, ErrNoRoom
	}
	hoopID, detectorID := c.newID(), c.newID()
	bodies := factory.CreateHoop(c.ecs, at, uint64(hoopID), uint64(detectorID), uint32(session.CategoryRing))
	return session.HoopPlacement{
		Hoop:     hoopID,
		Detector: detectorID,
		Ring:     bodies.Ring,
	}, nil
}

func (c *Court) SpawnBall(spec session.BallSpec) (session.BodyID, error) {
	if _, ok := components.Space.First(c.ecs.World); !ok {
		return 0, ErrNoRoom
	}
	id := c.newID()
	factory.CreateBall(c.ecs, factory.BallParams{
		ID:          uint64(id),
		Position:    spec.Position,
		Impulse:     spec.Impulse,
		Radius:      spec.Radius,
		Restitution: spec.Restitution,
		Mass:        spec.Mass,
		Category:    uint32(spec.Category),
		ContactMask: uint32(spec.ContactMask),
	})
	return id, nil
}

func (c *Court) Celebrate(at gamemath.Vec3) {
	factory.CreateConfetti(c.ecs, at)
}

func (c *Court) Remove(kinds ...session.ObjectKind) {
	for _, kind := range kinds {
		if tag, ok := kindTags[kind]; ok {
			destroyTagged(c.ecs, tag)
		}
	}
}

func findSurface(e *ecs.ECS, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Surface.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Surface.Get(entry).ID == id {
			found = entry
		}
	})
	return found, found != nil
}
