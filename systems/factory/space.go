package factory

import (
	"github.com/automoto/troveyball/archetypes"
	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace links obj to entry and registers it with the room's collision
// space, if there is one.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// Projection returns the room projection, or one over the whole screen
// before a room exists.
func Projection(ecs *ecs.ECS) gamemath.Projection {
	if entry, ok := components.Room.First(ecs.World); ok {
		return components.Room.Get(entry).Projection
	}
	return gamemath.Projection{
		PixelsPerMeter: cfg.Room.PixelsPerMeter,
		FloorY:         float64(cfg.C.Height),
	}
}
