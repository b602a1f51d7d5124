package factory

import (
	"github.com/automoto/troveyball/archetypes"
	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/automoto/troveyball/shared/roomdata"
	"github.com/automoto/troveyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRoom builds the room entity, its collision space, every surface and
// the viewer. Surfaces start undetected.
func CreateRoom(ecs *ecs.ECS, room *roomdata.Room) *donburi.Entry {
	entry := archetypes.Room.Spawn(ecs)
	proj := gamemath.Projection{
		PixelsPerMeter: cfg.Room.PixelsPerMeter,
		FloorY:         float64(room.Height),
	}
	components.Room.SetValue(entry, components.RoomData{
		Name:       room.Name,
		Width:      room.Width,
		Height:     room.Height,
		Projection: proj,
	})

	CreateSpace(ecs, room.Width, room.Height, cfg.Room.CellSize, cfg.Room.CellSize)

	for _, s := range room.Surfaces {
		CreateSurface(ecs, s)
	}
	CreateViewer(ecs, proj.ToWorld(room.Viewer.X, room.Viewer.Y))

	return entry
}

// CreateSurface adds a solid room surface.
func CreateSurface(ecs *ecs.ECS, s roomdata.Surface) *donburi.Entry {
	entry := archetypes.Surface.Spawn(ecs)
	components.Surface.SetValue(entry, components.SurfaceData{Surface: s})

	obj := resolv.NewObject(s.X, s.Y, s.W, s.H, tags.ResolvSolid, tags.ResolvSurface)
	addToSpace(ecs, entry, obj)
	return entry
}

func CreateViewer(ecs *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	entry := archetypes.Viewer.Spawn(ecs)
	components.Viewer.SetValue(entry, components.ViewerData{
		Position: pos,
		Pitch:    cfg.Room.StartPitch,
	})
	return entry
}

// CreatePlaneMarker outlines a detected surface.
func CreatePlaneMarker(ecs *ecs.ECS, s roomdata.Surface) *donburi.Entry {
	entry := archetypes.PlaneMarker.Spawn(ecs)
	components.PlaneMarker.SetValue(entry, components.PlaneMarkerData{
		PlaneID: s.ID,
		X:       s.X,
		Y:       s.Y,
		W:       s.W,
		H:       s.H,
	})
	return entry
}
