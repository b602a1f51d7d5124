package archetypes

import (
	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Room = newArchetype(
		components.Room,
	)
	Surface = newArchetype(
		tags.Surface,
		components.Surface,
		components.Object,
	)
	PlaneMarker = newArchetype(
		tags.PlaneMarker,
		components.PlaneMarker,
	)
	Viewer = newArchetype(
		tags.Viewer,
		components.Viewer,
	)
	HoopPart = newArchetype(
		tags.Hoop,
		components.HoopPart,
		components.Object,
		components.Body,
	)
	Detector = newArchetype(
		tags.Detector,
		components.Object,
		components.Body,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
		components.Body,
		components.AutoDestroy,
	)
	Confetti = newArchetype(
		tags.Confetti,
		components.Confetti,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
