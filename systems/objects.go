package systems

import (
	"github.com/automoto/troveyball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// destroyEntities removes entries from the world, taking their objects out
// of the collision space first.
func destroyEntities(entries []*donburi.Entry) {
	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}

// destroyTagged removes every entity carrying tag.
func destroyTagged(ecs *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	var doomed []*donburi.Entry
	tag.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	destroyEntities(doomed)
}
