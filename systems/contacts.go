package systems

import (
	"github.com/automoto/troveyball/components"
	"github.com/automoto/troveyball/session"
	"github.com/automoto/troveyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ContactSink receives contact-begin notifications.
type ContactSink interface {
	Contact(c session.Contact)
}

// NewUpdateContacts reports each ball's first overlap with a detector whose category is in the ball's contact mask, or the other way
// round. Overlaps swept during the tick's substeps count as well. A pair is
// reported again only after it separated.
func NewUpdateContacts(sink ContactSink) ecs.System {
	return func(ecs *ecs.ECS) {
		var began []session.Contact

		detectorBodies := map[uint64]*components.BodyData{}
		tags.Detector.Each(ecs.World, func(e *donburi.Entry) {
			body := components.Body.Get(e)
			detectorBodies[body.ID] = body
		})

		tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
			ball := components.Ball.Get(e)
			body := components.Body.Get(e)
			obj := components.Object.Get(e)

			// A pair only begins while the ball falls, so a ball rising into a
			// detector from below never scores.
			falling := body.Velocity.Y < 0
			touching := make(map[uint64]bool, len(ball.Touching))
			begin := func(other *components.BodyData, entering bool) {
				if touching[other.ID] || !reportsContact(body, other) {
					return
				}
				touching[other.ID] = true
				if entering && !ball.Touching[other.ID] {
					began = append(began, session.Contact{
						A:         session.BodyID(body.ID),
						B:         session.BodyID(other.ID),
						CategoryA: session.Category(body.Category),
						CategoryB: session.Category(other.Category),
					})
				}
			}

			// Swept overlaps were only recorded while falling.
			for id := range ball.Swept {
				if other, ok := detectorBodies[id]; ok {
					begin(other, true)
				}
			}
			if check := obj.Check(0, 0, tags.ResolvDetector); check != nil {
				for _, o := range check.ObjectsByTags(tags.ResolvDetector) {
					other, ok := o.Data.(*donburi.Entry)
					if !ok || !other.Valid() || !other.HasComponent(components.Body) {
						continue
					}
					if !overlaps(obj.Object, o, 0, 0) {
						continue
					}
					begin(components.Body.Get(other), falling)
				}
			}
			ball.Swept = nil
			ball.Touching = touching
		})

		// Dispatch after the query so the sink may spawn entities.
		for _, c := range began {
			sink.Contact(c)
		}
	}
}

func reportsContact(a, b *components.BodyData) bool {
	return a.ContactMask&b.Category != 0 || b.ContactMask&a.Category != 0
}
