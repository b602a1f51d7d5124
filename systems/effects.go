package systems

import (
	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances confetti and the hint fade, then destroys expired
// entities.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.C.TPS))
	updateConfetti(ecs, dt)
	updateHintFade(ecs, dt)
	updateAutoDestroy(ecs)
}

func updateConfetti(ecs *ecs.ECS, dt float32) {
	components.Confetti.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Confetti.Get(e)
		c.Progress, _ = c.Fall.Update(dt)
		c.Alpha, _ = c.Fade.Update(dt)
	})
}

func updateHintFade(ecs *ecs.ECS, dt float32) {
	hud := getOrCreateHUD(ecs)
	if hud.HintFade == nil {
		return
	}
	alpha, done := hud.HintFade.Update(dt)
	hud.HintAlpha = alpha
	if done {
		hud.HintFade = nil
		hud.HintVisible = false
	}
}

// updateAutoDestroy handles entities that should be destroyed after a duration
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	destroyEntities(toDestroy)
}
