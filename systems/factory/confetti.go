package factory

import (
	"math/rand"

	"github.com/automoto/troveyball/archetypes"
	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// CreateConfetti bursts confetti around at. Pieces fall and fade over the
// configured lifetime, then destroy themselves.
func CreateConfetti(ecs *ecs.ECS, at gamemath.Vec3) {
	proj := Projection(ecs)
	x, y := proj.ToScreen(at)
	spread := proj.Pixels(cfg.Confetti.Spread)
	distance := proj.Pixels(cfg.Confetti.FallDistance)
	lifetime := float32(cfg.Timing.ConfettiLifetime.Seconds())
	frames := framesFor(cfg.Timing.ConfettiLifetime)

	for i := 0; i < cfg.Confetti.Count; i++ {
		entry := archetypes.Confetti.Spawn(ecs)
		colors := cfg.Confetti.Colors
		components.Confetti.SetValue(entry, components.ConfettiData{
			X:        x + (rand.Float64()*2-1)*spread,
			BaseY:    y - rand.Float64()*spread,
			Drift:    (rand.Float64()*2 - 1) * spread / 2,
			Distance: distance,
			Fall:     gween.New(0, 1, lifetime, ease.OutQuad),
			Fade:     gween.New(1, 0, lifetime, ease.InCubic),
			Alpha:    1,
			Color:    colors[i%len(colors)],
		})
		components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
			FramesRemaining: frames,
		})
	}
}
