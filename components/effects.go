package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// ConfettiData is one falling piece of the score celebration.
type ConfettiData struct {
	X, BaseY float64 // pixels
	Drift    float64 // horizontal pixels covered over the whole fall
	Distance float64 // vertical pixels covered over the whole fall
	Fall     *gween.Tween
	Fade     *gween.Tween
	Progress float32 // 0..1 along the fall
	Alpha    float32
	Color    color.RGBA
}

var Confetti = donburi.NewComponentType[ConfettiData]()
