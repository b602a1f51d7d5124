package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds what the session asked the HUD to show.
type HUDData struct {
	HintText    string
	HintVisible bool
	HintAlpha   float32
	HintFade    *gween.Tween // set while the hint fades out

	BallsLabel   string
	BallsVisible bool
}

var HUD = donburi.NewComponentType[HUDData]()
