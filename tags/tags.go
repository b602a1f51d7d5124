package tags

import "github.com/yohamta/donburi"

var (
	Surface     = donburi.NewTag().SetName("Surface")
	PlaneMarker = donburi.NewTag().SetName("PlaneMarker")
	Hoop        = donburi.NewTag().SetName("Hoop")
	Detector    = donburi.NewTag().SetName("Detector")
	Ball        = donburi.NewTag().SetName("Ball")
	Confetti    = donburi.NewTag().SetName("Confetti")
	Viewer      = donburi.NewTag().SetName("Viewer")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvSurface  = "surface"
	ResolvRim      = "rim"
	ResolvBlocker  = "blocker"
	ResolvDetector = "detector"
	ResolvBall     = "ball"
)
