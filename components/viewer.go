package components

import (
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ViewerData is the simulated device camera.
type ViewerData struct {
	Position gamemath.Vec3
	Pitch    float64 // radians above the horizon
}

// Pose returns the viewer transform.
func (v *ViewerData) Pose() gamemath.Pose {
	return gamemath.PitchedPose(v.Position, v.Pitch)
}

var Viewer = donburi.NewComponentType[ViewerData]()
