package components

import (
	"github.com/automoto/troveyball/shared/roomdata"
	"github.com/yohamta/donburi"
)

// SurfaceData is a room surface and whether the tracker has reported it yet.
type SurfaceData struct {
	roomdata.Surface
	Detected bool
}

var Surface = donburi.NewComponentType[SurfaceData]()

// PlaneMarkerData outlines a detected plane.
type PlaneMarkerData struct {
	PlaneID    int
	X, Y, W, H float64
}

var PlaneMarker = donburi.NewComponentType[PlaneMarkerData]()
