// Package roomdata loads simulated room layouts from Tiled maps. It has no
// dependencies on ebitengine, donburi or resolv.
package roomdata

import "time"

// Room holds everything the simulated tracker needs about one room.
type Room struct {
	Name     string
	Width    int // pixels
	Height   int
	Surfaces []Surface
	Viewer   Point
}

// Surface is a rectangle the tracker reports as a plane once DetectAfter has
// elapsed.
type Surface struct {
	ID          int
	Name        string
	X, Y, W, H  float64
	DetectAfter time.Duration
}

// Vertical reports whether the surface is a wall rather than a floor or a
// table top.
func (s Surface) Vertical() bool {
	return s.H > s.W
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}
