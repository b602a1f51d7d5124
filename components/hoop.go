package components

import "github.com/yohamta/donburi"

// HoopPartID identifies one piece of a placed hoop.
type HoopPartID int

const (
	HoopBackboard HoopPartID = iota
	HoopRim
	HoopBlocker
)

type HoopPartData struct {
	Part HoopPartID
	// Ring centre and rim front in pixels, for drawing the rim bar.
	RingX, RingY float64
	RimX         float64
}

var HoopPart = donburi.NewComponentType[HoopPartData]()
