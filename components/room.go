package components

import (
	"github.com/automoto/troveyball/shared/gamemath"
	"github.com/yohamta/donburi"
)

type RoomData struct {
	Name       string
	Width      int
	Height     int
	Projection gamemath.Projection
}

var Room = donburi.NewComponentType[RoomData]()
