package components

import "github.com/yohamta/donburi"

// BallData tracks a thrown ball.
type BallData struct {
	Bounces  int
	Touching map[uint64]bool // bodies currently in contact, by body ID
	Swept    map[uint64]bool // detectors passed through during this tick
}

var Ball = donburi.NewComponentType[BallData]()
