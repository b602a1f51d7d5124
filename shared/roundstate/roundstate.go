// Package roundstate defines the session state IDs shared between the
// controller and the host. It must have zero dependencies on ebiten or any
// graphics library so the controller stays headless.
package roundstate

// ID identifies where the session is in the placement/throw cycle.
type ID int

const (
	NoPlaneDetected ID = iota // No surface known yet
	PlaneDetected             // Surface known, no active basket
	Idle                      // Basket placed, waiting for a touch
	Charging                  // Basket placed, touch held
	RoundEnded                // Score or depletion pending the finish
)

var idNames = map[ID]string{
	NoPlaneDetected: "no_plane_detected",
	PlaneDetected:   "plane_detected",
	Idle:            "basket_idle",
	Charging:        "basket_charging",
	RoundEnded:      "round_ended",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "unknown"
}

// EndReason records why a round finished.
type EndReason int

const (
	EndScored EndReason = iota
	EndDepleted
	EndTeardown
)

func (r EndReason) String() string {
	switch r {
	case EndScored:
		return "scored"
	case EndDepleted:
		return "depleted"
	case EndTeardown:
		return "teardown"
	}
	return "unknown"
}
