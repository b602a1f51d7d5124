package components

import (
	cfg "github.com/automoto/troveyball/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputTouch
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
	// Where the last pointer press happened. Valid when PointerSet is true.
	PointerX, PointerY int
	PointerSet         bool
	PitchAxis          float64 // analog pitch in [-1, 1], up is positive
}

var Input = donburi.NewComponentType[InputData]()
