package systems

import (
	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/session"
	"github.com/automoto/troveyball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for device IDs to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.PointerSet = false
	input.PitchAxis = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				input.LastInputMethod = components.InputKeyboard
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				input.LastInputMethod = components.InputMouse
				x, y := ebiten.CursorPosition()
				input.PointerX, input.PointerY, input.PointerSet = x, y, true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					input.LastInputMethod = components.InputGamepad
				}
			}
		}
	}

	// Any touch acts as the touch action, at the first finger.
	if len(touchIDs) > 0 {
		input.Current[cfg.ActionTouch] = true
		input.LastInputMethod = components.InputTouch
		x, y := ebiten.TouchPosition(touchIDs[0])
		input.PointerX, input.PointerY, input.PointerSet = x, y, true
	}

	input.PitchAxis = analogPitch(gamepadIDs)
}

// analogPitch reads the left stick's vertical axis from the first gamepad
// outside the deadzone. Up is positive.
func analogPitch(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if v < -deadzone || v > deadzone {
			return -v
		}
	}
	return 0
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// SessionInput receives the touch events the session reacts to.
type SessionInput interface {
	TouchDown()
	TouchUp()
	Tap(p session.ScreenPoint)
}

// AimSource supplies a tap position for presses that have no pointer.
type AimSource interface {
	AimPoint() (session.ScreenPoint, bool)
}

// NewUpdateSessionInput turns polled actions into session touch events and
// viewer pitch. While blocked reports true (a dialog is up) presses are not
// forwarded; a release is only forwarded for a press that was.
func NewUpdateSessionInput(target SessionInput, aim AimSource, blocked func() bool, onBack func()) ecs.System {
	holding := false

	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			onBack()
			return
		}
		if GetAction(input, cfg.ActionDebug).JustPressed {
			cfg.Debug.Overlay = !cfg.Debug.Overlay
		}

		updateViewerPitch(ecs, input)

		touch := GetAction(input, cfg.ActionTouch)
		if touch.JustPressed && !blocked() {
			holding = true
			target.TouchDown()

			p := session.ScreenPoint{X: float64(input.PointerX), Y: float64(input.PointerY)}
			ok := input.PointerSet
			if !ok {
				p, ok = aim.AimPoint()
			}
			if ok {
				target.Tap(p)
			}
		}
		if touch.JustReleased && holding {
			holding = false
			target.TouchUp()
		}
	}
}

func updateViewerPitch(ecs *ecs.ECS, input *components.InputData) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return
	}
	viewer := components.Viewer.Get(entry)

	delta := input.PitchAxis
	if input.Current[cfg.ActionPitchUp] {
		delta++
	}
	if input.Current[cfg.ActionPitchDown] {
		delta--
	}
	viewer.Pitch = clamp(viewer.Pitch+delta*cfg.Room.PitchSpeed, cfg.Room.MinPitch, cfg.Room.MaxPitch)
}
