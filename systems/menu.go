package systems

import (
	"fmt"
	"os"

	"github.com/automoto/troveyball/components"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates an UpdateMenu system. onStart receives the selected
// room when the player starts a session.
func NewUpdateMenu(rooms []string, current string, onStart func(room string)) ecs.System {
	return func(e *ecs.ECS) {
		// Keys still held from the previous scene must not act on the first frame.
		if _, ok := components.Menu.First(e.World); !ok {
			getOrCreateMenu(e, rooms, current)
			return
		}
		menu := getOrCreateMenu(e, rooms, current)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if GetAction(input, cfg.ActionPitchUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionPitchDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionTouch).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuPlay:
				onStart(menu.Room())
			case components.MainMenuRoom:
				cycleRoom(menu)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

func cycleRoom(menu *components.MenuData) {
	if len(menu.Rooms) == 0 {
		return
	}
	menu.RoomIndex = (menu.RoomIndex + 1) % len(menu.Rooms)
}

// DrawMenu renders the title screen with the lifetime stats
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	m := components.Menu.Get(menu)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Colors.Background, false)

	titleFont := fonts.Title.Get()
	drawCentered(screen, cfg.Text.MenuTitle, titleFont, width, 80, cfg.Orange)

	optionFont := fonts.Bold.Get()
	for i, option := range m.Options {
		c := cfg.HUD.TextColor
		if i == m.SelectedIndex {
			c = cfg.Yellow
		}
		drawCentered(screen, optionLabel(m, option), optionFont, width, 140+i*26, c)
	}

	stats := GetOrCreateStats(e)
	small := fonts.Small.Get()
	drawCentered(screen, fmt.Sprintf("Rounds %d   Scored %d   Best streak %d",
		stats.RoundsPlayed, stats.RoundsScored, stats.BestStreak), small, width, 250, cfg.LightBlue)
	hint := getMenuHint(getOrCreateInput(e).LastInputMethod)
	drawCentered(screen, hint, small, width, int(height)-12, cfg.HUD.TextColor)
}

// getMenuHint returns the hint for the device the player used last
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputMouse, components.InputTouch:
		return cfg.Text.MenuHint.Pointer
	case components.InputGamepad:
		return cfg.Text.MenuHint.Gamepad
	}
	return cfg.Text.MenuHint.Keyboard
}

func optionLabel(m *components.MenuData, option components.MainMenuOption) string {
	switch option {
	case components.MainMenuPlay:
		return "Play"
	case components.MainMenuRoom:
		return "Room: " + m.Room()
	case components.MainMenuExit:
		return "Exit"
	}
	return ""
}

// getOrCreateMenu returns the singleton Menu component, creating if needed
func getOrCreateMenu(e *ecs.ECS, rooms []string, current string) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}

	index := 0
	for i, name := range rooms {
		if name == current {
			index = i
		}
	}
	entry := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(entry, components.MenuData{
		Options:   []components.MainMenuOption{components.MainMenuPlay, components.MainMenuRoom, components.MainMenuExit},
		Rooms:     rooms,
		RoomIndex: index,
	})
	return components.Menu.Get(entry)
}
