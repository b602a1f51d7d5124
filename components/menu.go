package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuRoom
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int              // Current selection index in Options
	Options       []MainMenuOption // Options to display
	Rooms         []string         // Embedded rooms the player can cycle through
	RoomIndex     int
}

// Room returns the selected room name, or "" when there are none.
func (m *MenuData) Room() string {
	if len(m.Rooms) == 0 {
		return ""
	}
	return m.Rooms[m.RoomIndex]
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
