package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/shared/roomdata"
)

var (
	//go:embed all:rooms
	assetFS embed.FS
)

// RoomPath returns the embedded path of a room map.
func RoomPath(name string) string {
	return path.Join(config.Room.Directory, name+".tmx")
}

// LoadRoom loads an embedded room by name.
func LoadRoom(name string) (*roomdata.Room, error) {
	room, err := roomdata.LoadRoom(assetFS, RoomPath(name))
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", name, err)
	}
	return room, nil
}

// RoomNames lists every embedded room, sorted.
func RoomNames() ([]string, error) {
	_, names, err := roomdata.LoadAllRooms(assetFS, config.Room.Directory)
	return names, err
}
