package roomdata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/lafriks/go-tiled"
)

// Object group names read from room maps.
const (
	SurfacesGroup = "Surfaces"
	ViewerGroup   = "Viewer"
)

var (
	ErrNoSurfaces = errors.New("room has no surfaces")
	ErrNoViewer   = errors.New("room has no viewer point")
)

// LoadRoom parses a TMX file from fsys. Surfaces come back ordered by
// detection time, then left to right.
func LoadRoom(fsys fs.FS, tmxPath string) (*Room, error) {
	roomMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	room := &Room{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  roomMap.Width * roomMap.TileWidth,
		Height: roomMap.Height * roomMap.TileHeight,
	}

	viewerFound := false
	for _, og := range roomMap.ObjectGroups {
		switch og.Name {
		case SurfacesGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				ms := o.Properties.GetInt("detectAfterMs")
				if ms < 0 {
					ms = 0
				}
				room.Surfaces = append(room.Surfaces, Surface{
					ID:          int(o.ID),
					Name:        o.Name,
					X:           o.X,
					Y:           o.Y,
					W:           o.Width,
					H:           o.Height,
					DetectAfter: time.Duration(ms) * time.Millisecond,
				})
			}
		case ViewerGroup:
			if len(og.Objects) == 0 {
				continue
			}
			room.Viewer = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
			viewerFound = true
		}
	}

	if len(room.Surfaces) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSurfaces)
	}
	if !viewerFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoViewer)
	}

	sort.SliceStable(room.Surfaces, func(i, j int) bool {
		a, b := room.Surfaces[i], room.Surfaces[j]
		if a.DetectAfter != b.DetectAfter {
			return a.DetectAfter < b.DetectAfter
		}
		return a.X < b.X
	})

	return room, nil
}

// LoadAllRooms discovers all .tmx files in roomsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllRooms(fsys fs.FS, roomsDir string) (map[string]*Room, []string, error) {
	pattern := roomsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", roomsDir)
	}

	rooms := make(map[string]*Room, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		room, err := LoadRoom(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		rooms[room.Name] = room
		names = append(names, room.Name)
	}

	sort.Strings(names)
	return rooms, names, nil
}
