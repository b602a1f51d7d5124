package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/troveyball/assets"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title screen and lets the player pick a room
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	room         string
	once         sync.Once
}

// NewMenuScene creates a new menu scene with room preselected
func NewMenuScene(sc SceneChanger, room string) *MenuScene {
	return &MenuScene{sceneChanger: sc, room: room}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	rooms, err := assets.RoomNames()
	if err != nil {
		log.Printf("Warning: Could not list rooms: %v", err)
		rooms = []string{ms.room}
	}

	start := func(room string) {
		ms.sceneChanger.ChangeScene(NewCourtScene(ms.sceneChanger, room))
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(rooms, ms.room, start))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
