package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/troveyball/assets"
	cfg "github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/schedule"
	"github.com/automoto/troveyball/session"
	"github.com/automoto/troveyball/systems"
	"github.com/automoto/troveyball/systems/factory"
	"github.com/automoto/troveyball/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// courtUI joins the HUD and the dialogs into the session's UI collaborator.
type courtUI struct {
	*systems.HUD
	*ui.ModalUI
}

// CourtScene runs one play session in a simulated room
type CourtScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	room         string
	once         sync.Once

	clock   *schedule.Scheduler
	session *session.Controller
	modal   *ui.ModalUI
	left    bool
}

// NewCourtScene creates a court scene for the named embedded room
func NewCourtScene(sc SceneChanger, room string) *CourtScene {
	return &CourtScene{sceneChanger: sc, room: room}
}

func (cs *CourtScene) Update() {
	cs.once.Do(cs.configure)

	cs.modal.Update()
	cs.ecs.Update()
	if cs.left {
		return
	}
	cs.clock.Advance(time.Second / time.Duration(cfg.C.TPS))
}

func (cs *CourtScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
	cs.modal.Draw(screen)
}

func (cs *CourtScene) configure() {
	room, err := assets.LoadRoom(cs.room)
	if err != nil {
		log.Fatalf("Failed to load room: %v", err)
	}

	cs.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateRoom(cs.ecs, room)

	cs.clock = schedule.New()
	cs.modal = ui.NewModalUI(func(title, action string) {
		log.Printf("%s: %s", title, action)
	})

	court := systems.NewCourt(cs.ecs)
	tracker := systems.NewRoomTracker(cs.ecs)
	cs.session = session.New(tracker, court,
		courtUI{HUD: systems.NewHUD(cs.ecs), ModalUI: cs.modal},
		cs.clock,
		session.WithRoundObserver(systems.NewStatsObserver(cs.ecs)),
	)
	tracker.ScheduleDetection(cs.clock, cs.session.PlaneDetected)

	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.NewUpdateSessionInput(cs.session, tracker, cs.modal.IsOpen, cs.leave))
	cs.ecs.AddSystem(systems.UpdateBalls)
	cs.ecs.AddSystem(systems.UpdateObjects)
	cs.ecs.AddSystem(systems.NewUpdateContacts(cs.session))
	cs.ecs.AddSystem(systems.UpdateEffects)

	cs.ecs.AddRenderer(cfg.Default, systems.DrawCourt)
	cs.ecs.AddRenderer(cfg.Foreground, systems.DrawConfetti)
	cs.ecs.AddRenderer(cfg.Foreground, systems.NewDrawHUD(cs.session))
	cs.ecs.AddRenderer(cfg.Foreground, systems.NewDrawDebug(cs.session))
}

// leave ends the session and returns to the menu.
func (cs *CourtScene) leave() {
	if cs.left {
		return
	}
	cs.left = true
	cs.session.Close()
	cs.clock.Stop()
	cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger, cs.room))
}
