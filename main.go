package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/troveyball/assets"
	"github.com/automoto/troveyball/config"
	"github.com/automoto/troveyball/fonts"
	"github.com/automoto/troveyball/scenes"
	"github.com/automoto/troveyball/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(room string) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewCourtScene(g, room)
	} else {
		g.scene = scenes.NewMenuScene(g, room)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skipmenu", false, "start in the court without the title screen")
	debug := flag.Bool("debug", false, "draw collision boxes and log session events")
	room := flag.String("room", config.Room.DefaultRoom, "room to play in")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.Overlay = *debug
	config.Debug.LogEvents = *debug

	if _, err := assets.LoadRoom(*room); err != nil {
		log.Fatalf("Invalid -room: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Trovey Ball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*room)); err != nil {
		log.Fatal(err)
	}
}
