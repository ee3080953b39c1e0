package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/riposte/assets"
	"github.com/automoto/riposte/config"
	"github.com/automoto/riposte/scenes"
	"github.com/automoto/riposte/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "riposte"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
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
	arenaName := flag.String("arena", assets.DefaultArena, "embedded arena to load")
	flag.BoolVar(&config.Debug.NoSave, "nosave", false, "do not load or save combat stats")
	flag.BoolVar(&config.Debug.ShowHurtboxes, "hurtboxes", false, "draw attack and parry hurtboxes (toggle with F3)")
	flag.Parse()

	layout, err := assets.LoadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	if !config.Debug.NoSave {
		if err := systems.InitPersistence(appName); err != nil {
			log.Printf("[persistence] Warning: could not initialize persistence: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Riposte")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewArenaScene(layout))); err != nil {
		log.Fatal(err)
	}
}
