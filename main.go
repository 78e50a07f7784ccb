package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/burgerspin/config"
	"github.com/automoto/burgerspin/fonts"
	"github.com/automoto/burgerspin/scenes"
	"github.com/automoto/burgerspin/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
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

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.UI.DebugFontSize); err != nil {
		log.Printf("Warning: Could not load debug font: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.DirectScene {
		g.scene = scenes.NewDirectScene(g)
	} else {
		g.scene = scenes.NewDummyScene(g)
	}

	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func parseFlags() {
	flag.BoolVar(&config.Debug.DirectScene, "direct", false, "Build the scene by writing component values directly")
	flag.BoolVar(&config.Debug.ShowHUD, "debug", false, "Start with the debug overlay visible")
	flag.BoolVar(&config.Debug.DisableSaves, "nosave", false, "Do not load or save settings")
	flag.StringVar(&config.Debug.ScenePath, "scene", "", "YAML file with an alternative dummy layout")
	flag.IntVar(&config.C.Width, "width", config.C.Width, "Window width in pixels")
	flag.IntVar(&config.C.Height, "height", config.C.Height, "Window height in pixels")
	flag.Parse()
}

func main() {
	parseFlags()

	if config.Debug.ScenePath != "" {
		layout, err := config.LoadLayout(config.Debug.ScenePath)
		if err != nil {
			log.Fatalf("Failed to load scene layout: %v", err)
		}
		layout.Apply()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if !config.Debug.DisableSaves {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		saved, err := systems.LoadSettings()
		if err != nil {
			log.Printf("Warning: Could not load settings: %v", err)
		}
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil && !scenes.IsTermination(err) {
		log.Fatal(err)
	}
}
