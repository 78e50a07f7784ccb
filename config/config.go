package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// ScaleMode selects which screen dimension the camera scale value applies to
type ScaleMode int

const (
	ScaleMin        ScaleMode = iota // Value world units fit the smaller screen side
	ScaleMax                         // Value world units fit the larger screen side
	ScaleHorizontal                  // Value world units fit the screen width
	ScaleVertical                    // Value world units fit the screen height
	ScaleFixed                       // Value is pixels per world unit
)

// WorldCameraScale describes how many world units the camera shows
type WorldCameraScale struct {
	Mode  ScaleMode
	Value float64
}

// Min returns a scale that fits value world units into the smaller screen side.
func Min(value float64) WorldCameraScale {
	return WorldCameraScale{Mode: ScaleMin, Value: value}
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Scale          WorldCameraScale
	IntroZoomStart float64 // Zoom factor at scene start (1.0 = no zoom)
	IntroSeconds   float32 // Duration of the intro zoom tween
}

// DummySpawn is the initial placement of one dummy component
type DummySpawn struct {
	TranslationX, TranslationY float64
	Width, Height              float64
}

// DummyConfig contains the dummy scene layout and behavior
type DummyConfig struct {
	RotationSpeed float64 // Radians per second, negative spins clockwise on screen
	Spawns        []DummySpawn
}

// UIConfig contains debug overlay configuration
type UIConfig struct {
	DebugFontSize    float64
	DebugTextColor   color.RGBA
	DebugOutline     color.RGBA
	DebugLineSpacing int
	BackgroundColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD      bool // Start with the debug overlay visible
	DirectScene  bool // Use the struct-field scene variant
	ScenePath    string
	DisableSaves bool // Skip settings persistence
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Dummy DummyConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Title:  "burgerspin",
		Width:  800,
		Height: 600,
	}

	Camera = CameraConfig{
		Scale:          Min(5.0),
		IntroZoomStart: 0.6,
		IntroSeconds:   0.75,
	}

	UI = UIConfig{
		DebugFontSize:    12,
		DebugTextColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		DebugOutline:     color.RGBA{R: 0, G: 255, B: 255, A: 255},
		DebugLineSpacing: 16,
		BackgroundColor:  color.RGBA{R: 30, G: 30, B: 40, A: 255},
	}

	// Fall back to the compiled layout if the embedded one is broken
	Dummy = DummyConfig{
		RotationSpeed: -1.0,
		Spawns: []DummySpawn{
			{TranslationX: 3.0, TranslationY: 0.0, Width: 0.5, Height: 0.5},
			{TranslationX: -3.0, TranslationY: 1.0, Width: 1.0, Height: 1.0},
		},
	}
	if layout, err := ParseLayout(defaultLayout); err == nil {
		layout.Apply()
	}
}
