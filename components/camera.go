package components

import (
	"github.com/automoto/burgerspin/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	// World position shown at the centre of the screen
	Position math.Vec2
	Scale    config.WorldCameraScale

	Zoom  float64      // Multiplier on top of Scale, 1.0 = none
	Intro *gween.Tween // Drives Zoom while the scene opens, nil when done
}

var Camera = donburi.NewComponentType[CameraData]()
