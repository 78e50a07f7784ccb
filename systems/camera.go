package systems

import (
	"math"

	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera advances the intro zoom tween.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	AdvanceCameraIntro(components.Camera.Get(cameraEntry), FrameTime(e))
}

func AdvanceCameraIntro(camera *components.CameraData, dt float64) {
	if camera.Intro == nil {
		return
	}
	zoom, done := camera.Intro.Update(float32(dt))
	camera.Zoom = float64(zoom)
	if done {
		camera.Zoom = 1
		camera.Intro = nil
	}
}

// SetCameraScale changes how much of the world the camera shows.
func SetCameraScale(e *ecs.ECS, scale cfg.WorldCameraScale) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	components.Camera.Get(cameraEntry).Scale = scale
}

// PixelsPerUnit converts a camera scale into screen pixels per world unit for
// a screen of the given size.
func PixelsPerUnit(scale cfg.WorldCameraScale, width, height int) float64 {
	if scale.Value <= 0 {
		return 1
	}
	w, h := float64(width), float64(height)
	switch scale.Mode {
	case cfg.ScaleMax:
		return math.Max(w, h) / scale.Value
	case cfg.ScaleHorizontal:
		return w / scale.Value
	case cfg.ScaleVertical:
		return h / scale.Value
	case cfg.ScaleFixed:
		return scale.Value
	default:
		return math.Min(w, h) / scale.Value
	}
}

// cameraPixelsPerUnit includes the current zoom.
func cameraPixelsPerUnit(camera *components.CameraData, width, height int) float64 {
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return PixelsPerUnit(camera.Scale, width, height) * zoom
}

// WorldToScreen maps a world point (Y up) to screen pixels (Y down).
func WorldToScreen(camera *components.CameraData, p dmath.Vec2, width, height int) (float64, float64) {
	ppu := cameraPixelsPerUnit(camera, width, height)
	x := float64(width)/2 + (p.X-camera.Position.X)*ppu
	y := float64(height)/2 - (p.Y-camera.Position.Y)*ppu
	return x, y
}
