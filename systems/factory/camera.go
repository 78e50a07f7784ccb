package factory

import (
	"github.com/automoto/burgerspin/archetypes"
	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera centred on the world origin. When an intro is
// configured the camera starts zoomed out and eases in to its real scale.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{
		Scale: cfg.Camera.Scale,
		Zoom:  1,
	}
	if cfg.Camera.IntroSeconds > 0 && cfg.Camera.IntroZoomStart > 0 {
		data.Zoom = cfg.Camera.IntroZoomStart
		data.Intro = gween.New(float32(cfg.Camera.IntroZoomStart), 1, cfg.Camera.IntroSeconds, ease.OutCubic)
	}
	components.Camera.SetValue(camera, data)
	return camera
}
