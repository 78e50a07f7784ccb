package systems

import (
	"math"

	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/automoto/burgerspin/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Rotate advances angle by frameTime at the configured rotation speed.
func Rotate(angle, frameTime float64) float64 {
	return NormalizeAngle(angle + frameTime*cfg.Dummy.RotationSpeed)
}

// NormalizeAngle wraps an angle into (-Pi, Pi].
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// UpdateDummies spins every dummy. Translation and size are left alone.
func UpdateDummies(e *ecs.ECS) {
	if GetOrCreateSettings(e).Paused {
		return
	}
	frameTime := FrameTime(e)
	tags.Dummy.Each(e.World, func(entry *donburi.Entry) {
		transform := components.Transform.Get(entry)
		transform.Angle = Rotate(transform.Angle, frameTime)
	})
}

// DrawDummies draws each dummy's own model with the scene's shared sprite.
func DrawDummies(e *ecs.ECS, screen *ebiten.Image) {
	resEntry, ok := components.Resources.First(e.World)
	if !ok {
		return
	}
	res := components.Resources.Get(resEntry)

	RenderEach(e, screen, tags.Dummy, func(r *Renderer, entry *donburi.Entry, instance components.TransformData) {
		r.RenderSprite(instance, components.Model.Get(entry), res.Sprite)
	})
}
