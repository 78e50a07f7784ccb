package scenes

import (
	"github.com/automoto/burgerspin/assets"
	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/automoto/burgerspin/systems"
	"github.com/automoto/burgerspin/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Context is handed to a scene's setup callback. It wraps the scene's ECS with
// the calls a setup needs so it never has to touch archetypes directly.
type Context struct {
	ecs *ecs.ECS
}

// NewContext wraps an existing ECS.
func NewContext(e *ecs.ECS) *Context {
	return &Context{ecs: e}
}

// World exposes the underlying donburi world.
func (c *Context) World() donburi.World {
	return c.ecs.World
}

// CreateSprite decodes encoded image bytes into a sprite.
func (c *Context) CreateSprite(data []byte) (*ebiten.Image, error) {
	return assets.LoadSprite(data)
}

// InsertSceneState stores the shared resources of the scene.
func (c *Context) InsertSceneState(res components.ResourcesData) {
	factory.CreateResources(c.ecs, res)
}

// SceneState returns the shared resources, or nil before InsertSceneState.
func (c *Context) SceneState() *components.ResourcesData {
	entry, ok := components.Resources.First(c.ecs.World)
	if !ok {
		return nil
	}
	return components.Resources.Get(entry)
}

func (c *Context) SetCameraScale(scale cfg.WorldCameraScale) {
	systems.SetCameraScale(c.ecs, scale)
}

// CreateModel builds a cuboid model of the given size in world units.
func (c *Context) CreateModel(size math.Vec2) components.ModelData {
	return factory.NewCuboidModel(size)
}

// AddComponent registers a dummy with the scene.
func (c *Context) AddComponent(d Dummy) *donburi.Entry {
	return factory.CreateDummy(c.ecs, d.Translation, d.Model)
}

// FrameTime is the duration of the current tick in seconds.
func (c *Context) FrameTime() float64 {
	return systems.FrameTime(c.ecs)
}

// Dummy is a dummy component before it is registered.
type Dummy struct {
	Translation math.Vec2
	Model       components.ModelData
}

// NewDummy builds a dummy at translation with its own cuboid model of size.
func NewDummy(translation, size math.Vec2, ctx *Context) Dummy {
	return Dummy{
		Translation: translation,
		Model:       ctx.CreateModel(size),
	}
}
