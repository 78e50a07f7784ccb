package scenes

import (
	"errors"
	"fmt"
	"log"
	"sync"

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

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SetupFunc populates a freshly created scene.
type SetupFunc func(ctx *Context) error

// DummyScene builds its contents through a Context and a setup callback.
type DummyScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        SetupFunc
	once         sync.Once
	err          error
}

// NewDummyScene creates the spinning dummy scene
func NewDummyScene(sc SceneChanger) *DummyScene {
	return NewSceneWithSetup(sc, SetupDummies)
}

// NewSceneWithSetup creates a scene that runs setup once on its first update.
func NewSceneWithSetup(sc SceneChanger, setup SetupFunc) *DummyScene {
	return &DummyScene{sceneChanger: sc, setup: setup}
}

func (ds *DummyScene) Update() error {
	ds.once.Do(ds.configure)
	if ds.err != nil {
		return ds.err
	}
	ds.ecs.Update()
	return handleRequests(ds.ecs, ds.sceneChanger, func() interface{} {
		return NewDirectScene(ds.sceneChanger)
	})
}

func (ds *DummyScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DummyScene) configure() {
	ds.ecs = newSceneECS()
	if err := ds.setup(NewContext(ds.ecs)); err != nil {
		ds.err = fmt.Errorf("scene setup: %w", err)
		log.Printf("[scene] %v", ds.err)
	}
}

// SetupDummies loads the shared sprite, sets the camera scale and registers
// one dummy per configured spawn.
func SetupDummies(ctx *Context) error {
	sprite, err := ctx.CreateSprite(assets.MustReadImage(assets.Burger))
	if err != nil {
		return err
	}
	ctx.InsertSceneState(components.ResourcesData{
		Sprite: sprite,
	})
	ctx.SetCameraScale(cfg.Camera.Scale)
	SpawnDummies(ctx)
	return nil
}

// SpawnDummies registers one dummy per configured spawn.
func SpawnDummies(ctx *Context) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(cfg.Dummy.Spawns))
	for _, s := range cfg.Dummy.Spawns {
		d := NewDummy(math.NewVec2(s.TranslationX, s.TranslationY), math.NewVec2(s.Width, s.Height), ctx)
		entries = append(entries, ctx.AddComponent(d))
	}
	return entries
}

// newSceneECS creates the world with the singletons and systems shared by
// every dummy scene variant.
func newSceneECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateClock(e)
	factory.CreateCamera(e)
	factory.CreateSettings(e, systems.InitialSettings())

	// Order matters: clock first, dummies read the frame time
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateDummies)

	e.AddRenderer(cfg.Default, systems.DrawDummies)
	e.AddRenderer(cfg.Overlay, systems.DrawDebug)
	return e
}

// handleRequests acts on the quit and switch flags raised during the update.
func handleRequests(e *ecs.ECS, sc SceneChanger, next func() interface{}) error {
	settings := systems.GetOrCreateSettings(e)
	if settings.QuitRequested {
		return ebiten.Termination
	}
	if settings.SwitchRequested {
		settings.SwitchRequested = false
		systems.RememberSettings(settings)
		if sc != nil {
			sc.ChangeScene(next())
		}
	}
	return nil
}

// IsTermination reports whether err is the normal quit signal.
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
