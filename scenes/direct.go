package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/burgerspin/archetypes"
	"github.com/automoto/burgerspin/assets"
	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/automoto/burgerspin/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DirectScene produces the same world as DummyScene but writes the scene
// state and component values straight into the ECS.
type DirectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	err          error
}

// NewDirectScene creates the struct-field variant of the dummy scene
func NewDirectScene(sc SceneChanger) *DirectScene {
	return &DirectScene{sceneChanger: sc}
}

func (ds *DirectScene) Update() error {
	ds.once.Do(ds.configure)
	if ds.err != nil {
		return ds.err
	}
	ds.ecs.Update()
	return handleRequests(ds.ecs, ds.sceneChanger, func() interface{} {
		return NewDummyScene(ds.sceneChanger)
	})
}

func (ds *DirectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DirectScene) configure() {
	ds.ecs = newSceneECS()

	sprite, err := assets.LoadSprite(assets.MustReadImage(assets.Burger))
	if err != nil {
		ds.err = fmt.Errorf("scene setup: %w", err)
		log.Printf("[scene] %v", ds.err)
		return
	}
	res := archetypes.Resources.Spawn(ds.ecs)
	components.Resources.SetValue(res, components.ResourcesData{Sprite: sprite})

	if cam, ok := components.Camera.First(ds.ecs.World); ok {
		components.Camera.Get(cam).Scale = cfg.Camera.Scale
	}

	PopulateDirect(ds.ecs)
}

// PopulateDirect spawns the configured dummies by setting component values.
func PopulateDirect(e *ecs.ECS) {
	for _, s := range cfg.Dummy.Spawns {
		size := math.NewVec2(s.Width, s.Height)
		dummy := archetypes.Dummy.Spawn(e)
		components.Transform.SetValue(dummy, components.TransformData{
			Translation: math.NewVec2(s.TranslationX, s.TranslationY),
		})
		components.Model.SetValue(dummy, factory.NewCuboidModel(size))
	}
}
