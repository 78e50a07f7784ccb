package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ResourcesData holds assets shared by every dummy in a scene.
// It is a singleton and is not modified after scene setup.
type ResourcesData struct {
	Sprite *ebiten.Image
}

var Resources = donburi.NewComponentType[ResourcesData]()
