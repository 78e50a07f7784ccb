package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ModelData is the mesh drawn for an entity. Polygon points span (0,0) to Size
// in world units and are centred on the entity's translation when drawn.
type ModelData struct {
	Polygon *resolv.ConvexPolygon
	Size    math.Vec2
}

var Model = donburi.NewComponentType[ModelData]()
