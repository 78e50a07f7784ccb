package factory

import (
	"github.com/automoto/burgerspin/archetypes"
	"github.com/automoto/burgerspin/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewCuboidModel builds a rectangular model spanning (0,0)-(size) in local space.
func NewCuboidModel(size math.Vec2) components.ModelData {
	return components.ModelData{
		Polygon: resolv.NewRectangle(0, 0, size.X, size.Y),
		Size:    size,
	}
}

// CreateDummy spawns a dummy with the given model at translation, unrotated.
func CreateDummy(ecs *ecs.ECS, translation math.Vec2, model components.ModelData) *donburi.Entry {
	dummy := archetypes.Dummy.Spawn(ecs)
	components.Transform.SetValue(dummy, components.TransformData{
		Translation: translation,
	})
	components.Model.SetValue(dummy, model)
	return dummy
}
