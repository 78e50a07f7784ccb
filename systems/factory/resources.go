package factory

import (
	"github.com/automoto/burgerspin/archetypes"
	"github.com/automoto/burgerspin/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateResources inserts the scene state singleton. A second call replaces the
// existing value instead of spawning another entity.
func CreateResources(ecs *ecs.ECS, res components.ResourcesData) *donburi.Entry {
	entry, ok := components.Resources.First(ecs.World)
	if !ok {
		entry = archetypes.Resources.Spawn(ecs)
	}
	components.Resources.SetValue(entry, res)
	return entry
}
