package factory

import (
	"github.com/minibrawl/minibrawl/archetypes"
	"github.com/minibrawl/minibrawl/components"
	"github.com/minibrawl/minibrawl/stage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage stores the arena singleton and spawns its platform
// collision objects.
func CreateStage(ecs *ecs.ECS, s *stage.Stage) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.Set(entry, s)

	for _, p := range s.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.W, p.H)
	}

	return entry
}
