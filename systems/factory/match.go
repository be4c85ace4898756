package factory

import (
	"github.com/minibrawl/minibrawl/archetypes"
	"github.com/minibrawl/minibrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		Winner: components.WinnerNone,
	})
	return match
}
