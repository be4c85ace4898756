package factory

import (
	"math/rand"

	"github.com/minibrawl/minibrawl/archetypes"
	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/roster"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns a fighter at its spawn point (center coordinates).
// Fighter 0 starts facing right, fighter 1 facing left.
func CreateFighter(ecs *ecs.ECS, index int, spec *roster.Fighter, spawnX, spawnY float64) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(ecs)

	w, h := cfg.Sim.FighterWidth, cfg.Sim.FighterHeight
	obj := resolv.NewObject(spawnX-w/2, spawnY-h/2, w, h, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	facing := 1.0
	if index != 0 {
		facing = -1.0
	}
	components.Fighter.SetValue(fighter, components.FighterData{
		Index:          index,
		Name:           spec.Name,
		Facing:         facing,
		Stocks:         cfg.Sim.StartingStocks,
		LastAttackTick: -1000, // first attack is never cooldown-gated
		SpawnX:         spawnX,
		SpawnY:         spawnY,
		Spec:           spec,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{})
	components.Input.SetValue(fighter, components.InputData{})
	components.State.SetValue(fighter, components.StateData{
		Current: cfg.Idle,
	})

	return fighter
}

// CreateBotFighter spawns a fighter driven by the decision engine, with
// its own seeded generator.
func CreateBotFighter(ecs *ecs.ECS, index int, spec *roster.Fighter, spawnX, spawnY float64, rng *rand.Rand) *donburi.Entry {
	fighter := CreateFighter(ecs, index, spec, spawnX, spawnY)
	donburi.Add(fighter, components.Bot, &components.BotData{Rng: rng})
	return fighter
}
