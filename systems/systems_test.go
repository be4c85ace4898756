package systems

import (
	"testing"

	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/roster"
	"github.com/minibrawl/minibrawl/stage"
	"github.com/minibrawl/minibrawl/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundY is the top of the default stage's ground slab.
const groundY = 520.0

type world struct {
	ecs      *ecs.ECS
	match    *components.MatchData
	fighters [2]*donburi.Entry
}

func newWorldSpecs(t *testing.T, spec0, spec1 *roster.Fighter) *world {
	t.Helper()

	st := stage.Default()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, int(st.Width), int(st.Height), cfg.Sim.SpaceCellSize, cfg.Sim.SpaceCellSize)
	factory.CreateStage(e, st)
	match := factory.CreateMatch(e)

	w := &world{ecs: e, match: components.Match.Get(match)}
	w.fighters[0] = factory.CreateFighter(e, 0, spec0, st.Spawns[0].X, st.Spawns[0].Y)
	w.fighters[1] = factory.CreateFighter(e, 1, spec1, st.Spawns[1].X, st.Spawns[1].Y)
	return w
}

func newWorld(t *testing.T, id0, id1 string) *world {
	t.Helper()

	table, err := roster.Load()
	require.NoError(t, err)
	spec0, ok := table[id0]
	require.True(t, ok, "unknown fighter %q", id0)
	spec1, ok := table[id1]
	require.True(t, ok, "unknown fighter %q", id1)

	return newWorldSpecs(t, spec0, spec1)
}

// step advances the tick and runs the given systems in order.
func (w *world) step(fns ...func(*ecs.ECS)) {
	w.match.Tick++
	for _, fn := range fns {
		fn(w.ecs)
	}
}

func (w *world) place(i int, x, y float64) {
	obj := components.Object.Get(w.fighters[i])
	obj.X, obj.Y = x, y
	obj.Update()
}

func (w *world) fighter(i int) *components.FighterData {
	return components.Fighter.Get(w.fighters[i])
}

func (w *world) physics(i int) *components.PhysicsData {
	return components.Physics.Get(w.fighters[i])
}

func (w *world) object(i int) *components.ObjectData {
	return components.Object.Get(w.fighters[i])
}

func (w *world) setIntent(i int, intent components.Intent) {
	components.Input.Get(w.fighters[i]).Current = intent
}

func countTag(w *world, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}
