package systems

import (
	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStocks checks both fighters against the blast lines. Crossing
// one on the last stock ends the match immediately, with no respawn;
// otherwise the fighter loses a stock and respawns clean at its spawn
// point. Both fighters losing their last stock on the same tick is a
// draw.
func UpdateStocks(e *ecs.ECS) {
	match := matchData(e)
	if match.GameOver {
		return
	}
	st := stageData(e)

	fighters := fighterEntries(e)
	if len(fighters) != 2 {
		return
	}

	var out, fatal [2]bool
	for i, entry := range fighters {
		obj := components.Object.Get(entry)
		if obj.Y > st.Height+st.BlastMargin ||
			obj.X+obj.W < -st.BlastMargin ||
			obj.X > st.Width+st.BlastMargin {
			out[i] = true
			fatal[i] = components.Fighter.Get(entry).Stocks <= 1
		}
	}

	switch {
	case fatal[0] && fatal[1]:
		match.End(components.WinnerDraw)
	case fatal[0]:
		match.End(components.Fighter.Get(fighters[1]).Index)
	case fatal[1]:
		match.End(components.Fighter.Get(fighters[0]).Index)
	}
	if match.GameOver {
		return
	}

	for i, entry := range fighters {
		if out[i] {
			respawn(entry)
		}
	}
}

// respawn costs a stock and puts the fighter back at its spawn point,
// clean: zero percent, zero velocity, idle.
func respawn(entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	obj := components.Object.Get(entry)
	phys := components.Physics.Get(entry)
	state := components.State.Get(entry)

	fighter.KO(cfg.Sim.StartingStocks)
	fighter.Percent = 0

	obj.X = fighter.SpawnX - obj.W/2
	obj.Y = fighter.SpawnY - obj.H/2
	obj.Update()

	*phys = components.PhysicsData{}
	state.Current = cfg.Idle
	state.Timer = 0
}
