package systems

import (
	"math"

	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives each fighter's activity label for the snapshot.
// An attack label set by the combat system is held for its timer before
// movement labels take over.
func UpdateStates(e *ecs.ECS) {
	if matchData(e).GameOver {
		return
	}

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		if state.Timer > 0 {
			state.Timer--
			return
		}

		phys := components.Physics.Get(entry)
		switch {
		case !phys.OnGround:
			state.Current = cfg.Jumping
		case math.Abs(phys.SpeedX) > cfg.RunThreshold:
			state.Current = cfg.Running
		default:
			state.Current = cfg.Idle
		}
	})
}
