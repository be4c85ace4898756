package systems

import (
	"github.com/minibrawl/minibrawl/components"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput applies each fighter's current intent to its movement
// state. Horizontal input accelerates by the fighter's speed stat and
// turns the fighter; jumps only fire from the ground. Attack triggers
// are consumed later by the combat system.
func UpdateInput(e *ecs.ECS) {
	if matchData(e).GameOver {
		return
	}

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		in := components.Input.Get(entry).Current
		fighter := components.Fighter.Get(entry)
		phys := components.Physics.Get(entry)

		move := in.Move
		if move < -1 || move > 1 {
			move = 0
		}
		if move != 0 {
			phys.SpeedX += float64(move) * fighter.Spec.Speed
			fighter.Facing = float64(move)
		}

		if in.Jump && phys.OnGround {
			phys.SpeedY = fighter.Spec.JumpStrength
			phys.OnGround = false
		}
	})
}
