package systems

import (
	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates fighter motion: gravity, ground friction,
// position update and one-sided platform landing.
func UpdatePhysics(e *ecs.ECS) {
	if matchData(e).GameOver {
		return
	}

	st := stageData(e)

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		phys := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		phys.SpeedY += cfg.Sim.Gravity
		if phys.OnGround {
			phys.SpeedX *= cfg.Sim.GroundFriction
		}

		obj.X += phys.SpeedX
		obj.Y += phys.SpeedY
		obj.Update()

		resolveLanding(obj, phys, st.LandingTolerance)
	})
}

// resolveLanding lands a falling fighter on any platform its feet
// crossed this tick. Platforms are one sided: rising fighters and
// fighters that were already below the surface pass through.
func resolveLanding(obj *components.ObjectData, phys *components.PhysicsData, tolerance float64) {
	phys.OnGround = false

	if phys.SpeedY < 0 {
		return
	}

	check := obj.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return
	}
	for _, p := range check.Objects {
		if !overlaps(obj.Object, p) {
			continue
		}
		prevBottom := obj.Y + obj.H - phys.SpeedY
		if prevBottom > p.Y+tolerance {
			continue
		}
		obj.Y = p.Y - obj.H
		obj.Update()
		phys.SpeedY = 0
		phys.OnGround = true
		break
	}
}
