package systems

import (
	"github.com/minibrawl/minibrawl/components"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances shots along their fixed velocity, resolves
// hits against fighters other than the owner, and culls anything that
// has fully left the play area.
func UpdateProjectiles(e *ecs.ECS) {
	if matchData(e).GameOver {
		return
	}
	st := stageData(e)

	var dead []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		data := components.Projectile.Get(entry)
		phys := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		obj.X += phys.SpeedX
		obj.Y += phys.SpeedY
		obj.Update()

		if obj.X+obj.W < -st.CullMargin || obj.X > st.Width+st.CullMargin ||
			obj.Y+obj.H < -st.CullMargin || obj.Y > st.Height+st.CullMargin {
			data.Alive = false
		}

		if data.Alive {
			resolveProjectile(e, entry, data)
		}
		if !data.Alive {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		removeObject(e, entry)
	}
}

func resolveProjectile(e *ecs.ECS, entry *donburi.Entry, data *components.ProjectileData) {
	obj := components.Object.Get(entry)

	check := obj.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return
	}
	for _, o := range check.Objects {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() {
			continue
		}
		if target.Entity() == data.Owner {
			continue
		}
		if !overlaps(obj.Object, o) {
			continue
		}

		// Knockback pushes away from the shooter, not the projectile.
		owner := e.World.Entry(data.Owner)
		applyHit(target, data.Damage, data.Knockback, components.Object.Get(owner))
		data.Alive = false
		return
	}
}
