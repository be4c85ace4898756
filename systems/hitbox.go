package systems

import (
	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes resolves melee hits and prunes spent or expired
// hitboxes. A hitbox connects with at most one fighter, never its
// owner, and future-dated hitboxes (staggered burst hits) are inert
// until their activation tick.
func UpdateHitboxes(e *ecs.ECS) {
	if matchData(e).GameOver {
		return
	}
	tick := currentTick(e)

	var expired []*donburi.Entry
	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		data := components.Hitbox.Get(entry)

		if data.Alive && tick >= data.BornTick {
			resolveHitbox(e, entry, data)
		}
		if !data.Alive || tick-data.BornTick >= cfg.Combat.HitboxTTL {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		removeObject(e, entry)
	}
}

func resolveHitbox(e *ecs.ECS, entry *donburi.Entry, data *components.HitboxData) {
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

		owner := e.World.Entry(data.Owner)
		applyHit(target, data.Damage, data.Knockback, components.Object.Get(owner))
		data.Alive = false
		return
	}
}
