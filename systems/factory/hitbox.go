package factory

import (
	"github.com/minibrawl/minibrawl/archetypes"
	"github.com/minibrawl/minibrawl/components"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox spawns a melee hitbox rectangle. The rectangle is fixed at
// spawn; it does not follow the owner. bornTick may lie in the future for
// staggered multi-hit attacks.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, x, y, w, h, damage, knockback float64, bornTick int) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:     owner.Entity(),
		Damage:    damage,
		Knockback: knockback,
		BornTick:  bornTick,
		Alive:     true,
	})

	return hitbox
}
