package factory

import (
	"github.com/minibrawl/minibrawl/archetypes"
	"github.com/minibrawl/minibrawl/components"
	"github.com/minibrawl/minibrawl/roster"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a shot from its owner's current position and
// facing. The projectile is simulated independently from then on.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, atk *roster.Attack) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	fighter := components.Fighter.Get(owner)
	ownerObj := components.Object.Get(owner)

	x := ownerObj.CenterX() + fighter.Facing*atk.OffsetX
	y := ownerObj.CenterY() + atk.OffsetY

	obj := resolv.NewObject(x, y, atk.Size, atk.Size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, atk.Size, atk.Size))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Physics.SetValue(p, components.PhysicsData{
		SpeedX: atk.VX * fighter.Facing,
		SpeedY: atk.VY,
	})
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:     owner.Entity(),
		Damage:    atk.Damage,
		Knockback: atk.Knockback,
		Alive:     true,
	})

	return p
}
