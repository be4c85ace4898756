package components

import "github.com/yohamta/donburi"

// ProjectileData is an independent moving hitbox. Once spawned it is
// simulated on its own; Owner only prevents self-hits and attributes
// knockback direction.
type ProjectileData struct {
	Owner     donburi.Entity
	Damage    float64
	Knockback float64
	Alive     bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
