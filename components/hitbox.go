package components

import "github.com/yohamta/donburi"

// HitboxData is a timed melee damage region. Owner is a non-owning handle:
// the hitbox entity itself belongs to the world, and the owner is only
// consulted for self-hit exclusion and knockback direction.
type HitboxData struct {
	Owner     donburi.Entity
	Damage    float64
	Knockback float64
	BornTick  int  // activation tick; burst attacks stagger these into the future
	Alive     bool // cleared on connect, never set again
}

var Hitbox = donburi.NewComponentType[HitboxData]()
