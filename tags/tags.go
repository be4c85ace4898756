package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Platform   = donburi.NewTag().SetName("Platform")
	Hitbox     = donburi.NewTag().SetName("Hitbox")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for collision queries
const (
	ResolvFighter    = "fighter"
	ResolvPlatform   = "platform"
	ResolvHitbox     = "hitbox"
	ResolvProjectile = "projectile"
)
