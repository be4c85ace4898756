package sim

import (
	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/yohamta/donburi"
)

// FighterView is one fighter's renderable state.
type FighterView struct {
	Index    int
	Name     string
	X, Y     float64 // top-left of the collision box
	W, H     float64
	Facing   float64
	Percent  float64
	Stocks   int
	State    string
	OnGround bool
}

// ProjectileView is one live shot.
type ProjectileView struct {
	X, Y float64
	W, H float64
}

// Snapshot is a value copy of everything a client needs to draw a
// frame. It shares no memory with the simulation.
type Snapshot struct {
	Tick        int
	GameOver    bool
	Winner      int
	Fighters    []FighterView
	Projectiles []ProjectileView
}

// Snapshot captures the current world state.
func (s *Sim) Snapshot() *Snapshot {
	match := components.Match.Get(s.match)
	snap := &Snapshot{
		Tick:     match.Tick,
		GameOver: match.GameOver,
		Winner:   match.Winner,
	}

	for _, entry := range s.fighters {
		fighter := components.Fighter.Get(entry)
		obj := components.Object.Get(entry)
		phys := components.Physics.Get(entry)
		state := components.State.Get(entry)

		snap.Fighters = append(snap.Fighters, FighterView{
			Index:    fighter.Index,
			Name:     fighter.Name,
			X:        obj.X,
			Y:        obj.Y,
			W:        obj.W,
			H:        obj.H,
			Facing:   fighter.Facing,
			Percent:  fighter.Percent,
			Stocks:   fighter.Stocks,
			State:    cfg.StateName[state.Current],
			OnGround: phys.OnGround,
		})
	}

	tags.Projectile.Each(s.ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X: obj.X, Y: obj.Y, W: obj.W, H: obj.H,
		})
	})

	return snap
}
