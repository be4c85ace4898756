package systems

import (
	"sort"

	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/stage"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func matchData(e *ecs.ECS) *components.MatchData {
	return components.Match.Get(components.Match.MustFirst(e.World))
}

func stageData(e *ecs.ECS) *stage.Stage {
	return components.Stage.Get(components.Stage.MustFirst(e.World))
}

func currentTick(e *ecs.ECS) int {
	return matchData(e).Tick
}

// fighterEntries returns the fighters ordered by slot index.
func fighterEntries(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Fighter.Get(out[i]).Index < components.Fighter.Get(out[j]).Index
	})
	return out
}

// opponentOf returns the other fighter, or nil when none is left.
func opponentOf(e *ecs.ECS, self *donburi.Entry) *donburi.Entry {
	var out *donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if entry.Entity() != self.Entity() {
			out = entry
		}
	})
	return out
}

// overlaps reports exact AABB intersection. Space checks are cell based
// and can report neighbours that do not actually touch.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func removeObject(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	e.World.Remove(entry.Entity())
}

// applyHit runs the shared damage and knockback resolution. Damage is
// added to the target's percent before knockback scaling, so the hit
// that raises the percent already benefits from it. The target is
// pushed horizontally away from the source's center and popped upward.
func applyHit(target *donburi.Entry, damage, baseKnockback float64, source *components.ObjectData) {
	fighter := components.Fighter.Get(target)
	phys := components.Physics.Get(target)
	obj := components.Object.Get(target)

	fighter.Percent += damage

	weight := fighter.Spec.Weight
	if weight < cfg.Combat.MinWeight {
		weight = cfg.Combat.MinWeight
	}
	kb := baseKnockback * (1 + fighter.Percent/100) / weight

	dir := 1.0
	if obj.CenterX() < source.CenterX() {
		dir = -1.0
	}
	phys.SpeedX += kb * dir
	phys.SpeedY -= kb * cfg.Combat.KnockbackUpFactor
}
