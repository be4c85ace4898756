package systems

import (
	"sort"
	"testing"

	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/roster"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func hitboxData(w *world) []*components.HitboxData {
	var out []*components.HitboxData
	tags.Hitbox.Each(w.ecs.World, func(entry *donburi.Entry) {
		out = append(out, components.Hitbox.Get(entry))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].BornTick < out[j].BornTick })
	return out
}

func TestLightAttackSpawnsHitbox(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.setIntent(0, components.Intent{Light: true})

	w.step(UpdateCombat)

	assert.Equal(t, 1, countTag(w, tags.Hitbox))
	assert.Equal(t, 1, w.fighter(0).LastAttackTick)

	state := components.State.Get(w.fighters[0])
	assert.Equal(t, cfg.Attacking, state.Current)
	assert.Equal(t, cfg.Combat.AttackStateTicks, state.Timer)

	// Flush against the leading edge, on the facing side.
	obj := w.object(0)
	hb := components.Object.Get(tags.Hitbox.MustFirst(w.ecs.World))
	assert.Equal(t, obj.X+obj.W, hb.X)
}

func TestStrikeFacesLeft(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.fighter(0).Facing = -1
	w.setIntent(0, components.Intent{Light: true})

	w.step(UpdateCombat)

	obj := w.object(0)
	hb := components.Object.Get(tags.Hitbox.MustFirst(w.ecs.World))
	assert.Equal(t, obj.X-hb.W, hb.X)
}

func TestSlotsShareOneCooldown(t *testing.T) {
	w := newWorld(t, "ninja", "tank") // ninja base cooldown 13

	w.setIntent(0, components.Intent{Light: true})
	w.step(UpdateCombat)
	assert.Equal(t, 1, countTag(w, tags.Hitbox))

	// Heavy during the shared cooldown is a silent no-op.
	w.setIntent(0, components.Intent{Heavy: true})
	w.step(UpdateCombat)
	assert.Equal(t, 1, countTag(w, tags.Hitbox))
	assert.Equal(t, 1, w.fighter(0).LastAttackTick)

	// Expire the cooldown, next trigger fires.
	w.setIntent(0, components.Intent{Light: true})
	for w.match.Tick < 13 {
		w.step(UpdateCombat)
	}
	w.step(UpdateCombat)
	assert.Equal(t, 2, countTag(w, tags.Hitbox))
}

func TestBurstStaggersHits(t *testing.T) {
	w := newWorld(t, "boxer", "tank")
	w.setIntent(0, components.Intent{Light: true})

	w.step(UpdateCombat)

	hbs := hitboxData(w)
	assert.Len(t, hbs, 3)
	assert.Equal(t, []int{1, 5, 9}, []int{hbs[0].BornTick, hbs[1].BornTick, hbs[2].BornTick})
	assert.Equal(t, []float64{4, 5, 6}, []float64{hbs[0].Damage, hbs[1].Damage, hbs[2].Damage})
	assert.Equal(t, []float64{4, 5, 6}, []float64{hbs[0].Knockback, hbs[1].Knockback, hbs[2].Knockback})
}

func TestDashDisplacesBeforeStriking(t *testing.T) {
	w := newWorld(t, "assassin", "tank") // dash 80
	before := w.object(0).X
	w.setIntent(0, components.Intent{Special: true})

	w.step(UpdateCombat)

	obj := w.object(0)
	assert.Equal(t, before+80, obj.X)
	hb := components.Object.Get(tags.Hitbox.MustFirst(w.ecs.World))
	assert.Equal(t, obj.X+obj.W, hb.X, "hitbox spawns at the post-dash position")
}

func TestLungeAddsImpulse(t *testing.T) {
	spec := &roster.Fighter{
		ID: "lunger", Name: "Lunger", Speed: 4, JumpStrength: -13, Weight: 1, Cooldown: 18,
		Light:   &roster.Attack{Shape: roster.ShapeStrike, Reach: 38, Height: 20, Damage: 6, Knockback: 6},
		Heavy:   &roster.Attack{Shape: roster.ShapeStrike, Reach: 57, Height: 28, Damage: 10, Knockback: 12},
		Special: &roster.Attack{Shape: roster.ShapeLunge, Lunge: 6, Reach: 44, Height: 20, Damage: 8, Knockback: 10},
	}
	w := newWorldSpecs(t, spec, spec)
	w.setIntent(0, components.Intent{Special: true})

	w.step(UpdateCombat)

	assert.InDelta(t, 6, w.physics(0).SpeedX, 1e-9)
	assert.Equal(t, 1, countTag(w, tags.Hitbox))
}

func TestRecoilPushesBackward(t *testing.T) {
	w := newWorld(t, "tank", "mage") // tank special recoil 4
	w.setIntent(0, components.Intent{Special: true})

	w.step(UpdateCombat)

	assert.InDelta(t, -4, w.physics(0).SpeedX, 1e-9)
}

func TestShotSpawnsProjectile(t *testing.T) {
	w := newWorld(t, "mage", "tank")
	w.setIntent(0, components.Intent{Special: true})

	w.step(UpdateCombat)

	assert.Equal(t, 1, countTag(w, tags.Projectile))
	p := tags.Projectile.MustFirst(w.ecs.World)
	assert.InDelta(t, 10, components.Physics.Get(p).SpeedX, 1e-9)

	state := components.State.Get(w.fighters[0])
	assert.Equal(t, cfg.Special, state.Current)
}

func TestHealClampsAtZero(t *testing.T) {
	w := newWorld(t, "priest", "tank") // heal 12

	w.fighter(0).Percent = 50
	w.setIntent(0, components.Intent{Special: true})
	w.step(UpdateCombat)
	assert.Equal(t, 38.0, w.fighter(0).Percent)

	w.fighter(0).Percent = 5
	w.fighter(0).LastAttackTick = -1000
	w.step(UpdateCombat)
	assert.Zero(t, w.fighter(0).Percent)
	assert.Equal(t, 0, countTag(w, tags.Hitbox), "heal spawns nothing")
}

func TestSlamCentersOnFighterAndDrops(t *testing.T) {
	w := newWorld(t, "brawler", "tank") // slam size 120, drop 6
	w.setIntent(0, components.Intent{Special: true})

	w.step(UpdateCombat)

	obj := w.object(0)
	hb := components.Object.Get(tags.Hitbox.MustFirst(w.ecs.World))
	assert.Equal(t, obj.CenterX()-60, hb.X)
	assert.Equal(t, obj.CenterY()-60, hb.Y)
	assert.Equal(t, 120.0, hb.W)
	assert.InDelta(t, 6, w.physics(0).SpeedY, 1e-9)
}

func TestFullHeightStrikeCoversBody(t *testing.T) {
	w := newWorld(t, "boxer", "tank") // boxer special is full_height
	w.setIntent(0, components.Intent{Special: true})

	w.step(UpdateCombat)

	obj := w.object(0)
	hb := components.Object.Get(tags.Hitbox.MustFirst(w.ecs.World))
	assert.Equal(t, obj.Y-10, hb.Y)
	assert.Equal(t, obj.H+20, hb.H)
}

func TestDerivedSlotCooldowns(t *testing.T) {
	table := map[roster.Slot]int{
		roster.SlotLight:   18,
		roster.SlotHeavy:   23, // 18 * 1.3 rounded
		roster.SlotSpecial: 16, // 18 * 0.9 rounded
	}
	f := &roster.Fighter{
		Cooldown: 18,
		Light:    &roster.Attack{Shape: roster.ShapeStrike},
		Heavy:    &roster.Attack{Shape: roster.ShapeStrike},
		Special:  &roster.Attack{Shape: roster.ShapeStrike},
	}
	for slot, want := range table {
		assert.Equal(t, want, cooldownTicks(f, slot, f.Attack(slot)))
	}

	// Explicit roster cooldowns win over the derived ones.
	f.Special.Cooldown = 99
	assert.Equal(t, 99, cooldownTicks(f, roster.SlotSpecial, f.Special))
}

func TestCombatFrozenAfterGameOver(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.match.End(0)
	w.setIntent(0, components.Intent{Light: true})

	w.step(UpdateCombat)

	assert.Equal(t, 0, countTag(w, tags.Hitbox))
}
