package systems

import (
	"math"

	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/roster"
	"github.com/minibrawl/minibrawl/systems/factory"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat consumes attack triggers. The three slots share one
// cooldown clock and are checked in light, heavy, special order, so at
// most one attack fires per tick per fighter. A trigger during cooldown
// is a silent no-op.
func UpdateCombat(e *ecs.ECS) {
	if matchData(e).GameOver {
		return
	}
	tick := currentTick(e)

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		in := components.Input.Get(entry).Current
		if in.Light {
			tryAttack(e, entry, roster.SlotLight, tick)
		}
		if in.Heavy {
			tryAttack(e, entry, roster.SlotHeavy, tick)
		}
		if in.Special {
			tryAttack(e, entry, roster.SlotSpecial, tick)
		}
	})
}

func cooldownTicks(f *roster.Fighter, slot roster.Slot, atk *roster.Attack) int {
	if atk.Cooldown > 0 {
		return atk.Cooldown
	}
	switch slot {
	case roster.SlotHeavy:
		return int(math.Round(float64(f.Cooldown) * cfg.Combat.HeavyCooldownMult))
	case roster.SlotSpecial:
		return int(math.Round(float64(f.Cooldown) * cfg.Combat.SpecialCooldownMult))
	default:
		return f.Cooldown
	}
}

func tryAttack(e *ecs.ECS, entry *donburi.Entry, slot roster.Slot, tick int) {
	fighter := components.Fighter.Get(entry)
	atk := fighter.Spec.Attack(slot)

	if tick-fighter.LastAttackTick < cooldownTicks(fighter.Spec, slot, atk) {
		return
	}
	fighter.LastAttackTick = tick

	state := components.State.Get(entry)
	if slot == roster.SlotSpecial {
		state.Current = cfg.Special
	} else {
		state.Current = cfg.Attacking
	}
	state.Timer = cfg.Combat.AttackStateTicks

	phys := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	switch atk.Shape {
	case roster.ShapeStrike:
		spawnStrike(e, entry, atk, tick)
		phys.SpeedX -= atk.Recoil * fighter.Facing

	case roster.ShapeBurst:
		for i := 0; i < atk.Count; i++ {
			step := float64(i) * atk.Step
			x, y, w, h := strikeRect(obj, fighter, atk)
			factory.CreateHitbox(e, entry, x, y, w, h,
				atk.Damage+step, atk.Knockback+step, tick+i*atk.Stagger)
		}

	case roster.ShapeDash:
		obj.X += atk.Dash * fighter.Facing
		obj.Update()
		spawnStrike(e, entry, atk, tick)

	case roster.ShapeLunge:
		phys.SpeedX += atk.Lunge * fighter.Facing
		spawnStrike(e, entry, atk, tick)

	case roster.ShapeShot:
		factory.CreateProjectile(e, entry, atk)
		phys.SpeedX -= atk.Recoil * fighter.Facing

	case roster.ShapeHeal:
		fighter.Percent = math.Max(0, fighter.Percent-atk.Heal)

	case roster.ShapeSlam:
		factory.CreateHitbox(e, entry,
			obj.CenterX()-atk.Size/2, obj.CenterY()-atk.Size/2,
			atk.Size, atk.Size, atk.Damage, atk.Knockback, tick)
		phys.SpeedY += atk.Drop
	}
}

func spawnStrike(e *ecs.ECS, entry *donburi.Entry, atk *roster.Attack, tick int) {
	obj := components.Object.Get(entry)
	fighter := components.Fighter.Get(entry)
	x, y, w, h := strikeRect(obj, fighter, atk)
	factory.CreateHitbox(e, entry, x, y, w, h, atk.Damage, atk.Knockback, tick)
}

// strikeRect places a melee rectangle flush against the fighter's
// leading edge, vertically centered unless the attack covers the full
// body height.
func strikeRect(obj *components.ObjectData, fighter *components.FighterData, atk *roster.Attack) (x, y, w, h float64) {
	w = atk.Reach
	if atk.FullHeight {
		y = obj.Y - 10
		h = obj.H + 20
	} else {
		h = atk.Height
		y = obj.CenterY() - h/2
	}
	if fighter.Facing >= 0 {
		x = obj.X + obj.W
	} else {
		x = obj.X - w
	}
	return x, y, w, h
}
