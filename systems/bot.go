package systems

import (
	"math"

	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots writes an intent for every bot-driven fighter. Each bot
// draws from its own seeded generator, so a fixed seed replays the
// same match.
func UpdateBots(e *ecs.ECS) {
	if matchData(e).GameOver {
		return
	}
	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		updateBot(e, entry)
	})
}

func updateBot(e *ecs.ECS, entry *donburi.Entry) {
	bot := components.Bot.Get(entry)
	input := components.Input.Get(entry)

	if bot.Cool > 0 {
		bot.Cool--
	}

	target := opponentOf(e, entry)
	if target == nil {
		input.Current = components.Intent{}
		return
	}

	obj := components.Object.Get(entry)
	dx := components.Object.Get(target).CenterX() - obj.CenterX()

	b := &cfg.Bot
	intent := components.Intent{}

	if bot.Cool <= 0 && bot.Rng.Float64() < b.DecideChance {
		bot.Cool = b.CoolMin + bot.Rng.Intn(b.CoolMax-b.CoolMin+1)
		intent = decide(e, entry, bot, dx)
	} else {
		// Between decisions: keep facing the opponent, with a small
		// reflex chance of a jab.
		if math.Abs(dx) > b.FaceDeadzone {
			intent.Move = sign(dx)
		}
		if bot.Rng.Float64() < b.ReflexLightChance {
			intent.Light = true
		}
	}

	input.Current = intent
}

// decide is the full decision: dodge an incoming projectile if one
// threatens, otherwise act on the distance band to the opponent. At
// high damage a retreat draw may override the movement afterwards,
// keeping any attack already chosen.
func decide(e *ecs.ECS, entry *donburi.Entry, bot *components.BotData, dx float64) components.Intent {
	b := &cfg.Bot
	intent := components.Intent{}

	if move, jump, ok := tryDodge(e, entry, bot); ok {
		intent.Move = move
		intent.Jump = jump
	} else {
		dist := math.Abs(dx)
		switch {
		case dist > b.FarRange:
			intent.Move = sign(dx)
			if bot.Rng.Float64() < b.FarSpecialChance {
				intent.Special = true
			}
		case dist > b.MidRange:
			intent.Move = sign(dx)
			if bot.Rng.Float64() < b.MidSpecialChance {
				intent.Special = true
			} else if bot.Rng.Float64() < b.MidHeavyChance {
				intent.Heavy = true
			}
		default:
			if bot.Rng.Float64() < b.CloseLightChance {
				intent.Light = true
			} else if bot.Rng.Float64() < b.CloseHeavyChance {
				intent.Heavy = true
			}
			if bot.Rng.Float64() < b.CloseJumpChance {
				intent.Jump = true
			}
		}
	}

	fighter := components.Fighter.Get(entry)
	if fighter.Percent > b.RetreatPercent && bot.Rng.Float64() < b.RetreatChance {
		intent.Move = -sign(dx)
		if bot.Rng.Float64() < b.RetreatJumpChance {
			intent.Jump = true
		}
	}
	return intent
}

// tryDodge scans hostile projectiles in threat range. The first one
// that wins the dodge draw commits the bot to an evasive move away
// from it, sometimes jumping, and extends the decision cooldown.
func tryDodge(e *ecs.ECS, entry *donburi.Entry, bot *components.BotData) (move int, jump, ok bool) {
	b := &cfg.Bot
	obj := components.Object.Get(entry)
	cx, cy := obj.CenterX(), obj.CenterY()

	var threats []*components.ObjectData
	tags.Projectile.Each(e.World, func(p *donburi.Entry) {
		if components.Projectile.Get(p).Owner == entry.Entity() {
			return
		}
		pobj := components.Object.Get(p)
		if math.Abs(pobj.CenterX()-cx) < b.ThreatRangeX &&
			math.Abs(pobj.CenterY()-cy) < b.ThreatRangeY {
			threats = append(threats, pobj)
		}
	})

	for _, pobj := range threats {
		if bot.Rng.Float64() >= b.DodgeChance {
			continue
		}
		move = 1
		if pobj.CenterX() > cx {
			move = -1
		}
		jump = bot.Rng.Float64() < b.DodgeJumpChance
		bot.Cool += b.DodgeCoolBonus
		return move, jump, true
	}
	return 0, false, false
}

// sign resolves exact zero to +1, so perfectly overlapping centers
// break ties rightward.
func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
