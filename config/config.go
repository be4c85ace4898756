package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every entity lives on. The simulation has no
// renderer layers, so a single layer is enough.
const Default = ecs.LayerDefault

// SimConfig contains fixed-tick simulation constants.
type SimConfig struct {
	// Ticks per second. All durations below are expressed in ticks.
	TickRate int

	// Physics
	Gravity        float64 // added to vertical speed every tick
	GroundFriction float64 // horizontal decay factor while grounded

	// Fighter collision box
	FighterWidth  float64
	FighterHeight float64

	// Platform landing: a fighter lands when its previous-tick bottom edge
	// was at or above the platform top, within this tolerance.
	LandingTolerance float64

	// Blast lines: a fighter is KO'd this far below the stage or past
	// either horizontal edge.
	BlastMargin float64

	// Projectiles are culled this far past the stage edges.
	ProjectileCullMargin float64

	// Resolv space cell size.
	SpaceCellSize int

	StartingStocks int
}

// CombatConfig contains attack and knockback constants shared by every
// fighter archetype. Per-archetype damage and reach live in the roster.
type CombatConfig struct {
	HitboxTTL int // ticks a hitbox survives if it never connects

	// Cooldown multipliers applied to a fighter's base attack cooldown
	// when the roster does not override the slot cooldown.
	HeavyCooldownMult   float64
	SpecialCooldownMult float64

	// Knockback formula: kb = base * (1 + percent/100) / max(MinWeight, weight),
	// applied horizontally away from the source and KnockbackUpFactor*kb upward.
	KnockbackUpFactor float64
	MinWeight         float64

	// Ticks the attack/special activity label is held for the snapshot.
	AttackStateTicks int
}

// BotConfig contains the decision engine's tuning. Probabilities are
// per-decision draws against a seeded generator.
type BotConfig struct {
	DecideChance      float64 // chance per tick to make a full decision
	ReflexLightChance float64 // chance of a light attack on non-decision ticks
	CoolMin, CoolMax  int     // decision cooldown reset range, ticks
	FaceDeadzone      float64 // horizontal distance under which the default intent stands still

	// Projectile dodging
	ThreatRangeX    float64
	ThreatRangeY    float64
	DodgeChance     float64
	DodgeJumpChance float64
	DodgeCoolBonus  int // extra cooldown committing to a dodge

	// Range bands (horizontal distance to the opponent)
	FarRange float64 // beyond this: approach, occasionally fire special
	MidRange float64 // beyond this (but not far): approach, special or heavy

	FarSpecialChance float64
	MidSpecialChance float64
	MidHeavyChance   float64
	CloseLightChance float64
	CloseHeavyChance float64
	CloseJumpChance  float64

	// Retreat override at high damage
	RetreatPercent    float64
	RetreatChance     float64
	RetreatJumpChance float64
}

var Sim SimConfig
var Combat CombatConfig
var Bot BotConfig

func init() {
	Sim = SimConfig{
		TickRate:             60,
		Gravity:              0.9,
		GroundFriction:       0.85,
		FighterWidth:         64,
		FighterHeight:        80,
		LandingTolerance:     6,
		BlastMargin:          200,
		ProjectileCullMargin: 100,
		SpaceCellSize:        16,
		StartingStocks:       3,
	}

	Combat = CombatConfig{
		HitboxTTL:           36, // 600ms at 60 ticks/s
		HeavyCooldownMult:   1.3,
		SpecialCooldownMult: 0.9,
		KnockbackUpFactor:   0.6,
		MinWeight:           0.5,
		AttackStateTicks:    12,
	}

	Bot = BotConfig{
		DecideChance:      0.18,
		ReflexLightChance: 0.02,
		CoolMin:           15,
		CoolMax:           40,
		FaceDeadzone:      30,

		ThreatRangeX:    180,
		ThreatRangeY:    40,
		DodgeChance:     0.6,
		DodgeJumpChance: 0.4,
		DodgeCoolBonus:  10,

		FarRange: 220,
		MidRange: 120,

		FarSpecialChance: 0.2,
		MidSpecialChance: 0.35,
		MidHeavyChance:   0.4,
		CloseLightChance: 0.6,
		CloseHeavyChance: 0.3,
		CloseJumpChance:  0.2,

		RetreatPercent:    120,
		RetreatChance:     0.5,
		RetreatJumpChance: 0.6,
	}
}
