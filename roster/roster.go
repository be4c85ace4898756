// Package roster holds the fighter archetype tables: movement tuning and
// the light/heavy/special attack definitions for every selectable fighter.
// Archetype behavior differences are data, not types: each attack slot
// picks one of a closed set of shapes.
package roster

// Shape selects how an attack slot resolves when triggered.
type Shape string

const (
	// ShapeStrike spawns a single melee hitbox beside the fighter.
	ShapeStrike Shape = "strike"
	// ShapeBurst spawns Count hitboxes with staggered activation ticks.
	ShapeBurst Shape = "burst"
	// ShapeDash teleports the fighter forward, then strikes.
	ShapeDash Shape = "dash"
	// ShapeLunge adds a forward velocity impulse, then strikes.
	ShapeLunge Shape = "lunge"
	// ShapeShot spawns a projectile.
	ShapeShot Shape = "shot"
	// ShapeHeal reduces the fighter's own percent.
	ShapeHeal Shape = "heal"
	// ShapeSlam spawns an area hitbox centered on the fighter.
	ShapeSlam Shape = "slam"
)

// Attack defines one attack slot. Zero Cooldown means "derive from the
// fighter's base cooldown and the slot's standard multiplier".
type Attack struct {
	Shape     Shape   `yaml:"shape"`
	Reach     float64 `yaml:"reach"`     // melee hitbox width
	Height    float64 `yaml:"height"`    // melee hitbox height
	Damage    float64 `yaml:"damage"`
	Knockback float64 `yaml:"knockback"`
	Cooldown  int     `yaml:"cooldown"` // ticks; 0 = base * slot multiplier

	Recoil float64 `yaml:"recoil"` // backward self-impulse on use
	Dash   float64 `yaml:"dash"`   // forward displacement (ShapeDash)
	Lunge  float64 `yaml:"lunge"`  // forward velocity impulse (ShapeLunge)
	Drop   float64 `yaml:"drop"`   // downward self-impulse (ShapeSlam)

	// ShapeBurst
	Count   int     `yaml:"count"`   // hitboxes per trigger
	Stagger int     `yaml:"stagger"` // ticks between activations
	Step    float64 `yaml:"step"`    // damage/knockback increment per hit

	// ShapeShot
	VX      float64 `yaml:"vx"`
	VY      float64 `yaml:"vy"`
	Size    float64 `yaml:"size"`
	OffsetX float64 `yaml:"offset_x"` // spawn offset from the fighter's center, along facing
	OffsetY float64 `yaml:"offset_y"` // spawn offset from the fighter's vertical center

	Heal float64 `yaml:"heal"` // percent removed (ShapeHeal)

	// FullHeight extends the melee hitbox 10 units past the fighter's top
	// and bottom edges (uppercut-style coverage).
	FullHeight bool `yaml:"full_height"`
}

// Fighter is one archetype's full tuning table.
type Fighter struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Speed        float64 `yaml:"speed"`
	JumpStrength float64 `yaml:"jump_strength"` // negative = upward
	Weight       float64 `yaml:"weight"`
	Cooldown     int     `yaml:"cooldown"` // base attack cooldown, ticks

	Light   *Attack `yaml:"light"`
	Heavy   *Attack `yaml:"heavy"`
	Special *Attack `yaml:"special"`
}

// Slot identifies an attack slot on a fighter.
type Slot int

const (
	SlotLight Slot = iota
	SlotHeavy
	SlotSpecial
)

// Attack returns the slot's definition. Load guarantees all three slots
// are populated, so the result is never nil for a loaded fighter.
func (f *Fighter) Attack(s Slot) *Attack {
	switch s {
	case SlotHeavy:
		return f.Heavy
	case SlotSpecial:
		return f.Special
	default:
		return f.Light
	}
}

// Default attack slots, matching the base fighter: values are sized for
// the standard 64x80 collision box.
func defaultLight() *Attack {
	return &Attack{Shape: ShapeStrike, Reach: 38, Height: 20, Damage: 6, Knockback: 6}
}

func defaultHeavy() *Attack {
	return &Attack{Shape: ShapeStrike, Reach: 57, Height: 28, Damage: 10, Knockback: 12, Recoil: 2}
}

func defaultSpecial() *Attack {
	return &Attack{Shape: ShapeLunge, Lunge: 6, Reach: 44, Height: 20, Damage: 8, Knockback: 10}
}
