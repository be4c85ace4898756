package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// BotData is the decision engine's entire memory: a cooldown timer and a
// seeded generator. Every decision is re-derived from the current world
// state, so fixing the seed fixes the whole policy.
type BotData struct {
	Cool int
	Rng  *rand.Rand
}

var Bot = donburi.NewComponentType[BotData]()
