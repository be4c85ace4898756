package components

import (
	"github.com/minibrawl/minibrawl/roster"
	"github.com/yohamta/donburi"
)

// FighterData is the per-combatant simulation state. Tuning constants come
// from the roster table; everything else mutates during the match.
type FighterData struct {
	Index int    // 0 or 1, fixed for the match
	Name  string // roster display name

	Facing         float64 // -1 or +1
	Percent        float64 // cumulative damage; amplifies knockback taken
	Stocks         int
	LastAttackTick int // tick the most recent attack fired on

	SpawnX, SpawnY float64 // respawn point (center coordinates)

	Spec *roster.Fighter
}

// KO applies the per-entity stock loss. If the last stock is consumed the
// counters soft-reset; whether the match actually continues is decided by
// the stock lifecycle system, not here.
func (f *FighterData) KO(startingStocks int) {
	f.Stocks--
	if f.Stocks <= 0 {
		f.Stocks = startingStocks
		f.Percent = 0
	}
}

var Fighter = donburi.NewComponentType[FighterData]()
