package components

import (
	"github.com/minibrawl/minibrawl/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	Current config.StateID
	Timer   int // ticks the current attack/special label is held
}

var State = donburi.NewComponentType[StateData]()
