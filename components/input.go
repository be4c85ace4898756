package components

import "github.com/yohamta/donburi"

// Intent is one tick's worth of control input for a fighter: supplied
// externally for a human, produced by the bot system otherwise. Move is
// normalized to {-1, 0, 1}; anything else is treated as no movement.
type Intent struct {
	Move    int
	Jump    bool
	Light   bool
	Heavy   bool
	Special bool
}

type InputData struct {
	Current Intent
}

var Input = donburi.NewComponentType[InputData]()
