package components

import (
	"github.com/minibrawl/minibrawl/stage"
	"github.com/yohamta/donburi"
)

// Stage is the arena singleton: geometry and blast-line margins, loaded
// once at match setup and immutable afterwards.
var Stage = donburi.NewComponentType[stage.Stage]()
