package config

// StateID identifies a fighter's current activity. The label is cosmetic:
// it is exposed on the snapshot for rendering and never feeds back into
// the simulation.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jumping
	Attacking
	Special
)

var StateName = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Running:   "run",
	Jumping:   "jump",
	Attacking: "attack",
	Special:   "special",
}

// RunThreshold is the grounded horizontal speed above which the activity
// label switches from idle to run.
const RunThreshold = 1.2
