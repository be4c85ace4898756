package sim

import (
	"log"
	"sync"
	"time"

	"github.com/minibrawl/minibrawl/components"
)

// Loop paces a Sim against the wall clock for interactive play.
// Headless callers (tests, batch matches) should call Step directly
// instead.
type Loop struct {
	sim      *Sim
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(sim *Sim, tickRate int) *Loop {
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run drives the match until it ends or Stop is called. onTick is
// invoked after every tick with a fresh snapshot and returns the
// player-one intent for the next tick. It may be nil for bot-vs-bot
// matches.
func (l *Loop) Run(onTick func(*Snapshot) components.Intent) {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Match loop started at %d ticks/second", l.tickRate)

	var intent components.Intent
	for {
		select {
		case <-l.stopChan:
			log.Println("Match loop stopped")
			return
		case <-ticker.C:
			l.sim.Step(intent)
			if onTick != nil {
				intent = onTick(l.sim.Snapshot())
			}
			if l.sim.Over() {
				log.Printf("Match over after %d ticks, winner %d", l.sim.Tick(), l.sim.Winner())
				return
			}
		}
	}
}

// Stop is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}
