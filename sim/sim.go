// Package sim runs headless two-fighter matches on a fixed tick. Build
// one with New, drive it with Step (or wrap it in a Loop for wall-clock
// pacing), and read results through Snapshot.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/minibrawl/minibrawl/roster"
	"github.com/minibrawl/minibrawl/stage"
	"github.com/minibrawl/minibrawl/systems"
	"github.com/minibrawl/minibrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Config selects the matchup. Fighter ids must exist in the roster.
// A nil Stage loads the embedded TMX arena; a nil Roster loads the
// embedded table. The seed fixes both bots' generators, so bot-vs-bot
// matches replay identically.
type Config struct {
	P1, P2 string
	P1Bot  bool
	P2Bot  bool
	Seed   int64
	Stage  *stage.Stage
	Roster map[string]*roster.Fighter
}

// Sim is one match. Not safe for concurrent use.
type Sim struct {
	ecs      *ecs.ECS
	match    *donburi.Entry
	fighters [2]*donburi.Entry
	bots     [2]bool
}

// New builds the world: space, stage, match singleton and both
// fighters, with the systems registered in pipeline order.
func New(c Config) (*Sim, error) {
	table := c.Roster
	if table == nil {
		var err error
		table, err = roster.Load()
		if err != nil {
			return nil, err
		}
	}

	specs := [2]*roster.Fighter{}
	for i, id := range []string{c.P1, c.P2} {
		spec, ok := table[id]
		if !ok {
			return nil, fmt.Errorf("sim: unknown fighter %q", id)
		}
		specs[i] = spec
	}

	st := c.Stage
	if st == nil {
		var err error
		st, err = stage.Arena()
		if err != nil {
			return nil, err
		}
	}
	if len(st.Spawns) < 2 {
		return nil, fmt.Errorf("sim: stage %q has %d spawns, need 2", st.Name, len(st.Spawns))
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdateBots)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateHitboxes)
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdateStocks)
	e.AddSystem(systems.UpdateStates)

	cell := cfg.Sim.SpaceCellSize
	factory.CreateSpace(e, int(st.Width), int(st.Height), cell, cell)
	factory.CreateStage(e, st)

	s := &Sim{
		ecs:   e,
		match: factory.CreateMatch(e),
		bots:  [2]bool{c.P1Bot, c.P2Bot},
	}

	for i := 0; i < 2; i++ {
		spawn := st.Spawns[i]
		if s.bots[i] {
			rng := rand.New(rand.NewSource(c.Seed + int64(i)))
			s.fighters[i] = factory.CreateBotFighter(e, i, specs[i], spawn.X, spawn.Y, rng)
		} else {
			s.fighters[i] = factory.CreateFighter(e, i, specs[i], spawn.X, spawn.Y)
		}
	}

	return s, nil
}

// Step advances the match one tick. The given intents are applied to
// the matching fighter slots before the tick runs; intents for
// bot-driven slots are ignored, the bot decides for itself. Once the
// match is over Step does nothing.
func (s *Sim) Step(intents ...components.Intent) {
	match := components.Match.Get(s.match)
	if match.GameOver {
		return
	}

	for i, intent := range intents {
		if i >= len(s.fighters) || s.bots[i] {
			continue
		}
		components.Input.Get(s.fighters[i]).Current = intent
	}

	match.Tick++
	s.ecs.Update()
}

// Tick returns the current tick count.
func (s *Sim) Tick() int {
	return components.Match.Get(s.match).Tick
}

// Over reports whether the match has ended.
func (s *Sim) Over() bool {
	return components.Match.Get(s.match).GameOver
}

// Winner returns the winning fighter index, WinnerDraw, or WinnerNone
// while the match is still running.
func (s *Sim) Winner() int {
	return components.Match.Get(s.match).Winner
}
