// Command arena runs a headless bot-vs-bot match and reports the result.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/minibrawl/minibrawl/components"
	"github.com/minibrawl/minibrawl/roster"
	"github.com/minibrawl/minibrawl/sim"
)

func main() {
	p1 := flag.String("p1", "ninja", "player one fighter id")
	p2 := flag.String("p2", "tank", "player two fighter id")
	seed := flag.Int64("seed", 42, "bot decision seed")
	rate := flag.Int("rate", 0, "ticks per second; 0 runs as fast as possible")
	maxTicks := flag.Int("ticks", 3*60*60, "tick limit before the match is abandoned")
	list := flag.Bool("list", false, "list fighter ids and exit")
	flag.Parse()

	if *list {
		table, err := roster.Load()
		if err != nil {
			log.Fatalf("load roster: %v", err)
		}
		log.Printf("fighters: %s", strings.Join(roster.IDs(table), ", "))
		return
	}

	match, err := sim.New(sim.Config{
		P1:    *p1,
		P2:    *p2,
		P1Bot: true,
		P2Bot: true,
		Seed:  *seed,
	})
	if err != nil {
		log.Fatalf("setup match: %v", err)
	}

	log.Printf("%s vs %s, seed %d", *p1, *p2, *seed)

	if *rate > 0 {
		loop := sim.NewLoop(match, *rate)
		loop.Run(func(snap *sim.Snapshot) components.Intent {
			if snap.Tick >= *maxTicks {
				loop.Stop()
			}
			return components.Intent{}
		})
	} else {
		for !match.Over() && match.Tick() < *maxTicks {
			match.Step()
		}
	}

	snap := match.Snapshot()
	for _, f := range snap.Fighters {
		log.Printf("  %s: %d stocks, %.0f%%", f.Name, f.Stocks, f.Percent)
	}
	switch {
	case !snap.GameOver:
		log.Printf("tick limit %d reached, match abandoned", *maxTicks)
	case snap.Winner >= 0:
		log.Printf("%s wins after %d ticks", snap.Fighters[snap.Winner].Name, snap.Tick)
	default:
		log.Printf("draw after %d ticks", snap.Tick)
	}
}
