// Command minibrawl runs a playable debug client: player one on the
// keyboard against a bot, drawn as flat rectangles.
//
// Controls: arrows move and jump, Z light, X heavy, C special.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/minibrawl/minibrawl/components"
	"github.com/minibrawl/minibrawl/sim"
	"github.com/minibrawl/minibrawl/stage"
)

var (
	platformColor = color.RGBA{0x50, 0x50, 0x5a, 0xff}
	p1Color       = color.RGBA{0x3c, 0x8c, 0xe6, 0xff}
	p2Color       = color.RGBA{0xe6, 0x50, 0x3c, 0xff}
	shotColor     = color.RGBA{0xf0, 0xd0, 0x40, 0xff}
)

type Game struct {
	sim   *sim.Sim
	arena *stage.Stage
	snap  *sim.Snapshot
}

func (g *Game) Update() error {
	g.sim.Step(readIntent())
	g.snap = g.sim.Snapshot()
	return nil
}

func readIntent() components.Intent {
	var in components.Intent
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Move = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Move = 1
	}
	in.Jump = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.Light = ebiten.IsKeyPressed(ebiten.KeyZ)
	in.Heavy = ebiten.IsKeyPressed(ebiten.KeyX)
	in.Special = ebiten.IsKeyPressed(ebiten.KeyC)
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.snap == nil {
		return
	}

	for _, p := range g.arena.Platforms {
		vector.DrawFilledRect(screen,
			float32(p.X), float32(p.Y), float32(p.W), float32(p.H),
			platformColor, false)
	}

	for _, f := range g.snap.Fighters {
		c := p1Color
		if f.Index != 0 {
			c = p2Color
		}
		vector.DrawFilledRect(screen,
			float32(f.X), float32(f.Y), float32(f.W), float32(f.H),
			c, false)
	}

	for _, p := range g.snap.Projectiles {
		vector.DrawFilledRect(screen,
			float32(p.X), float32(p.Y), float32(p.W), float32(p.H),
			shotColor, false)
	}

	hud := ""
	for _, f := range g.snap.Fighters {
		hud += fmt.Sprintf("%s  %.0f%%  stocks %d  [%s]\n", f.Name, f.Percent, f.Stocks, f.State)
	}
	if g.snap.GameOver {
		switch {
		case g.snap.Winner >= 0:
			hud += fmt.Sprintf("\n%s WINS", g.snap.Fighters[g.snap.Winner].Name)
		default:
			hud += "\nDRAW"
		}
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.arena.Width), int(g.arena.Height)
}

func main() {
	p1 := flag.String("p1", "ninja", "your fighter id")
	p2 := flag.String("p2", "tank", "bot fighter id")
	seed := flag.Int64("seed", 42, "bot decision seed")
	flag.Parse()

	arena, err := stage.Arena()
	if err != nil {
		log.Fatalf("load arena: %v", err)
	}
	match, err := sim.New(sim.Config{
		P1:    *p1,
		P2:    *p2,
		P2Bot: true,
		Seed:  *seed,
		Stage: arena,
	})
	if err != nil {
		log.Fatalf("setup match: %v", err)
	}

	ebiten.SetWindowSize(int(arena.Width), int(arena.Height))
	ebiten.SetWindowTitle("minibrawl")

	if err := ebiten.RunGame(&Game{sim: match, arena: arena}); err != nil {
		log.Fatal(err)
	}
}
