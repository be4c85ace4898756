// Package stage provides arena geometry: platform rectangles, spawn
// points, and the blast-line margins. Stages load from TMX maps. The
// package holds pure data, with no dependency on donburi or resolv.
package stage

import "github.com/minibrawl/minibrawl/config"

// Rect is a static axis-aligned platform rectangle, immutable for the
// match duration.
type Rect struct {
	X, Y, W, H float64
}

// Spawn is a fighter spawn location (center coordinates), ordered
// left-to-right by index.
type Spawn struct {
	X, Y float64
}

// Stage holds everything the simulation needs about the arena.
type Stage struct {
	Name   string
	Width  float64
	Height float64

	Platforms []Rect
	Spawns    []Spawn

	// Tuned constants; per-stage TMX properties may override the
	// config defaults.
	LandingTolerance float64
	BlastMargin      float64
	CullMargin       float64
}

// Default returns the built-in arena: a 1000x600 playfield with a ground
// slab and three floating platforms, spawns at quarter and three-quarter
// width. Used by tests and as the fallback when no TMX is supplied.
func Default() *Stage {
	const (
		width   = 1000.0
		height  = 600.0
		groundY = height - 80
	)
	return &Stage{
		Name:   "default",
		Width:  width,
		Height: height,
		Platforms: []Rect{
			{X: 0, Y: groundY, W: width, H: 80},
			{X: width/2 - 100, Y: groundY - 150, W: 200, H: 20},
			{X: 150, Y: groundY - 90, W: 200, H: 20},
			{X: width - 350, Y: groundY - 90, W: 200, H: 20},
		},
		Spawns: []Spawn{
			{X: width * 0.25, Y: groundY - 40},
			{X: width * 0.75, Y: groundY - 40},
		},
		LandingTolerance: config.Sim.LandingTolerance,
		BlastMargin:      config.Sim.BlastMargin,
		CullMargin:       config.Sim.ProjectileCullMargin,
	}
}
