package stage

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/minibrawl/minibrawl/config"
)

// Load parses a TMX file into a Stage. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. The map needs a "platforms" object layer and
// a "spawns" object layer with at least two spawn points; the optional
// map properties landingTolerance, blastMargin and cullMargin override
// the config defaults.
func Load(fsys fs.FS, tmxPath string) (*Stage, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	s := &Stage{
		Name:             strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:            float64(m.Width * m.TileWidth),
		Height:           float64(m.Height * m.TileHeight),
		LandingTolerance: config.Sim.LandingTolerance,
		BlastMargin:      config.Sim.BlastMargin,
		CullMargin:       config.Sim.ProjectileCullMargin,
	}

	// Properties is nil when the map has no <properties> element.
	if m.Properties != nil {
		if v := m.Properties.GetInt("landingTolerance"); v > 0 {
			s.LandingTolerance = float64(v)
		}
		if v := m.Properties.GetInt("blastMargin"); v > 0 {
			s.BlastMargin = float64(v)
		}
		if v := m.Properties.GetInt("cullMargin"); v > 0 {
			s.CullMargin = float64(v)
		}
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "platforms":
			for _, o := range og.Objects {
				s.Platforms = append(s.Platforms, Rect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case "spawns":
			for _, o := range og.Objects {
				s.Spawns = append(s.Spawns, Spawn{X: o.X, Y: o.Y})
			}
		}
	}

	if len(s.Platforms) == 0 {
		return nil, fmt.Errorf("stage %s: no platforms layer", s.Name)
	}
	if len(s.Spawns) < 2 {
		return nil, fmt.Errorf("stage %s: need at least 2 spawn points, got %d", s.Name, len(s.Spawns))
	}

	// Sort spawns left-to-right for consistent fighter assignment.
	sort.Slice(s.Spawns, func(i, j int) bool {
		return s.Spawns[i].X < s.Spawns[j].X
	})

	return s, nil
}
