package systems

import (
	"testing"

	"github.com/minibrawl/minibrawl/components"
	"github.com/stretchr/testify/assert"
)

func TestBlastLineCostsStockAndRespawns(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.fighter(0).Percent = 80
	w.physics(0).SpeedX = 15

	// Below the bottom blast line (600 + 200 margin).
	w.place(0, 400, 801)
	w.step(UpdateStocks)

	fighter := w.fighter(0)
	assert.Equal(t, 2, fighter.Stocks)
	assert.Zero(t, fighter.Percent, "respawn is clean")
	assert.Zero(t, w.physics(0).SpeedX)
	assert.False(t, w.match.GameOver)

	// Back at the spawn point.
	obj := w.object(0)
	assert.Equal(t, fighter.SpawnX, obj.X+obj.W/2)
	assert.Equal(t, fighter.SpawnY, obj.Y+obj.H/2)
}

func TestSideBlastLines(t *testing.T) {
	w := newWorld(t, "ninja", "tank")

	// Fully past the right edge.
	w.place(0, 1201, 440)
	w.step(UpdateStocks)
	assert.Equal(t, 2, w.fighter(0).Stocks)

	// Fully past the left edge.
	w.place(0, -201-w.object(0).W, 440)
	w.step(UpdateStocks)
	assert.Equal(t, 1, w.fighter(0).Stocks)
}

func TestHighAltitudeIsSafe(t *testing.T) {
	w := newWorld(t, "ninja", "tank")

	// There is no ceiling blast line; launched fighters come back down.
	w.place(0, 400, -1000)
	w.step(UpdateStocks)

	assert.Equal(t, 3, w.fighter(0).Stocks)
	assert.Equal(t, -1000.0, w.object(0).Y)
}

func TestLastStockEndsMatch(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.fighter(0).Stocks = 1

	w.place(0, 400, 801)
	w.step(UpdateStocks)

	assert.True(t, w.match.GameOver)
	assert.Equal(t, 1, w.match.Winner)

	// No respawn once the match is decided.
	assert.Equal(t, 801.0, w.object(0).Y)
	assert.Equal(t, 1, w.fighter(0).Stocks)
}

func TestSimultaneousLastStockIsDraw(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.fighter(0).Stocks = 1
	w.fighter(1).Stocks = 1

	w.place(0, 400, 801)
	w.place(1, 500, 801)
	w.step(UpdateStocks)

	assert.True(t, w.match.GameOver)
	assert.Equal(t, components.WinnerDraw, w.match.Winner)
}

func TestWinnerNeverChanges(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.fighter(0).Stocks = 1

	w.place(0, 400, 801)
	w.step(UpdateStocks)
	assert.Equal(t, 1, w.match.Winner)

	// The loser drifting further out must not re-trigger anything.
	w.place(1, 400, 801)
	w.step(UpdateStocks)
	assert.Equal(t, 1, w.match.Winner)
	assert.Equal(t, 3, w.fighter(1).Stocks)
}
