package systems

import (
	"testing"

	"github.com/minibrawl/minibrawl/components"
	cfg "github.com/minibrawl/minibrawl/config"
	"github.com/stretchr/testify/assert"
)

func state(w *world, i int) *components.StateData {
	return components.State.Get(w.fighters[i])
}

func TestMovementLabels(t *testing.T) {
	w := newWorld(t, "ninja", "tank")

	w.physics(0).OnGround = true
	w.step(UpdateStates)
	assert.Equal(t, cfg.Idle, state(w, 0).Current)

	w.physics(0).SpeedX = 5
	w.step(UpdateStates)
	assert.Equal(t, cfg.Running, state(w, 0).Current)

	w.physics(0).OnGround = false
	w.step(UpdateStates)
	assert.Equal(t, cfg.Jumping, state(w, 0).Current)
}

func TestAttackLabelHeldForTimer(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.physics(0).OnGround = true

	st := state(w, 0)
	st.Current = cfg.Attacking
	st.Timer = 2

	w.step(UpdateStates)
	assert.Equal(t, cfg.Attacking, st.Current)
	w.step(UpdateStates)
	assert.Equal(t, cfg.Attacking, st.Current)

	// Timer exhausted, movement label takes over.
	w.step(UpdateStates)
	assert.Equal(t, cfg.Idle, st.Current)
}

func TestRunThresholdIsStrict(t *testing.T) {
	w := newWorld(t, "ninja", "tank")
	w.physics(0).OnGround = true
	w.physics(0).SpeedX = cfg.RunThreshold

	w.step(UpdateStates)
	assert.Equal(t, cfg.Idle, state(w, 0).Current, "exactly at the threshold is still idle")
}
