package states

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineHappyPath(t *testing.T) {
	m := NewMachine(zerolog.Nop())
	assert.Equal(t, PhaseInitializing, m.Current())

	require.NoError(t, m.TransitionTo(PhaseRunning, "roster built"))
	assert.Equal(t, PhaseRunning, m.Current())

	require.NoError(t, m.TransitionTo(PhaseEnded, "faction eliminated"))
	assert.Equal(t, PhaseEnded, m.Current())

	history := m.History()
	require.Len(t, history, 2)
	assert.Equal(t, PhaseInitializing, history[0].From)
	assert.Equal(t, PhaseRunning, history[0].To)
	assert.Equal(t, "faction eliminated", history[1].Reason)
}

func TestMachineDegenerateBattleSkipsRunning(t *testing.T) {
	// A map with an empty faction ends before any round runs.
	m := NewMachine(zerolog.Nop())
	require.NoError(t, m.TransitionTo(PhaseEnded, "empty faction"))
	assert.Equal(t, PhaseEnded, m.Current())
}

func TestMachineRejectsInvalidTransitions(t *testing.T) {
	m := NewMachine(zerolog.Nop())
	require.NoError(t, m.TransitionTo(PhaseEnded, "done"))

	err := m.TransitionTo(PhaseRunning, "resurrect")
	require.Error(t, err)
	assert.Equal(t, PhaseEnded, m.Current(), "failed transition must not change phase")
	assert.Len(t, m.History(), 1)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(PhaseInitializing, PhaseRunning))
	assert.True(t, CanTransition(PhaseInitializing, PhaseEnded))
	assert.True(t, CanTransition(PhaseRunning, PhaseEnded))
	assert.False(t, CanTransition(PhaseEnded, PhaseRunning))
	assert.False(t, CanTransition(PhaseRunning, PhaseInitializing))
}
