package states

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Transition records one phase change.
type Transition struct {
	From      BattlePhase
	To        BattlePhase
	Timestamp time.Time
	Reason    string
}

// Machine tracks the phase of a battle and the history of phase
// changes. The simulation is single-threaded, so no locking is needed.
type Machine struct {
	current BattlePhase
	history []Transition
	logger  zerolog.Logger
}

// NewMachine creates a phase machine in PhaseInitializing.
func NewMachine(logger zerolog.Logger) *Machine {
	return &Machine{
		current: PhaseInitializing,
		history: make([]Transition, 0, 4),
		logger:  logger.With().Str("component", "phase_machine").Logger(),
	}
}

// Current returns the current phase.
func (m *Machine) Current() BattlePhase {
	return m.current
}

// TransitionTo moves the machine to a new phase, recording the reason.
func (m *Machine) TransitionTo(to BattlePhase, reason string) error {
	if !CanTransition(m.current, to) {
		return fmt.Errorf("invalid phase transition %s -> %s", m.current, to)
	}

	m.history = append(m.history, Transition{
		From:      m.current,
		To:        to,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	m.logger.Debug().
		Stringer("from", m.current).
		Stringer("to", to).
		Str("reason", reason).
		Msg("Battle phase transition")

	m.current = to
	return nil
}

// History returns the recorded transitions, oldest first.
func (m *Machine) History() []Transition {
	return m.history
}
