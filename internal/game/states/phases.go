package states

import "fmt"

// BattlePhase represents the current phase of a battle.
type BattlePhase int

const (
	// PhaseInitializing - world construction, roster scan
	PhaseInitializing BattlePhase = iota

	// PhaseRunning - rounds are being resolved
	PhaseRunning

	// PhaseEnded - one faction eliminated, outcome frozen
	PhaseEnded
)

// String returns the string representation of a BattlePhase.
func (p BattlePhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// validTransitions maps each phase to the phases it may move to.
var validTransitions = map[BattlePhase][]BattlePhase{
	PhaseInitializing: {PhaseRunning, PhaseEnded},
	PhaseRunning:      {PhaseEnded},
	PhaseEnded:        {},
}

// CanTransition checks whether moving from one phase to another is legal.
func CanTransition(from, to BattlePhase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
