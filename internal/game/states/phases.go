package states

import "fmt"

// GamePhase represents the current phase of a simulation
type GamePhase int

const (
	// PhaseSetup - Grid generation, nation seeding
	PhaseSetup GamePhase = iota

	// PhaseRunning - Rounds are being played
	PhaseRunning

	// PhaseFinished - At most one nation remains
	PhaseFinished

	// PhaseStalemate - Territory stopped changing hands for too long
	PhaseStalemate
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRunning:
		return "Running"
	case PhaseFinished:
		return "Finished"
	case PhaseStalemate:
		return "Stalemate"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if no further rounds may be played
func (p GamePhase) IsTerminal() bool {
	return p == PhaseFinished || p == PhaseStalemate
}

// CanPlayRounds returns true if the simulation accepts rounds in this phase
func (p GamePhase) CanPlayRounds() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseSetup:
		return []GamePhase{PhaseRunning, PhaseFinished}
	case PhaseRunning:
		return []GamePhase{PhaseFinished, PhaseStalemate}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	switch s {
	case "Setup":
		return PhaseSetup, nil
	case "Running":
		return PhaseRunning, nil
	case "Finished":
		return PhaseFinished, nil
	case "Stalemate":
		return PhaseStalemate, nil
	default:
		return PhaseSetup, fmt.Errorf("unknown phase %q", s)
	}
}
