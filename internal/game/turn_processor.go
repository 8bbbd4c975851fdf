package game

import (
	"time"

	"github.com/mitchelldurbincs/Universalis/internal/game/events"
	"github.com/rs/zerolog"
)

// TurnProcessor handles the orchestration of a single round
type TurnProcessor struct {
	sim    *Simulation
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(sim *Simulation) *TurnProcessor {
	return &TurnProcessor{
		sim:    sim,
		logger: sim.logger,
	}
}

// ProcessTurn plays one round: every active nation takes its turn, emptied
// nations are pruned, then development is distributed. It reports whether the
// stalemate threshold has been reached.
func (tp *TurnProcessor) ProcessTurn() bool {
	sim := tp.sim
	sim.turn++

	turnLogger := tp.logger.With().Int("turn", sim.turn).Logger()
	turnLogger.Debug().Int("nations", len(sim.nations)).Msg("Starting round")
	roundStart := time.Now()

	// Iterate over a copy; the active list only shrinks after everyone moved
	acting := make([]*Nation, len(sim.nations))
	copy(acting, sim.nations)
	for _, n := range acting {
		n.TakeTurn(sim)
	}

	tp.pruneEliminated(turnLogger)
	sim.development.Distribute(sim.nations, sim.turn)

	owned := sim.ownedProvinces()
	stalled := sim.stalemate.Observe(owned)
	sim.stateMachine.GetContext().Turn = sim.turn
	sim.stateMachine.GetContext().NationCount = len(sim.nations)

	if sim.observed() {
		snap := sim.Snapshot()
		sim.publish(events.NewTurnCompletedEvent(sim.gameID, sim.turn, &snap))
	}

	turnLogger.Debug().
		Int("nations", len(sim.nations)).
		Int("owned_provinces", owned).
		Int("idle_turns", sim.stalemate.Idle()).
		Dur("duration", time.Since(roundStart)).
		Msg("Round finished")
	return stalled
}

// pruneEliminated drops nations without provinces and clears any cells that
// still name them as owner
func (tp *TurnProcessor) pruneEliminated(turnLogger zerolog.Logger) {
	sim := tp.sim
	kept := sim.nations[:0]
	var eliminated []*Nation
	for _, n := range sim.nations {
		if n.ProvinceCount() > 0 {
			kept = append(kept, n)
			continue
		}
		eliminated = append(eliminated, n)
	}
	for i := len(kept); i < len(sim.nations); i++ {
		sim.nations[i] = nil
	}
	sim.nations = kept

	for _, n := range eliminated {
		delete(sim.byID, n.ID)
		stale := sim.grid.ClearOwner(n.ID)
		turnLogger.Info().
			Str("nation", n.name).
			Int("stale_cells_cleared", stale).
			Int("remaining", len(sim.nations)).
			Msg("Nation eliminated")
		sim.publish(events.NewNationEliminatedEvent(sim.gameID, sim.turn, n.name, len(sim.nations)))
	}
}
