package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides simulation information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this simulation
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// NationCount is the number of nations still in play
	NationCount int

	// Turn is the number of completed rounds
	Turn int

	// StartTime is when PhaseRunning was entered
	StartTime time.Time

	// EndTime is when a terminal phase was entered
	EndTime time.Time

	// Winner is the surviving nation's name, empty while undecided
	Winner string
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, nationCount int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:      gameID,
		NationCount: nationCount,
		Logger:      logger.With().Str("game_id", gameID).Logger(),
	}
}

// IsReady returns true if there is at least one nation to play
func (gc *GameContext) IsReady() bool {
	return gc.NationCount >= 1
}

// GetElapsedTime returns the time spent running; frozen once the game ends
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}
