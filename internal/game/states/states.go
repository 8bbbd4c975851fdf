package states

import (
	"fmt"
	"time"
)

// SetupState represents grid generation and nation seeding
type SetupState struct{}

func NewSetupState() State {
	return &SetupState{}
}

func (s *SetupState) Phase() GamePhase {
	return PhaseSetup
}

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Setup state")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("nation_count", ctx.NationCount).
		Msg("Setup complete")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	return nil
}

// RunningState represents active play
type RunningState struct{}

func NewRunningState() State {
	return &RunningState{}
}

func (s *RunningState) Phase() GamePhase {
	return PhaseRunning
}

func (s *RunningState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Int("nation_count", ctx.NationCount).
		Msg("Simulation running")
	return nil
}

func (s *RunningState) Exit(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Debug().
		Int("turn", ctx.Turn).
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Leaving Running state")
	return nil
}

func (s *RunningState) Validate(ctx *GameContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("no nations to play, got %d", ctx.NationCount)
	}
	return nil
}

// FinishedState represents a game decided by elimination
type FinishedState struct{}

func NewFinishedState() State {
	return &FinishedState{}
}

func (s *FinishedState) Phase() GamePhase {
	return PhaseFinished
}

func (s *FinishedState) Enter(ctx *GameContext) error {
	winner := ctx.Winner
	if winner == "" {
		winner = "none"
	}
	ctx.Logger.Info().
		Str("winner", winner).
		Int("turn", ctx.Turn).
		Msg("Game finished")
	return nil
}

func (s *FinishedState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave terminal phase %s", PhaseFinished)
}

func (s *FinishedState) Validate(ctx *GameContext) error {
	if ctx.NationCount > 1 {
		return fmt.Errorf("game cannot finish with %d nations remaining", ctx.NationCount)
	}
	return nil
}

// StalemateState represents a game stopped because territory stopped changing
type StalemateState struct{}

func NewStalemateState() State {
	return &StalemateState{}
}

func (s *StalemateState) Phase() GamePhase {
	return PhaseStalemate
}

func (s *StalemateState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("turn", ctx.Turn).
		Int("nation_count", ctx.NationCount).
		Msg("Game ended in stalemate")
	return nil
}

func (s *StalemateState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave terminal phase %s", PhaseStalemate)
}

func (s *StalemateState) Validate(ctx *GameContext) error {
	return nil
}
