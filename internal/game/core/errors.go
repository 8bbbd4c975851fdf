package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidDimensions    = fmt.Errorf("%w: grid dimensions must be positive", ErrInvalidConfiguration)
	ErrTooManyNations       = fmt.Errorf("%w: more nations than provinces", ErrInvalidConfiguration)
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrCapacityExhausted    = errors.New("all unique name combinations exhausted")
	ErrGameOver             = errors.New("game is over")
	ErrInvalidNation        = errors.New("invalid nation")
)

// GridError records the coordinate that triggered a grid access failure
type GridError struct {
	X, Y int
	Err  error
}

func (e *GridError) Error() string {
	return fmt.Sprintf("grid access at (%d,%d): %v", e.X, e.Y, e.Err)
}

func (e *GridError) Unwrap() error { return e.Err }

// GameStateError wraps an error with the turn and operation it occurred in
type GameStateError struct {
	Turn      int
	Operation string
	Err       error
}

func (e *GameStateError) Error() string {
	return fmt.Sprintf("turn %d: %s: %v", e.Turn, e.Operation, e.Err)
}

func (e *GameStateError) Unwrap() error { return e.Err }

// WrapGameStateError returns nil when err is nil
func WrapGameStateError(turn int, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &GameStateError{Turn: turn, Operation: operation, Err: err}
}
