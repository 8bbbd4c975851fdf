package rules

import "github.com/rs/zerolog"

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// Contender is the view of a nation the checker needs
type Contender interface {
	Name() string
	ProvinceCount() int
}

// CheckGameOver reports whether at most one contender with territory remains.
// winner is the index of the sole survivor, or -1 when none survived or the
// game is not over.
func (wc *WinConditionChecker) CheckGameOver(contenders []Contender) (gameOver bool, winner int) {
	alive := 0
	winner = -1
	for i, c := range contenders {
		if c.ProvinceCount() > 0 {
			alive++
			winner = i
		}
	}

	gameOver = alive <= 1
	if !gameOver {
		return false, -1
	}
	if alive == 1 {
		wc.logger.Info().Str("winner", contenders[winner].Name()).Msg("Winner determined")
	} else {
		wc.logger.Info().Msg("No winner found, all nations eliminated")
	}
	return true, winner
}
