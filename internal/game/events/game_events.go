package events

import (
	"time"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted      = "game.started"
	TypeGameFinished     = "game.finished"
	TypeTurnCompleted    = "turn.completed"
	TypeProvinceClaimed  = "province.claimed"
	TypeBattleResolved   = "battle.resolved"
	TypeNationEliminated = "nation.eliminated"
	TypeStateTransition  = "state.transition"
)

// GameStartedEvent is published once a game has been set up
type GameStartedEvent struct {
	BaseEvent
	Nations   []string
	MapWidth  int
	MapHeight int
}

func NewGameStartedEvent(gameID string, nations []string, width, height int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Nations:   nations,
		MapWidth:  width,
		MapHeight: height,
	}
}

// TurnCompletedEvent is published after every round with a snapshot of the
// state at the end of that round
type TurnCompletedEvent struct {
	BaseEvent
	TurnNumber int
	Snapshot   *core.Snapshot
}

func NewTurnCompletedEvent(gameID string, turn int, snapshot *core.Snapshot) *TurnCompletedEvent {
	return &TurnCompletedEvent{
		BaseEvent:  newBase(TypeTurnCompleted, gameID),
		TurnNumber: turn,
		Snapshot:   snapshot,
	}
}

// GameFinishedEvent is published when a run to completion terminates
type GameFinishedEvent struct {
	BaseEvent
	Outcome   string
	Winner    string
	FinalTurn int
	Duration  time.Duration
	Snapshot  *core.Snapshot
}

func NewGameFinishedEvent(gameID, outcome, winner string, finalTurn int, duration time.Duration, snapshot *core.Snapshot) *GameFinishedEvent {
	return &GameFinishedEvent{
		BaseEvent: newBase(TypeGameFinished, gameID),
		Outcome:   outcome,
		Winner:    winner,
		FinalTurn: finalTurn,
		Duration:  duration,
		Snapshot:  snapshot,
	}
}

// ProvinceClaimedEvent is published when a nation takes an unowned province
type ProvinceClaimedEvent struct {
	BaseEvent
	Turn        int
	Nation      string
	Location    core.Coordinate
	Development int
}

func NewProvinceClaimedEvent(gameID string, turn int, nation string, at core.Coordinate, development int) *ProvinceClaimedEvent {
	return &ProvinceClaimedEvent{
		BaseEvent:   newBase(TypeProvinceClaimed, gameID),
		Turn:        turn,
		Nation:      nation,
		Location:    at,
		Development: development,
	}
}

// BattleResolvedEvent is published after every battle
type BattleResolvedEvent struct {
	BaseEvent
	Turn         int
	Attacker     string
	Defender     string
	From         core.Coordinate
	Target       core.Coordinate
	AttackerArmy int // before the battle
	DefenderArmy int // before the battle
	Result       string
	TileCaptured bool
}

func NewBattleResolvedEvent(gameID string, turn int, attacker, defender string, from, target core.Coordinate, attackerArmy, defenderArmy int, outcome core.BattleOutcome) *BattleResolvedEvent {
	return &BattleResolvedEvent{
		BaseEvent:    newBase(TypeBattleResolved, gameID),
		Turn:         turn,
		Attacker:     attacker,
		Defender:     defender,
		From:         from,
		Target:       target,
		AttackerArmy: attackerArmy,
		DefenderArmy: defenderArmy,
		Result:       outcome.Result.String(),
		TileCaptured: outcome.Captured,
	}
}

// NationEliminatedEvent is published when a nation is pruned for owning no
// provinces
type NationEliminatedEvent struct {
	BaseEvent
	Turn      int
	Nation    string
	Remaining int
}

func NewNationEliminatedEvent(gameID string, turn int, nation string, remaining int) *NationEliminatedEvent {
	return &NationEliminatedEvent{
		BaseEvent: newBase(TypeNationEliminated, gameID),
		Turn:      turn,
		Nation:    nation,
		Remaining: remaining,
	}
}

// StateTransitionEvent is published when the simulation moves between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
