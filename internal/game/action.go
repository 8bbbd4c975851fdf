package game

import (
	"fmt"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// ActionKind represents the type of territorial action a nation performed
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionExpand
	ActionBattle
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionExpand:
		return "expand"
	case ActionBattle:
		return "battle"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action records what a single ExpandOrAttack call did. From is only set for
// actions that started from an enemy border; Defender and Outcome only for
// battles.
type Action struct {
	Kind     ActionKind
	Nation   core.NationID
	From     core.Coordinate
	Target   core.Coordinate
	Defender core.NationID
	Outcome  core.BattleOutcome
}
