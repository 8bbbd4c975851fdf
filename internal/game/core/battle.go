package core

// BattleResult describes how a battle ended
type BattleResult int

const (
	AttackerWon BattleResult = iota
	DefenderHeld
	Stalemate
)

func (r BattleResult) String() string {
	switch r {
	case AttackerWon:
		return "attacker_won"
	case DefenderHeld:
		return "defender_held"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// BattleOutcome is the result of resolving one battle between two armies
type BattleOutcome struct {
	Result       BattleResult
	Captured     bool
	AttackerArmy int // post-battle attacker army
	DefenderArmy int // post-battle defender army
}

// ResolveBattle compares two armies. The target changes hands only when the
// attacker is strictly larger; both armies are halved in every case.
func ResolveBattle(attacker, defender int) BattleOutcome {
	out := BattleOutcome{
		AttackerArmy: attacker / ArmyLossFactor,
		DefenderArmy: defender / ArmyLossFactor,
	}
	switch {
	case attacker > defender:
		out.Result = AttackerWon
		out.Captured = true
	case attacker < defender:
		out.Result = DefenderHeld
	default:
		out.Result = Stalemate
	}
	return out
}
