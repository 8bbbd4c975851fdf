package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// StrategyKind identifies a nation behavior mode
type StrategyKind int

const (
	KindNoOp StrategyKind = iota
	KindDefensive
	KindOffensive
)

func (k StrategyKind) String() string {
	switch k {
	case KindNoOp:
		return "NoOp"
	case KindDefensive:
		return "Defensive"
	case KindOffensive:
		return "Offensive"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
}

// ParseStrategyKind converts a case-insensitive name to a StrategyKind
func ParseStrategyKind(s string) (StrategyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noop", "no-op", "none":
		return KindNoOp, nil
	case "defensive":
		return KindDefensive, nil
	case "offensive":
		return KindOffensive, nil
	default:
		return KindNoOp, fmt.Errorf("unknown strategy %q", s)
	}
}

// Strategy is a nation's behavior for one turn
type Strategy interface {
	Execute(n *Nation, sim *Simulation)
	Kind() StrategyKind
	String() string
}

// NewStrategy builds the strategy for kind drawing randomness from rng
func NewStrategy(kind StrategyKind, rng *rand.Rand) Strategy {
	switch kind {
	case KindDefensive:
		return &DefensiveStrategy{rng: rng}
	case KindOffensive:
		return &OffensiveStrategy{rng: rng}
	default:
		return NoOpStrategy{}
	}
}

// RandomStrategyKind draws 0 NoOp, 1 Offensive, 2 Defensive uniformly
func RandomStrategyKind(rng *rand.Rand) StrategyKind {
	switch rng.Intn(3) {
	case 1:
		return KindOffensive
	case 2:
		return KindDefensive
	default:
		return KindNoOp
	}
}

// NoOpStrategy does nothing
type NoOpStrategy struct{}

func (NoOpStrategy) Execute(*Nation, *Simulation) {}
func (NoOpStrategy) Kind() StrategyKind           { return KindNoOp }
func (NoOpStrategy) String() string               { return KindNoOp.String() }

// DefensiveStrategy develops each owned province with a fixed chance
type DefensiveStrategy struct {
	rng *rand.Rand
}

func (s *DefensiveStrategy) Execute(n *Nation, _ *Simulation) {
	for _, p := range n.provinces {
		if s.rng.Float64() < core.DevelopmentChance {
			p.ChangeDevelopment(core.DevelopmentIncrease)
		}
	}
}

func (s *DefensiveStrategy) Kind() StrategyKind { return KindDefensive }
func (s *DefensiveStrategy) String() string     { return KindDefensive.String() }

// OffensiveStrategy expands or attacks once per turn
type OffensiveStrategy struct {
	rng *rand.Rand
}

func (s *OffensiveStrategy) Execute(n *Nation, sim *Simulation) {
	n.ExpandOrAttack(sim, s.rng)
}

func (s *OffensiveStrategy) Kind() StrategyKind { return KindOffensive }
func (s *OffensiveStrategy) String() string     { return KindOffensive.String() }
