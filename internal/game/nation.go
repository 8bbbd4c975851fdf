package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/game/events"
	"github.com/mitchelldurbincs/Universalis/internal/game/rules"
)

// Nation is an autonomous actor that owns provinces and fields an army.
// Its province list holds aliases of grid cells; the grid owns the cells.
type Nation struct {
	ID core.NationID

	name      string
	strategy  Strategy
	provinces []*core.Province
	index     map[*core.Province]int
	army      int
}

// NewNation creates a nation with no provinces and the minimum army
func NewNation(id core.NationID, name string, strategy Strategy) *Nation {
	return &Nation{
		ID:       id,
		name:     name,
		strategy: strategy,
		index:    make(map[*core.Province]int),
		army:     core.MinimumArmySize,
	}
}

func (n *Nation) Name() string           { return n.name }
func (n *Nation) Army() int              { return n.army }
func (n *Nation) Strategy() Strategy     { return n.strategy }
func (n *Nation) SetStrategy(s Strategy) { n.strategy = s }

// SetArmy sets the army, floored at the minimum army size
func (n *Nation) SetArmy(v int) {
	if v < core.MinimumArmySize {
		v = core.MinimumArmySize
	}
	n.army = v
}

// TotalDevelopment sums development over owned provinces
func (n *Nation) TotalDevelopment() int {
	total := 0
	for _, p := range n.provinces {
		total += p.Development
	}
	return total
}

// ArmyCap is the maximum army the nation's development supports, never below 1
func (n *Nation) ArmyCap() int {
	return armyCapFor(n.TotalDevelopment())
}

func armyCapFor(totalDev int) int {
	limit := core.ArmyCapModifier * totalDev
	if limit < 1 {
		return 1
	}
	return limit
}

func (n *Nation) ProvinceCount() int { return len(n.provinces) }

// Provinces returns a copy of the owned province list in acquisition order
func (n *Nation) Provinces() []*core.Province {
	out := make([]*core.Province, len(n.provinces))
	copy(out, n.provinces)
	return out
}

// Owns reports membership by identity
func (n *Nation) Owns(p *core.Province) bool {
	_, ok := n.index[p]
	return ok
}

// CaptureProvince adds p with the capture development penalty. Already owned
// provinces are left untouched.
func (n *Nation) CaptureProvince(p *core.Province) {
	if n.Owns(p) {
		return
	}
	p.ChangeDevelopment(core.CaptureDevelopmentPenalty)
	n.add(p)
}

// AddProvinceOnSetup adds p without the capture penalty
func (n *Nation) AddProvinceOnSetup(p *core.Province) {
	if n.Owns(p) {
		return
	}
	n.add(p)
}

func (n *Nation) add(p *core.Province) {
	n.index[p] = len(n.provinces)
	n.provinces = append(n.provinces, p)
}

// RemoveProvince drops p from membership; the cell's owner is not touched
func (n *Nation) RemoveProvince(p *core.Province) {
	i, ok := n.index[p]
	if !ok {
		return
	}
	copy(n.provinces[i:], n.provinces[i+1:])
	n.provinces[len(n.provinces)-1] = nil
	n.provinces = n.provinces[:len(n.provinces)-1]
	delete(n.index, p)
	for j := i; j < len(n.provinces); j++ {
		n.index[n.provinces[j]] = j
	}
}

// GrowArmy adds ArmyGrowthModifier men per point of development, up to the cap
func (n *Nation) GrowArmy() {
	growth := n.TotalDevelopment()
	if growth <= 0 {
		return
	}
	army := n.army + core.ArmyGrowthModifier*growth
	if limit := armyCapFor(growth); army > limit {
		army = limit
	}
	n.army = army
}

// isLowOnArmy reports whether the defensive override applies
func (n *Nation) isLowOnArmy() bool {
	totalDev := n.TotalDevelopment()
	limit := armyCapFor(totalDev)
	return totalDev == 0 || float64(n.army) < core.LowArmyRatio*float64(limit)
}

// SelectStrategy applies the per-turn overrides in order, later ones winning:
// a weak or undeveloped nation turns defensive, an open frontier or a weaker
// neighbor turns it offensive. With no override the current strategy stays.
func (n *Nation) SelectStrategy(sim *Simulation) {
	if sim == nil {
		return
	}

	kind, override := KindNoOp, false
	if n.isLowOnArmy() {
		kind, override = KindDefensive, true
	}
	if rules.HasEmptyFrontier(sim.grid, n.ID) {
		kind, override = KindOffensive, true
	}
	if _, ok := rules.WeakerNeighbor(sim.grid, n.ID, n.army, sim.armyOf); ok {
		kind, override = KindOffensive, true
	}
	if !override {
		return
	}
	if n.strategy != nil && n.strategy.Kind() == kind {
		return
	}

	from := "none"
	if n.strategy != nil {
		from = n.strategy.String()
	}
	n.strategy = NewStrategy(kind, sim.rng)
	sim.logger.Debug().
		Int("turn", sim.turn).
		Str("nation", n.name).
		Str("from", from).
		Str("to", kind.String()).
		Msg("Strategy switched")
}

// TakeTurn selects a strategy, executes it and grows the army
func (n *Nation) TakeTurn(sim *Simulation) {
	n.SelectStrategy(sim)
	if n.strategy != nil {
		n.strategy.Execute(n, sim)
	}
	n.GrowArmy()
}

// ExpandOrAttack performs at most one territorial action. Claiming an unowned
// neighbor always takes precedence over attacking an enemy one.
func (n *Nation) ExpandOrAttack(sim *Simulation, rng *rand.Rand) Action {
	if sim == nil {
		return Action{Kind: ActionNone}
	}

	candidates := rules.CollectCandidates(sim.grid, n.ID)
	if len(candidates.Expansions) > 0 {
		target := candidates.Expansions[rng.Intn(len(candidates.Expansions))]
		n.claim(sim, target)
		return Action{Kind: ActionExpand, Nation: n.ID, Target: target}
	}
	if len(candidates.Captures) == 0 {
		return Action{Kind: ActionNone}
	}

	pair := candidates.Captures[rng.Intn(len(candidates.Captures))]
	target := sim.grid.At(pair.To)
	defender, ok := sim.byID[target.Owner]
	if !ok {
		// Owner already eliminated, the cell is effectively unowned
		n.claim(sim, pair.To)
		return Action{Kind: ActionExpand, Nation: n.ID, From: pair.From, Target: pair.To}
	}

	attackerArmy, defenderArmy := n.army, defender.army
	outcome := core.ResolveBattle(attackerArmy, defenderArmy)
	if outcome.Captured {
		target.SetOwner(n.ID)
		n.CaptureProvince(target)
		defender.RemoveProvince(target)
	}
	n.SetArmy(outcome.AttackerArmy)
	defender.SetArmy(outcome.DefenderArmy)

	sim.logger.Debug().
		Int("turn", sim.turn).
		Str("attacker", n.name).
		Str("defender", defender.name).
		Str("target", pair.To.String()).
		Int("attacker_army", attackerArmy).
		Int("defender_army", defenderArmy).
		Str("result", outcome.Result.String()).
		Msg("Battle resolved")
	sim.publish(events.NewBattleResolvedEvent(sim.gameID, sim.turn, n.name, defender.name,
		pair.From, pair.To, attackerArmy, defenderArmy, outcome))

	return Action{
		Kind:     ActionBattle,
		Nation:   n.ID,
		From:     pair.From,
		Target:   pair.To,
		Defender: defender.ID,
		Outcome:  outcome,
	}
}

// claim takes an unowned cell with the capture penalty
func (n *Nation) claim(sim *Simulation, c core.Coordinate) {
	p := sim.grid.At(c)
	p.SetOwner(n.ID)
	n.CaptureProvince(p)
	sim.publish(events.NewProvinceClaimedEvent(sim.gameID, sim.turn, n.name, c, p.Development))
}
