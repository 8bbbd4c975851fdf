package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/testutil"
)

func TestNationArmyCap(t *testing.T) {
	tests := []struct {
		name string
		devs []int
		want int
	}{
		{"no provinces", nil, 1},
		{"zero development", []int{0, 0}, 1},
		{"single province", []int{1}, 8},
		{"several provinces", []int{3, 2, 0}, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNation(0, "Capped", NoOpStrategy{})
			for _, d := range tt.devs {
				n.AddProvinceOnSetup(core.NewProvince(d))
			}
			assert.Equal(t, tt.want, n.ArmyCap())
		})
	}
}

func TestNationSetArmyFloor(t *testing.T) {
	n := NewNation(0, "Floor", nil)
	assert.Equal(t, core.MinimumArmySize, n.Army())

	for _, tc := range []struct{ in, want int }{{0, 1}, {-5, 1}, {1, 1}, {7, 7}} {
		n.SetArmy(tc.in)
		assert.Equal(t, tc.want, n.Army(), "SetArmy(%d)", tc.in)
	}
}

func TestNationProvinceMembership(t *testing.T) {
	t.Run("CaptureAppliesPenaltyOnce", func(t *testing.T) {
		n := NewNation(0, "Taker", nil)
		p := core.NewProvince(3)

		n.CaptureProvince(p)
		assert.Equal(t, 2, p.Development)
		assert.True(t, n.Owns(p))

		n.CaptureProvince(p)
		assert.Equal(t, 2, p.Development, "re-capturing an owned province is a no-op")
		assert.Equal(t, 1, n.ProvinceCount())
	})

	t.Run("CapturePenaltyClamps", func(t *testing.T) {
		n := NewNation(0, "Taker", nil)
		p := core.NewProvince(0)
		n.CaptureProvince(p)
		assert.Equal(t, core.MinDevelopment, p.Development)
	})

	t.Run("SetupHasNoPenalty", func(t *testing.T) {
		n := NewNation(0, "Settler", nil)
		p := core.NewProvince(2)
		n.AddProvinceOnSetup(p)
		n.AddProvinceOnSetup(p)
		assert.Equal(t, 2, p.Development)
		assert.Equal(t, 1, n.ProvinceCount())
	})

	t.Run("RemoveKeepsOrder", func(t *testing.T) {
		n := NewNation(0, "Shrinking", nil)
		p1, p2, p3 := core.NewProvince(1), core.NewProvince(2), core.NewProvince(3)
		n.AddProvinceOnSetup(p1)
		n.AddProvinceOnSetup(p2)
		n.AddProvinceOnSetup(p3)

		n.RemoveProvince(p2)
		assert.Equal(t, []*core.Province{p1, p3}, n.Provinces())
		assert.False(t, n.Owns(p2))
		assert.True(t, n.Owns(p3))

		n.RemoveProvince(p2)
		assert.Equal(t, 2, n.ProvinceCount())

		n.RemoveProvince(p1)
		assert.Equal(t, []*core.Province{p3}, n.Provinces())
		assert.Equal(t, 3, n.TotalDevelopment())
	})

	t.Run("ProvincesIsACopy", func(t *testing.T) {
		n := NewNation(0, "Copy", nil)
		n.AddProvinceOnSetup(core.NewProvince(1))
		list := n.Provinces()
		list[0] = nil
		assert.NotNil(t, n.Provinces()[0])
	})
}

func TestNationGrowArmy(t *testing.T) {
	tests := []struct {
		name string
		devs []int
		army int
		want int
	}{
		{"no development keeps army", nil, 3, 3},
		{"zero development keeps army", []int{0}, 3, 3},
		{"grows by five per development", []int{2}, 1, 11},
		{"stops at the cap", []int{2}, 12, 16},
		{"shrinks an army above the cap", []int{1}, 100, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNation(0, "Grower", nil)
			for _, d := range tt.devs {
				n.AddProvinceOnSetup(core.NewProvince(d))
			}
			n.SetArmy(tt.army)
			n.GrowArmy()
			assert.Equal(t, tt.want, n.Army())
		})
	}
}

func TestExpandOrAttackBattle(t *testing.T) {
	grid := testutil.CreateTestGrid(t, 2, 1, 5, 2)
	attacker := NewNation(0, "Attacker", NoOpStrategy{})
	defender := NewNation(1, "Defender", NoOpStrategy{})
	own(grid, attacker, at(0, 0))
	own(grid, defender, at(1, 0))
	attacker.SetArmy(5)
	defender.SetArmy(2)
	sim := newTestSimulation(t, grid, []*Nation{attacker, defender})

	action := attacker.ExpandOrAttack(sim, testutil.NewTestRNG(7))

	assert.Equal(t, ActionBattle, action.Kind)
	assert.Equal(t, at(0, 0), action.From)
	assert.Equal(t, at(1, 0), action.Target)
	assert.Equal(t, defender.ID, action.Defender)
	assert.Equal(t, core.AttackerWon, action.Outcome.Result)

	assert.Equal(t, 2, attacker.ProvinceCount())
	assert.Equal(t, 0, defender.ProvinceCount())
	assert.Equal(t, 2, attacker.Army())
	assert.Equal(t, 1, defender.Army())
	assert.Equal(t, attacker.ID, grid.Province(1, 0).Owner)
	assert.Equal(t, 1, grid.Province(1, 0).Development, "captured province pays the penalty")
}

func TestExpandOrAttackBattleOutcomes(t *testing.T) {
	tests := []struct {
		name         string
		attackerArmy int
		defenderArmy int
		wantResult   core.BattleResult
		wantAttacker int
		wantDefender int
	}{
		{"defender holds", 2, 5, core.DefenderHeld, 1, 2},
		{"tie holds", 4, 4, core.Stalemate, 2, 2},
		{"minimum armies stay at one", 1, 1, core.Stalemate, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := testutil.CreateTestGrid(t, 2, 1, 1, 1)
			attacker := NewNation(0, "Attacker", nil)
			defender := NewNation(1, "Defender", nil)
			own(grid, attacker, at(0, 0))
			own(grid, defender, at(1, 0))
			attacker.SetArmy(tt.attackerArmy)
			defender.SetArmy(tt.defenderArmy)
			sim := newTestSimulation(t, grid, []*Nation{attacker, defender})

			action := attacker.ExpandOrAttack(sim, testutil.NewTestRNG(1))

			assert.Equal(t, ActionBattle, action.Kind)
			assert.Equal(t, tt.wantResult, action.Outcome.Result)
			assert.Equal(t, tt.wantAttacker, attacker.Army())
			assert.Equal(t, tt.wantDefender, defender.Army())
			assert.Equal(t, defender.ID, grid.Province(1, 0).Owner)
			assert.Equal(t, 1, defender.ProvinceCount())
			assert.Equal(t, 1, grid.Province(1, 0).Development)
		})
	}
}

func TestExpandOrAttackPrefersExpansion(t *testing.T) {
	grid := testutil.CreateTestGrid(t, 3, 1, 2, 2, 2)
	attacker := NewNation(0, "Attacker", nil)
	defender := NewNation(1, "Defender", nil)
	own(grid, attacker, at(1, 0))
	own(grid, defender, at(2, 0))
	attacker.SetArmy(50)
	defender.SetArmy(1)
	sim := newTestSimulation(t, grid, []*Nation{attacker, defender})

	for seed := int64(0); seed < 5; seed++ {
		// Reset ownership of the free cell for each draw
		grid.Province(0, 0).ClearOwner()
		attacker.RemoveProvince(grid.Province(0, 0))

		action := attacker.ExpandOrAttack(sim, testutil.NewTestRNG(seed))
		require.Equal(t, ActionExpand, action.Kind, "seed %d", seed)
		assert.Equal(t, at(0, 0), action.Target)
		assert.Equal(t, 50, attacker.Army(), "expansion costs no army")
		assert.Equal(t, 1, defender.ProvinceCount())
		assert.Equal(t, attacker.ID, grid.Province(0, 0).Owner)
	}
}

func TestExpandOrAttackEdges(t *testing.T) {
	t.Run("NoCandidates", func(t *testing.T) {
		grid := testutil.CreateTestGrid(t, 1, 1, 3)
		n := NewNation(0, "Alone", nil)
		own(grid, n, at(0, 0))
		sim := newTestSimulation(t, grid, []*Nation{n})

		assert.Equal(t, ActionNone, n.ExpandOrAttack(sim, testutil.NewTestRNG(1)).Kind)
		assert.Equal(t, 3, grid.Province(0, 0).Development)
	})

	t.Run("NilSimulation", func(t *testing.T) {
		n := NewNation(0, "Detached", nil)
		assert.Equal(t, ActionNone, n.ExpandOrAttack(nil, testutil.NewTestRNG(1)).Kind)
	})

	t.Run("StaleOwnerIsClaimed", func(t *testing.T) {
		grid := testutil.CreateTestGrid(t, 2, 1, 1, 4)
		n := NewNation(0, "Claimer", nil)
		own(grid, n, at(0, 0))
		grid.Province(1, 0).SetOwner(9)
		sim := newTestSimulation(t, grid, []*Nation{n})

		action := n.ExpandOrAttack(sim, testutil.NewTestRNG(1))
		assert.Equal(t, ActionExpand, action.Kind)
		assert.Equal(t, at(1, 0), action.Target)
		assert.Equal(t, n.ID, grid.Province(1, 0).Owner)
		assert.Equal(t, 3, grid.Province(1, 0).Development)
		assert.Equal(t, 2, n.ProvinceCount())
	})
}

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		devs     []int
		army     int
		other    int // army of a second nation on the last cell, 0 for none
		start    Strategy
		wantKind StrategyKind
	}{
		{"low army turns defensive", 1, []int{5}, 1, 0, NoOpStrategy{}, KindDefensive},
		{"no development turns defensive", 1, []int{0}, 50, 0, NoOpStrategy{}, KindDefensive},
		{"open frontier overrides low army", 2, []int{5, 1}, 1, 0, NoOpStrategy{}, KindOffensive},
		{"weaker neighbor turns offensive", 2, []int{1, 1}, 8, 2, NoOpStrategy{}, KindOffensive},
		{"equal neighbor keeps strategy", 2, []int{1, 1}, 8, 8, NoOpStrategy{}, KindNoOp},
		{"healthy and boxed in keeps strategy", 1, []int{1}, 8, 0, &OffensiveStrategy{}, KindOffensive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := testutil.CreateTestGrid(t, tt.width, 1, tt.devs...)
			n := NewNation(0, "Chooser", tt.start)
			own(grid, n, at(0, 0))
			n.SetArmy(tt.army)
			nations := []*Nation{n}
			if tt.other > 0 {
				other := NewNation(1, "Neighbor", NoOpStrategy{})
				own(grid, other, at(tt.width-1, 0))
				other.SetArmy(tt.other)
				nations = append(nations, other)
			}
			sim := newTestSimulation(t, grid, nations)

			n.SelectStrategy(sim)
			require.NotNil(t, n.Strategy())
			assert.Equal(t, tt.wantKind, n.Strategy().Kind())
		})
	}

	t.Run("NilSimulationKeepsStrategy", func(t *testing.T) {
		n := NewNation(0, "Detached", NoOpStrategy{})
		n.SelectStrategy(nil)
		assert.Equal(t, KindNoOp, n.Strategy().Kind())
	})
}

func TestTakeTurnAlwaysGrowsArmy(t *testing.T) {
	grid := testutil.CreateTestGrid(t, 2, 1, 1, 1)
	a := NewNation(0, "A", NoOpStrategy{})
	b := NewNation(1, "B", NoOpStrategy{})
	own(grid, a, at(0, 0))
	own(grid, b, at(1, 0))
	a.SetArmy(7)
	b.SetArmy(7)
	sim := newTestSimulation(t, grid, []*Nation{a, b})

	a.TakeTurn(sim)
	assert.Equal(t, KindNoOp, a.Strategy().Kind())
	assert.Equal(t, 8, a.Army())
}
