package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/game/events"
	"github.com/mitchelldurbincs/Universalis/internal/game/states"
	"github.com/mitchelldurbincs/Universalis/internal/testutil"
)

func TestCreateDefaultGame(t *testing.T) {
	sim, err := CreateDefaultGame(6, 3)
	require.NoError(t, err)

	assert.Equal(t, 6, sim.Grid().Width())
	assert.Equal(t, 6, sim.Grid().Height())
	require.Len(t, sim.Nations(), 3)
	assert.Equal(t, states.PhaseRunning, sim.Phase())
	assert.Equal(t, 3, sim.Grid().OwnedCount())

	seenNames := make(map[string]bool)
	for _, n := range sim.Nations() {
		assert.Equal(t, 1, n.ProvinceCount())
		assert.Equal(t, max(1, n.TotalDevelopment()), n.Army())
		assert.NotNil(t, n.Strategy())
		assert.False(t, seenNames[n.Name()], "duplicate name %s", n.Name())
		seenNames[n.Name()] = true
	}
}

func TestCreateDefaultGameErrors(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		nations int
		wantErr error
	}{
		{"zero size", 0, 1, core.ErrInvalidDimensions},
		{"negative size", -3, 1, core.ErrInvalidDimensions},
		{"no nations", 3, 0, core.ErrInvalidConfiguration},
		{"too many nations", 2, 5, core.ErrTooManyNations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := CreateDefaultGame(tt.size, tt.nations)
			assert.Nil(t, sim)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
		})
	}
}

func TestCreateDefaultGameFullBoard(t *testing.T) {
	sim, err := CreateDefaultGame(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, sim.Grid().OwnedCount())
}

func TestNewGame(t *testing.T) {
	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewGame(ctx, GameConfig{Size: 4, Nations: 2, Logger: testutil.NopLogger()})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("RectangularGrid", func(t *testing.T) {
		sim, err := NewGame(context.Background(), GameConfig{
			Width:   5,
			Height:  2,
			Nations: 2,
			Rng:     testutil.NewTestRNG(3),
			Logger:  testutil.NopLogger(),
		})
		require.NoError(t, err)
		assert.Equal(t, 5, sim.Grid().Width())
		assert.Equal(t, 2, sim.Grid().Height())
	})

	t.Run("ConfiguredNamesAndID", func(t *testing.T) {
		sim, err := NewGame(context.Background(), GameConfig{
			Size:    4,
			Nations: 3,
			Names:   []string{"Rome", "", "Carthage"},
			GameID:  "punic",
			Rng:     testutil.NewTestRNG(3),
			Logger:  testutil.NopLogger(),
		})
		require.NoError(t, err)
		nations := sim.Nations()
		assert.Equal(t, "Rome", nations[0].Name())
		assert.NotEmpty(t, nations[1].Name())
		assert.Equal(t, "Carthage", nations[2].Name())
		assert.Equal(t, "punic", sim.GameID())
	})

	t.Run("PublishesGameStarted", func(t *testing.T) {
		bus, rec := newRecordingBus()
		sim, err := NewGame(context.Background(), GameConfig{
			Size:      4,
			Nations:   2,
			Rng:       testutil.NewTestRNG(8),
			Logger:    testutil.NopLogger(),
			Publisher: bus,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{events.TypeStateTransition, events.TypeGameStarted}, rec.types())
		started := rec.events[1].(*events.GameStartedEvent)
		assert.Equal(t, sim.GameID(), started.GameID())
		assert.Len(t, started.Nations, 2)
		assert.Equal(t, 4, started.MapWidth)
	})

	t.Run("NegativeIdleDisablesStalemate", func(t *testing.T) {
		sim, err := NewGame(context.Background(), GameConfig{
			Size:         1,
			Nations:      1,
			MaxIdleTurns: -1,
			Rng:          testutil.NewTestRNG(8),
			Logger:       testutil.NopLogger(),
		})
		require.NoError(t, err)
		assert.Equal(t, -1, sim.stalemate.MaxIdle())
	})

	t.Run("SameSeedSameSetup", func(t *testing.T) {
		build := func() *Simulation {
			sim, err := NewGame(context.Background(), GameConfig{
				Size:    5,
				Nations: 4,
				Rng:     testutil.NewTestRNG(11),
				Logger:  testutil.NopLogger(),
			})
			require.NoError(t, err)
			return sim
		}
		a, b := build().Snapshot(), build().Snapshot()
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
		assert.Equal(t, a.Nations, b.Nations)
	})
}

func TestSeedNations(t *testing.T) {
	t.Run("FillsEveryCell", func(t *testing.T) {
		grid := testutil.CreateTestGrid(t, 3, 3, 0, 1, 2, 0, 1, 2, 0, 1, 2)
		nations := make([]*Nation, 9)
		for i := range nations {
			nations[i] = NewNation(core.NationID(i), string(rune('A'+i)), nil)
		}

		require.NoError(t, SeedNations(grid, nations, testutil.NewTestRNG(5)))
		assert.Equal(t, 9, grid.OwnedCount())
		for _, n := range nations {
			require.Equal(t, 1, n.ProvinceCount())
			p := n.Provinces()[0]
			assert.Equal(t, n.ID, p.Owner)
			assert.Equal(t, max(1, p.Development), n.Army())
		}
	})

	t.Run("TooManyNations", func(t *testing.T) {
		grid := testutil.CreateTestGrid(t, 1, 2)
		nations := []*Nation{NewNation(0, "A", nil), NewNation(1, "B", nil), NewNation(2, "C", nil)}
		err := SeedNations(grid, nations, testutil.NewTestRNG(5))
		assert.ErrorIs(t, err, core.ErrTooManyNations)
		assert.Equal(t, 0, grid.OwnedCount())
	})
}

func TestDefaultGamePlaysToCompletion(t *testing.T) {
	sim, err := NewGame(context.Background(), GameConfig{
		Size:    5,
		Nations: 3,
		Rng:     testutil.NewTestRNG(31),
		Logger:  testutil.NopLogger(),
	})
	require.NoError(t, err)

	res := sim.PlayToCompletion()
	assert.True(t, sim.IsOver())
	assert.True(t, sim.Phase().IsTerminal())
	switch res.Outcome {
	case OutcomeWinner:
		require.Len(t, sim.Nations(), 1)
		assert.Equal(t, sim.Nations()[0].Name(), res.Winner)
	case OutcomeStalemate:
		assert.Equal(t, NoWinner, res.Winner)
		assert.Equal(t, core.DefaultMaxIdleTurns, res.IdleTurns)
	default:
		t.Fatalf("unexpected outcome %q", res.Outcome)
	}
}
