package states

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Universalis/internal/game/events"
)

func TestGamePhase_String(t *testing.T) {
	tests := []struct {
		phase    GamePhase
		expected string
	}{
		{PhaseSetup, "Setup"},
		{PhaseRunning, "Running"},
		{PhaseFinished, "Finished"},
		{PhaseStalemate, "Stalemate"},
		{GamePhase(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestGamePhase_Properties(t *testing.T) {
	t.Run("IsTerminal", func(t *testing.T) {
		assert.True(t, PhaseFinished.IsTerminal())
		assert.True(t, PhaseStalemate.IsTerminal())
		assert.False(t, PhaseRunning.IsTerminal())
		assert.False(t, PhaseSetup.IsTerminal())
	})

	t.Run("CanPlayRounds", func(t *testing.T) {
		assert.True(t, PhaseRunning.CanPlayRounds())
		assert.False(t, PhaseSetup.CanPlayRounds())
		assert.False(t, PhaseFinished.CanPlayRounds())
	})
}

func TestGamePhase_Transitions(t *testing.T) {
	allPhases := []GamePhase{PhaseSetup, PhaseRunning, PhaseFinished, PhaseStalemate}
	tests := []struct {
		from    GamePhase
		allowed []GamePhase
	}{
		{PhaseSetup, []GamePhase{PhaseRunning, PhaseFinished}},
		{PhaseRunning, []GamePhase{PhaseFinished, PhaseStalemate}},
		{PhaseFinished, []GamePhase{}},
		{PhaseStalemate, []GamePhase{}},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.AllowedTransitions())

			for _, target := range allPhases {
				assert.Equal(t, contains(tt.allowed, target), tt.from.CanTransitionTo(target),
					"%s -> %s", tt.from, target)
			}
		})
	}
}

func contains(phases []GamePhase, target GamePhase) bool {
	for _, p := range phases {
		if p == target {
			return true
		}
	}
	return false
}

func TestParsePhase(t *testing.T) {
	for _, p := range []GamePhase{PhaseSetup, PhaseRunning, PhaseFinished, PhaseStalemate} {
		parsed, err := ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePhase("Lobby")
	assert.Error(t, err)
}

func TestStateMachine(t *testing.T) {
	logger := zerolog.Nop()

	setup := func() (*StateMachine, *GameContext, *events.EventBus) {
		ctx := NewGameContext("test-game", 3, logger)
		bus := events.NewEventBusWithLogger(logger)
		return NewStateMachine(ctx, bus), ctx, bus
	}

	t.Run("NewStateMachine", func(t *testing.T) {
		sm, _, _ := setup()
		assert.Equal(t, PhaseSetup, sm.CurrentPhase())
		assert.Len(t, sm.states, 4)
		assert.Empty(t, sm.GetHistory())
	})

	t.Run("Valid Transitions", func(t *testing.T) {
		sm, ctx, bus := setup()

		var published []*events.StateTransitionEvent
		bus.SubscribeFunc(events.TypeStateTransition, func(e events.Event) {
			published = append(published, e.(*events.StateTransitionEvent))
		})

		require.NoError(t, sm.TransitionTo(PhaseRunning, "nations seeded"))
		assert.Equal(t, PhaseRunning, sm.CurrentPhase())
		assert.False(t, ctx.StartTime.IsZero())

		ctx.NationCount = 1
		ctx.Winner = "Peru Clan"
		require.NoError(t, sm.TransitionTo(PhaseFinished, "one nation remains"))
		assert.Equal(t, PhaseFinished, sm.CurrentPhase())
		assert.False(t, ctx.EndTime.IsZero())

		require.Len(t, published, 2)
		assert.Equal(t, "Setup", published[0].FromPhase)
		assert.Equal(t, "Running", published[0].ToPhase)
		assert.Equal(t, "one nation remains", published[1].Reason)
		assert.Equal(t, "test-game", published[1].GameID())
	})

	t.Run("Invalid Transitions", func(t *testing.T) {
		sm, _, _ := setup()

		err := sm.TransitionTo(PhaseStalemate, "skip running")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid transition")
		assert.Equal(t, PhaseSetup, sm.CurrentPhase())

		require.NoError(t, sm.TransitionTo(PhaseRunning, "start"))
		require.NoError(t, sm.TransitionTo(PhaseStalemate, "idle"))
		assert.Error(t, sm.TransitionTo(PhaseRunning, "resume"))
		assert.Equal(t, PhaseStalemate, sm.CurrentPhase())
	})

	t.Run("State Validation", func(t *testing.T) {
		sm, ctx, _ := setup()

		ctx.NationCount = 0
		err := sm.TransitionTo(PhaseRunning, "empty")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no nations")
		assert.Equal(t, PhaseSetup, sm.CurrentPhase())

		ctx.NationCount = 3
		require.NoError(t, sm.TransitionTo(PhaseRunning, "start"))
		err = sm.TransitionTo(PhaseFinished, "too early")
		assert.Error(t, err)
		assert.Equal(t, PhaseRunning, sm.CurrentPhase())
	})

	t.Run("History Tracking", func(t *testing.T) {
		sm, _, _ := setup()

		require.NoError(t, sm.TransitionTo(PhaseRunning, "start"))
		require.NoError(t, sm.TransitionTo(PhaseStalemate, "idle"))

		history := sm.GetHistory()
		require.Len(t, history, 2)
		assert.Equal(t, PhaseSetup, history[0].From)
		assert.Equal(t, PhaseRunning, history[0].To)
		assert.Equal(t, "idle", history[1].Reason)
		assert.WithinDuration(t, time.Now(), history[1].Timestamp, time.Second)

		// Returned history is a copy
		history[0].Reason = "mutated"
		assert.Equal(t, "start", sm.GetHistory()[0].Reason)
	})

	t.Run("Finish Without Running", func(t *testing.T) {
		sm, ctx, _ := setup()
		ctx.NationCount = 0

		require.NoError(t, sm.TransitionTo(PhaseFinished, "no nations"))
		assert.Equal(t, PhaseFinished, sm.CurrentPhase())
		assert.True(t, ctx.StartTime.IsZero())
	})

	t.Run("Nil Publisher", func(t *testing.T) {
		sm := NewStateMachine(NewGameContext("quiet", 2, logger), nil)
		assert.NoError(t, sm.TransitionTo(PhaseRunning, "start"))
	})
}

func TestStateMachineHistoryBound(t *testing.T) {
	sm := NewStateMachine(NewGameContext("bounded", 2, zerolog.Nop()), nil)
	sm.maxHistorySize = 1

	require.NoError(t, sm.TransitionTo(PhaseRunning, "start"))
	require.NoError(t, sm.TransitionTo(PhaseStalemate, "idle"))

	history := sm.GetHistory()
	require.Len(t, history, 1)
	assert.Equal(t, PhaseStalemate, history[0].To)
}
