package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/game/events"
	"github.com/mitchelldurbincs/Universalis/internal/testutil"
)

func newTestSimulation(t *testing.T, grid *core.Grid, nations []*Nation, opts ...Option) *Simulation {
	t.Helper()
	base := []Option{
		WithRand(testutil.NewTestRNG(42)),
		WithLogger(testutil.NopLogger()),
		WithGameID("test-game"),
	}
	sim, err := NewSimulation(grid, nations, append(base, opts...)...)
	require.NoError(t, err)
	return sim
}

// own assigns cells to n as setup provinces
func own(grid *core.Grid, n *Nation, coords ...core.Coordinate) {
	for _, c := range coords {
		p := grid.At(c)
		p.SetOwner(n.ID)
		n.AddProvinceOnSetup(p)
	}
}

func at(x, y int) core.Coordinate { return core.NewCoordinate(x, y) }

// recorder keeps every event it sees
type recorder struct {
	events []events.Event
}

func (r *recorder) ID() string               { return "recorder" }
func (r *recorder) InterestedIn(string) bool { return true }
func (r *recorder) HandleEvent(e events.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type()
	}
	return out
}

func newRecordingBus() (*events.EventBus, *recorder) {
	bus := events.NewEventBusWithLogger(testutil.NopLogger())
	rec := &recorder{}
	bus.Subscribe(rec)
	return bus, rec
}
