package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// CreateTestGrid builds a width x height grid of unowned provinces whose
// developments are taken row-major from devs. Missing entries are 0.
func CreateTestGrid(t *testing.T, width, height int, devs ...int) *core.Grid {
	t.Helper()
	grid, err := core.NewGrid(width, height, NewTestRNG(1))
	if err != nil {
		t.Fatalf("CreateTestGrid(%d, %d): %v", width, height, err)
	}
	for i := 0; i < grid.Area(); i++ {
		dev := 0
		if i < len(devs) {
			dev = devs[i]
		}
		x, y := grid.XY(i)
		if err := grid.SetProvince(x, y, core.NewProvince(dev)); err != nil {
			t.Fatalf("SetProvince(%d, %d): %v", x, y, err)
		}
	}
	return grid
}

// AssignOwners sets the owner of each listed cell.
func AssignOwners(grid *core.Grid, owners map[core.Coordinate]core.NationID) {
	for c, id := range owners {
		grid.At(c).SetOwner(id)
	}
}
