package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBoard(t *testing.T) {
	grid, nations := lopsided(t)
	sim := newTestSimulation(t, grid, nations)
	snap := sim.Snapshot()

	out := RenderBoard(&snap)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// header, one row, blank line, legend
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], ColorRed+"A 5"+ColorReset)
	assert.Contains(t, lines[1], ColorBlue+"B 2"+ColorReset)
	assert.Contains(t, lines[3], "=Strong")
	assert.Contains(t, lines[3], "=Weak")
	assert.True(t, strings.HasSuffix(lines[3], ".=unowned"))
}

func TestRenderBoardUnowned(t *testing.T) {
	grid, nations := lopsided(t)
	grid.Province(1, 0).ClearOwner()
	nations[1].RemoveProvince(grid.Province(1, 0))
	sim := newTestSimulation(t, grid, nations)
	snap := sim.Snapshot()

	assert.Contains(t, RenderBoard(&snap), ColorGray+". 2"+ColorReset)
}
