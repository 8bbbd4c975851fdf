// Package view holds the parts of the viewer that do not need a window.
package view

import (
	"fmt"
	"image/color"

	"github.com/mitchelldurbincs/Universalis/internal/common"
	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// PanelWidth is the width reserved on the right of the board for status text
const PanelWidth = 260

// Layout places the board inside the window
type Layout struct {
	TileSize int
	OffsetX  int
	OffsetY  int
}

// Compute fits a gridW x gridH board into the window area left of the status
// panel. Tiles shrink below maxTile when the board would not fit, never
// below one pixel. The board is centered vertically.
func Compute(gridW, gridH, maxTile, screenW, screenH int) Layout {
	if gridW <= 0 || gridH <= 0 {
		return Layout{TileSize: max(maxTile, 1)}
	}
	areaW := max(screenW-PanelWidth, 1)
	tile := min(maxTile, areaW/gridW, screenH/gridH)
	tile = max(tile, 1)

	return Layout{
		TileSize: tile,
		OffsetX:  0,
		OffsetY:  max((screenH-tile*gridH)/2, 0),
	}
}

// Origin returns the top left pixel of cell (x, y)
func (l Layout) Origin(x, y int) (float32, float32) {
	return float32(l.OffsetX + x*l.TileSize), float32(l.OffsetY + y*l.TileSize)
}

// PanelX is where the status panel starts
func (l Layout) PanelX(gridW int) int {
	return l.OffsetX + gridW*l.TileSize + 10
}

// OwnerIndex maps nation names to their ids so cells can be colored
func OwnerIndex(snap *core.Snapshot) map[string]core.NationID {
	ids := make(map[string]core.NationID, len(snap.Nations))
	for _, n := range snap.Nations {
		ids[n.Name] = n.ID
	}
	return ids
}

// CellColor shades the owner's palette color by development. Unowned cells
// and cells whose owner is missing from ids use the unowned color.
func CellColor(cell core.CellView, ids map[string]core.NationID) color.RGBA {
	base := common.UnownedColor
	if cell.Owner != "" {
		if id, ok := ids[cell.Owner]; ok {
			base = common.NationColor(int(id))
		}
	}
	return common.Shade(base, cell.Development, core.MaxDevelopment)
}

// StatusLines renders the status panel for snap. A nil snapshot means the
// simulation has not produced one yet.
func StatusLines(snap *core.Snapshot, status string) []string {
	if snap == nil {
		return []string{"Waiting for simulation..."}
	}

	lines := []string{
		fmt.Sprintf("Turn: %d", snap.Turn),
		fmt.Sprintf("Phase: %s", snap.Phase),
		fmt.Sprintf("Owned: %d/%d", snap.OwnedProvinces(), snap.Grid.Width*snap.Grid.Height),
		"",
	}
	for _, n := range snap.Nations {
		lines = append(lines,
			core.TruncateName(n.Name, 16),
			fmt.Sprintf("  %s prov=%d dev=%d army=%d", n.Strategy, n.ProvinceCount, n.TotalDevelopment, n.Army),
		)
	}
	if status != "" {
		lines = append(lines, "", status)
	}
	return lines
}
