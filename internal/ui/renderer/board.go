package renderer

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/Universalis/internal/common"
	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/ui/view"
)

// minLabelTile is the smallest tile that still gets a development label
const minLabelTile = 16

type BoardRenderer struct {
	defaultFont font.Face
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(f font.Face) *BoardRenderer {
	return &BoardRenderer{defaultFont: f}
}

// Draw renders the snapshot's grid on the supplied Ebiten screen.
func (br *BoardRenderer) Draw(screen *ebiten.Image, snap *core.Snapshot, layout view.Layout) {
	if snap == nil {
		return
	}

	ids := view.OwnerIndex(snap)
	size := float32(layout.TileSize)
	inset := float32(0)
	if layout.TileSize > 4 {
		inset = 1
	}

	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			cell := snap.Grid.Cell(x, y)
			screenX, screenY := layout.Origin(x, y)

			// Grid line background, then the tile body
			vector.DrawFilledRect(screen, screenX, screenY, size, size, common.GridLineColor, false)
			vector.DrawFilledRect(screen, screenX+inset, screenY+inset, size-2*inset, size-2*inset, view.CellColor(cell, ids), false)

			if layout.TileSize < minLabelTile || br.defaultFont == nil {
				continue
			}
			label := strconv.Itoa(cell.Development)
			b := text.BoundString(br.defaultFont, label)
			textW := b.Max.X - b.Min.X
			textH := b.Max.Y - b.Min.Y

			tx := int(screenX) + (layout.TileSize-textW)/2
			ty := int(screenY) + (layout.TileSize+textH)/2
			text.Draw(screen, label, br.defaultFont, tx, ty, common.TextColor)
		}
	}
}
