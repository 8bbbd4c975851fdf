package ui

import (
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/Universalis/internal/common"
	"github.com/mitchelldurbincs/Universalis/internal/config"
	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/ui/renderer"
	"github.com/mitchelldurbincs/Universalis/internal/ui/view"
)

const lineHeight = 15

// Viewer is an Ebitengine game that only displays snapshots. The simulation
// runs elsewhere and hands snapshots over through Show, so Draw never reads
// live simulation state.
type Viewer struct {
	cfg           config.UIConfig
	boardRenderer *renderer.BoardRenderer
	defaultFont   font.Face

	snapshot atomic.Pointer[core.Snapshot]
	status   atomic.Pointer[string]
	closed   atomic.Bool
}

// NewViewer creates a viewer for the given window settings.
func NewViewer(cfg config.UIConfig) *Viewer {
	v := &Viewer{
		cfg:         cfg,
		defaultFont: basicfont.Face7x13,
	}
	v.boardRenderer = renderer.NewBoardRenderer(v.defaultFont)
	return v
}

// Show replaces the displayed snapshot. Safe to call from any goroutine.
func (v *Viewer) Show(snap core.Snapshot) {
	v.snapshot.Store(&snap)
}

// SetStatus sets the message shown under the nation list
func (v *Viewer) SetStatus(msg string) {
	v.status.Store(&msg)
}

// Close makes the next Update end the Ebitengine loop
func (v *Viewer) Close() {
	v.closed.Store(true)
}

// Update proceeds the game state.
func (v *Viewer) Update() error {
	if v.closed.Load() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest snapshot.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)

	snap := v.snapshot.Load()
	status := ""
	if s := v.status.Load(); s != nil {
		status = *s
	}

	panelX := 5
	if snap != nil {
		layout := view.Compute(snap.Grid.Width, snap.Grid.Height, v.cfg.Game.TileSize, v.cfg.Window.Width, v.cfg.Window.Height)
		v.boardRenderer.Draw(screen, snap, layout)
		panelX = layout.PanelX(snap.Grid.Width)
	}

	ids := map[string]core.NationID{}
	if snap != nil {
		ids = view.OwnerIndex(snap)
	}
	for i, line := range view.StatusLines(snap, status) {
		clr := common.TextColor
		if id, ok := ids[line]; ok {
			clr = common.NationColor(int(id))
		}
		text.Draw(screen, line, v.defaultFont, panelX, 20+i*lineHeight, clr)
	}
}

// Layout defines the Ebitengine screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return v.cfg.Window.Width, v.cfg.Window.Height
}
