package main

import (
	"fmt"
	"io"

	"github.com/mitchelldurbincs/Universalis/internal/game"
	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// boardPrinter writes snapshots to a terminal
type boardPrinter struct {
	out   io.Writer
	color bool
}

func newBoardPrinter(out io.Writer, color bool) *boardPrinter {
	return &boardPrinter{out: out, color: color}
}

func (p *boardPrinter) Print(snap core.Snapshot) {
	if p.color {
		fmt.Fprintf(p.out, "Turn %d\n%s\n", snap.Turn, game.RenderBoard(&snap))
		return
	}
	fmt.Fprintln(p.out, snap.String())
}
