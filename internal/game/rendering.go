package game

import (
	"strings"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// ANSI color codes for terminal board rendering
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

var nationColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan, ColorWhite}

const nationSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func nationColor(i int) string {
	if i < 0 {
		return ColorGray
	}
	return nationColors[i%len(nationColors)]
}

func nationSymbol(i int) byte {
	if i < 0 {
		return '.'
	}
	return nationSymbols[i%len(nationSymbols)]
}

// RenderBoard draws a compact colored board: each cell is the owner's letter
// followed by its development, then a legend mapping letters to nations.
func RenderBoard(snap *core.Snapshot) string {
	width, height := snap.Grid.Width, snap.Grid.Height

	order := make(map[string]int, len(snap.Nations))
	for i, n := range snap.Nations {
		order[n.Name] = i
	}

	var sb strings.Builder
	sb.Grow((width*14+10)*(height+2) + len(snap.Nations)*48)

	// Header row
	sb.WriteString("   ")
	for x := 0; x < width; x++ {
		sb.WriteString(" ")
		sb.WriteString(core.IntToStringFixedWidth(x, 3))
	}
	sb.WriteString("\n")

	for y := 0; y < height; y++ {
		sb.WriteString(core.IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := 0; x < width; x++ {
			c := snap.Grid.Cell(x, y)
			idx := -1
			if i, ok := order[c.Owner]; ok && c.Owner != "" {
				idx = i
			}
			sb.WriteString(" ")
			sb.WriteString(nationColor(idx))
			sb.WriteByte(nationSymbol(idx))
			sb.WriteString(core.IntToStringFixedWidth(c.Development, 2))
			sb.WriteString(ColorReset)
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	for i, n := range snap.Nations {
		sb.WriteString(nationColor(i))
		sb.WriteByte(nationSymbol(i))
		sb.WriteString(ColorReset)
		sb.WriteString("=")
		sb.WriteString(n.Name)
		sb.WriteString(" ")
	}
	sb.WriteString(".=unowned\n")

	return sb.String()
}
