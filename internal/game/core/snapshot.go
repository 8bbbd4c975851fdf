package core

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"lukechampine.com/blake3"
)

const maxNameWidth = 10

// CellView is a read-only copy of one province
type CellView struct {
	Development int    `json:"development" yaml:"development"`
	Owner       string `json:"owner,omitempty" yaml:"owner,omitempty"`
}

// GridView is a read-only copy of the grid, row-major
type GridView struct {
	Width  int        `json:"width" yaml:"width"`
	Height int        `json:"height" yaml:"height"`
	Cells  []CellView `json:"cells" yaml:"-"`
}

// Cell returns the view of (x, y)
func (g GridView) Cell(x, y int) CellView { return g.Cells[y*g.Width+x] }

// NationView is a read-only copy of one active nation
type NationView struct {
	ID               NationID `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Strategy         string   `json:"strategy" yaml:"strategy"`
	ProvinceCount    int      `json:"province_count" yaml:"province_count"`
	TotalDevelopment int      `json:"total_development" yaml:"total_development"`
	Army             int      `json:"army" yaml:"army"`
}

// Snapshot is an immutable copy of simulation state. Observers on other
// goroutines only ever see snapshots, never live state.
type Snapshot struct {
	Turn    int          `json:"turn" yaml:"turn"`
	Phase   string       `json:"phase" yaml:"phase"`
	Grid    GridView     `json:"grid" yaml:"grid"`
	Nations []NationView `json:"nations" yaml:"nations"`
}

// OwnedProvinces totals the province counts of every listed nation
func (s *Snapshot) OwnedProvinces() int {
	total := 0
	for _, n := range s.Nations {
		total += n.ProvinceCount
	}
	return total
}

// Fingerprint is a blake3 digest of the cell and nation state. Two runs from
// the same seed have equal fingerprints after the same number of rounds.
func (s *Snapshot) Fingerprint() string {
	h := blake3.New(32, nil)
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	writeString := func(v string) {
		writeInt(len(v))
		h.Write([]byte(v))
	}

	writeInt(s.Turn)
	writeInt(s.Grid.Width)
	writeInt(s.Grid.Height)
	for _, c := range s.Grid.Cells {
		writeInt(c.Development)
		writeString(c.Owner)
	}
	for _, n := range s.Nations {
		writeInt(int(n.ID))
		writeString(n.Name)
		writeInt(n.ProvinceCount)
		writeInt(n.TotalDevelopment)
		writeInt(n.Army)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// String renders the grid as dev:owner cells followed by the nation roster
func (s *Snapshot) String() string {
	var sb strings.Builder
	sb.Grow((s.Grid.Width*14+1)*s.Grid.Height + len(s.Nations)*64 + 128)

	sb.WriteString("\n=== Universalis Map snapshot ===\n")
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			c := s.Grid.Cell(x, y)
			owner := "."
			if c.Owner != "" {
				owner = TruncateName(c.Owner, maxNameWidth)
			}
			fmt.Fprintf(&sb, "%2d:%-10s ", c.Development, owner)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n=== Nations ===\n")
	for _, n := range s.Nations {
		fmt.Fprintf(&sb, "%s - provinces=%d, totalDev=%d, army=%d\n", n.Name, n.ProvinceCount, n.TotalDevelopment, n.Army)
	}
	sb.WriteString("===============================")
	return sb.String()
}
