package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Turn:  4,
		Phase: "Running",
		Grid: GridView{
			Width:  2,
			Height: 1,
			Cells: []CellView{
				{Development: 5, Owner: "Scotland Principality"},
				{Development: 2},
			},
		},
		Nations: []NationView{
			{ID: 0, Name: "Scotland Principality", Strategy: "Offensive", ProvinceCount: 1, TotalDevelopment: 5, Army: 10},
		},
	}
}

func TestSnapshot_String(t *testing.T) {
	out := sampleSnapshot().String()
	assert.Contains(t, out, "\n=== Universalis Map snapshot ===\n")
	assert.Contains(t, out, " 5:Scotland P ")
	assert.Contains(t, out, " 2:.          ")
	assert.Contains(t, out, "Scotland Principality - provinces=1, totalDev=5, army=10\n")
	assert.True(t, strings.HasSuffix(out, "==============================="))
}

func TestSnapshot_Fingerprint(t *testing.T) {
	a, b := sampleSnapshot(), sampleSnapshot()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)

	b.Grid.Cells[1].Development = 3
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := sampleSnapshot()
	c.Nations[0].Army = 11
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestSnapshot_OwnedProvinces(t *testing.T) {
	assert.Equal(t, 1, sampleSnapshot().OwnedProvinces())
	assert.Equal(t, 0, (&Snapshot{}).OwnedProvinces())
}
