package core

import (
	"fmt"
	"math/rand"
)

// Grid is a fixed-size rectangular array of provinces stored row-major.
// The shape never changes after construction; cell contents do.
type Grid struct {
	w, h  int
	cells []*Province
}

// NewGrid allocates a width x height grid and fills every cell with a freshly
// generated province.
func NewGrid(width, height int, rng *rand.Rand) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	g := &Grid{w: width, h: height, cells: make([]*Province, width*height)}
	for i := range g.cells {
		g.cells[i] = NewRandomProvince(rng)
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }
func (g *Grid) Area() int   { return g.w * g.h }

func (g *Grid) Idx(x, y int) int      { return y*g.w + x }
func (g *Grid) XY(idx int) (int, int) { return idx % g.w, idx / g.w }

// InBounds checks if coordinates are within grid boundaries
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Province returns the cell at (x, y). Out of range access is a programmer
// error and panics with a *GridError wrapping ErrOutOfBounds.
func (g *Grid) Province(x, y int) *Province {
	p, err := g.Lookup(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// Lookup is the non-panicking form of Province
func (g *Grid) Lookup(x, y int) (*Province, error) {
	if !g.InBounds(x, y) {
		return nil, &GridError{X: x, Y: y, Err: ErrOutOfBounds}
	}
	return g.cells[g.Idx(x, y)], nil
}

// At returns the province at c
func (g *Grid) At(c Coordinate) *Province { return g.Province(c.X, c.Y) }

// SetProvince replaces the cell at (x, y). Used for deterministic setup.
func (g *Grid) SetProvince(x, y int, p *Province) error {
	if !g.InBounds(x, y) {
		return &GridError{X: x, Y: y, Err: ErrOutOfBounds}
	}
	if p == nil {
		return &GridError{X: x, Y: y, Err: fmt.Errorf("%w: nil province", ErrInvalidConfiguration)}
	}
	g.cells[g.Idx(x, y)] = p
	return nil
}

// NeighborsOf returns the up to 4 in-bounds orthogonal neighbors of (x, y)
func (g *Grid) NeighborsOf(x, y int) []Coordinate {
	return NewCoordinate(x, y).ValidNeighbors(g.w, g.h)
}

// AllCoordinates lists every coordinate in row-major order
func (g *Grid) AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(g.cells))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			coords = append(coords, Coordinate{X: x, Y: y})
		}
	}
	return coords
}

// OwnedBy lists, row-major, the coordinates whose province is owned by id
func (g *Grid) OwnedBy(id NationID) []Coordinate {
	var owned []Coordinate
	for i, p := range g.cells {
		if p.OwnedBy(id) {
			owned = append(owned, FromIndex(i, g.w))
		}
	}
	return owned
}

// OwnedCount returns the number of owned cells
func (g *Grid) OwnedCount() int {
	n := 0
	for _, p := range g.cells {
		if p.IsOwned() {
			n++
		}
	}
	return n
}

// ClearOwner resets every cell owned by id and returns how many were cleared
func (g *Grid) ClearOwner(id NationID) int {
	cleared := 0
	for _, p := range g.cells {
		if p.OwnedBy(id) {
			p.ClearOwner()
			cleared++
		}
	}
	return cleared
}
