package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// MapConfig holds configuration for grid generation
type MapConfig struct {
	Width       int
	Height      int
	NationCount int
}

// DefaultMapConfig returns a configuration for a w x h grid hosting the given
// number of nations
func DefaultMapConfig(w, h, nations int) MapConfig {
	return MapConfig{
		Width:       w,
		Height:      h,
		NationCount: nations,
	}
}

// Generator handles grid generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new grid generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateGrid creates a grid with random starting development in every cell
func (g *Generator) GenerateGrid() (*core.Grid, error) {
	return core.NewGrid(g.config.Width, g.config.Height, g.rng)
}

// Placement is the starting cell picked for one nation
type Placement struct {
	NationIndex int
	core.Coordinate
}

// PlaceNations shuffles every grid coordinate and hands the first count of
// them out, one per nation, in list order.
func (g *Generator) PlaceNations(grid *core.Grid, count int) ([]Placement, error) {
	if count > grid.Area() {
		return nil, fmt.Errorf("%d nations on %d provinces: %w", count, grid.Area(), core.ErrTooManyNations)
	}

	coords := grid.AllCoordinates()
	g.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	placements := make([]Placement, count)
	for i := 0; i < count; i++ {
		placements[i] = Placement{NationIndex: i, Coordinate: coords[i]}
	}
	return placements, nil
}
