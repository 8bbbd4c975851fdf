package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/rs/zerolog"
)

// DevelopmentManager hands out the end-of-round development budget
type DevelopmentManager struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewDevelopmentManager creates a new development manager
func NewDevelopmentManager(rng *rand.Rand, logger zerolog.Logger) *DevelopmentManager {
	return &DevelopmentManager{
		rng:    rng,
		logger: logger.With().Str("component", "DevelopmentManager").Logger(),
	}
}

// Distribute gives every nation provinces/DevelopmentProvinceFactor points.
// Each point lands on an owned province drawn uniformly with replacement.
func (dm *DevelopmentManager) Distribute(nations []*Nation, turn int) int {
	total := 0
	for _, n := range nations {
		count := n.ProvinceCount()
		if count == 0 {
			continue
		}
		points := count / core.DevelopmentProvinceFactor
		for i := 0; i < points; i++ {
			n.provinces[dm.rng.Intn(count)].ChangeDevelopment(core.DistributedDevelopment)
		}
		total += points
	}

	dm.logger.Debug().
		Int("turn", turn).
		Int("points_distributed", total).
		Msg("Development distributed")
	return total
}
