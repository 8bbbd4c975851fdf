package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/game/events"
	"github.com/mitchelldurbincs/Universalis/internal/game/mapgen"
	"github.com/mitchelldurbincs/Universalis/internal/game/names"
)

// GameConfig describes a game to set up. Width and Height default to Size.
// Names, when given, are used in order before generated ones.
type GameConfig struct {
	Size         int
	Width        int
	Height       int
	Nations      int
	Rng          *rand.Rand
	Logger       zerolog.Logger
	Publisher    events.Publisher
	GameID       string
	MaxIdleTurns int
	Names        []string
}

// GameInitializer handles the setup of a ready-to-run simulation
type GameInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewGameInitializer creates a new game initializer
func NewGameInitializer(cfg GameConfig) *GameInitializer {
	return &GameInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "GameInitializer").Logger(),
	}
}

// NewGame validates cfg and builds a seeded simulation in the Running phase
func NewGame(ctx context.Context, cfg GameConfig) (*Simulation, error) {
	return NewGameInitializer(cfg).Initialize(ctx)
}

// CreateDefaultGame builds a size x size game with numNations randomly named
// nations and random behavior modes, using a time-seeded random stream
func CreateDefaultGame(size, numNations int) (*Simulation, error) {
	return NewGame(context.Background(), GameConfig{
		Size:    size,
		Nations: numNations,
		Rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:  log.Logger,
	})
}

// Initialize creates and seeds the simulation
func (gi *GameInitializer) Initialize(ctx context.Context) (*Simulation, error) {
	select {
	case <-ctx.Done():
		gi.logger.Error().Err(ctx.Err()).Msg("Game creation cancelled before setup")
		return nil, ctx.Err()
	default:
	}

	gi.setupDefaults()
	if err := gi.validate(); err != nil {
		return nil, err
	}

	nations, err := gi.createNations()
	if err != nil {
		return nil, fmt.Errorf("nation creation failed: %w", err)
	}

	generator := mapgen.NewGenerator(mapgen.DefaultMapConfig(gi.config.Width, gi.config.Height, gi.config.Nations), gi.config.Rng)
	grid, err := generator.GenerateGrid()
	if err != nil {
		return nil, fmt.Errorf("map generation failed: %w", err)
	}
	if err := seedWith(generator, grid, nations); err != nil {
		return nil, fmt.Errorf("nation seeding failed: %w", err)
	}

	sim, err := NewSimulation(grid, nations,
		WithRand(gi.config.Rng),
		WithLogger(gi.config.Logger),
		WithPublisher(gi.config.Publisher),
		WithGameID(gi.config.GameID),
		WithMaxIdleTurns(gi.config.MaxIdleTurns),
	)
	if err != nil {
		return nil, err
	}

	nationNames := make([]string, len(nations))
	for i, n := range nations {
		nationNames[i] = n.name
	}
	sim.publish(events.NewGameStartedEvent(sim.gameID, nationNames, grid.Width(), grid.Height()))

	gi.logger.Info().
		Str("game_id", sim.gameID).
		Int("width", grid.Width()).
		Int("height", grid.Height()).
		Int("nations", len(nations)).
		Msg("Game created successfully")
	return sim, nil
}

// setupDefaults sets up default values for missing configuration
func (gi *GameInitializer) setupDefaults() {
	if gi.config.Width == 0 {
		gi.config.Width = gi.config.Size
	}
	if gi.config.Height == 0 {
		gi.config.Height = gi.config.Size
	}
	if gi.config.Rng == nil {
		gi.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		gi.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if gi.config.GameID == "" {
		gi.config.GameID = uuid.NewString()
	}
	if gi.config.MaxIdleTurns == 0 {
		gi.config.MaxIdleTurns = core.DefaultMaxIdleTurns
	}
}

func (gi *GameInitializer) validate() error {
	w, h, count := gi.config.Width, gi.config.Height, gi.config.Nations
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%dx%d: %w", w, h, core.ErrInvalidDimensions)
	}
	if count <= 0 {
		return fmt.Errorf("%w: nation count must be positive, got %d", core.ErrInvalidConfiguration, count)
	}
	if count > w*h {
		return fmt.Errorf("%d nations on %d provinces: %w", count, w*h, core.ErrTooManyNations)
	}
	return nil
}

// createNations names the nations and draws a behavior mode for each
func (gi *GameInitializer) createNations() ([]*Nation, error) {
	nameGen := names.NewGenerator(gi.config.Rng)
	nations := make([]*Nation, gi.config.Nations)
	for i := range nations {
		var name string
		if i < len(gi.config.Names) && gi.config.Names[i] != "" {
			name = gi.config.Names[i]
		} else {
			var err error
			if name, err = nameGen.Next(); err != nil {
				return nil, err
			}
		}
		kind := RandomStrategyKind(gi.config.Rng)
		nations[i] = NewNation(core.NationID(i), name, NewStrategy(kind, gi.config.Rng))
		gi.logger.Debug().
			Int("nation_id", i).
			Str("name", name).
			Str("strategy", kind.String()).
			Msg("Nation created")
	}
	return nations, nil
}

// SeedNations gives each nation one distinct random starting province, then
// sets every army to its nation's total development (at least 1)
func SeedNations(grid *core.Grid, nations []*Nation, rng *rand.Rand) error {
	generator := mapgen.NewGenerator(mapgen.DefaultMapConfig(grid.Width(), grid.Height(), len(nations)), rng)
	return seedWith(generator, grid, nations)
}

func seedWith(generator *mapgen.Generator, grid *core.Grid, nations []*Nation) error {
	placements, err := generator.PlaceNations(grid, len(nations))
	if err != nil {
		return err
	}
	for _, pl := range placements {
		n := nations[pl.NationIndex]
		p := grid.At(pl.Coordinate)
		p.SetOwner(n.ID)
		n.AddProvinceOnSetup(p)
	}
	for _, n := range nations {
		n.SetArmy(n.TotalDevelopment())
	}
	return nil
}
