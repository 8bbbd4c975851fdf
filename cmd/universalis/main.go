package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/Universalis/internal/config"
	"github.com/mitchelldurbincs/Universalis/internal/game"
	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/game/events"
	"github.com/mitchelldurbincs/Universalis/internal/game/events/subscribers"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay, merges config.<env>.yaml")
	size := flag.Int("size", -1, "Grid side length (-1 to use config default)")
	nations := flag.Int("nations", -1, "Number of nations (-1 to use config default)")
	seed := flag.Int64("seed", -1, "Random seed, 0 for time based (-1 to use config default)")
	turns := flag.Int("turns", -1, "Stop after this many rounds, 0 for no limit (-1 to use config default)")
	maxIdle := flag.Int("max-idle", -1, "Stalemate threshold in rounds, 0 disables (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	logFormat := flag.String("log-format", "", "Log format (console, json) (empty to use config default)")
	delay := flag.Int("delay", -1, "Milliseconds between rounds (-1 to use config default)")
	snapshotEvery := flag.Int("snapshot-every", -1, "Print the board every N rounds, 0 disables (-1 to use config default)")
	color := flag.Bool("color", false, "Print boards with ANSI colors")
	logEvents := flag.Bool("log-events", false, "Log every game event")
	reportFormat := flag.String("report", "", "Final report format (text, yaml, none) (empty to use config default)")
	reportPath := flag.String("report-path", "", "Write the final report to this file instead of stdout")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if *env != "" {
		if err := config.LoadEnvironmentConfig(*env); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load %s config: %v\n", *env, err)
			os.Exit(1)
		}
	}

	// Use config defaults if not overridden by flags
	overrides := map[string]interface{}{}
	if *size != -1 {
		overrides["game.size"] = *size
		overrides["game.width"] = 0
		overrides["game.height"] = 0
	}
	if *nations != -1 {
		overrides["game.nations"] = *nations
	}
	if *seed != -1 {
		overrides["game.seed"] = *seed
	}
	if *turns != -1 {
		overrides["game.turn_limit"] = *turns
	}
	if *maxIdle != -1 {
		overrides["game.max_idle_turns"] = *maxIdle
	}
	if *logLevel != "" {
		overrides["runner.log_level"] = *logLevel
	}
	if *logFormat != "" {
		overrides["runner.log_format"] = *logFormat
	}
	if *delay != -1 {
		overrides["runner.turn_delay_ms"] = *delay
	}
	if *snapshotEvery != -1 {
		overrides["runner.snapshot_every"] = *snapshotEvery
	}
	// Bool flags only ever turn a setting on
	if *color {
		overrides["runner.color"] = true
	}
	if *logEvents {
		overrides["runner.log_events"] = true
	}
	if *reportFormat != "" {
		overrides["runner.report_format"] = *reportFormat
	}
	if *reportPath != "" {
		overrides["runner.report_path"] = *reportPath
	}
	for key, value := range overrides {
		config.Set(key, value)
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.SetupLogging(cfg.Runner.LogLevel, cfg.Runner.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Runner.LogEvents {
		bus := events.NewEventBusWithLogger(logger)
		eventLogger := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)
		eventLogger.SetDevMode(config.ParseLevel(cfg.Runner.LogLevel) == zerolog.DebugLevel)
		bus.Subscribe(eventLogger)
		publisher = bus
	}

	width, height := cfg.Game.Dimensions()
	sim, err := game.NewGame(ctx, game.GameConfig{
		Width:        width,
		Height:       height,
		Nations:      cfg.Game.Nations,
		Rng:          rand.New(rand.NewSource(seed)),
		Logger:       logger,
		Publisher:    publisher,
		MaxIdleTurns: cfg.Game.IdleLimit(),
		Names:        cfg.Game.Names,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	logger.Info().
		Str("game_id", sim.GameID()).
		Int64("seed", seed).
		Int("width", width).
		Int("height", height).
		Int("nations", cfg.Game.Nations).
		Int("turn_limit", cfg.Game.TurnLimit).
		Msg("Starting simulation")

	printer := newBoardPrinter(os.Stdout, cfg.Runner.Color)
	printer.Print(sim.Snapshot())

	every := cfg.Runner.SnapshotEvery
	runner := game.NewRunner(sim,
		game.WithTurnLimit(cfg.Game.TurnLimit),
		game.WithTurnDelay(time.Duration(cfg.Runner.TurnDelayMs)*time.Millisecond),
		game.WithTurnHook(func(snap core.Snapshot) {
			if every > 0 && snap.Turn%every == 0 {
				printer.Print(snap)
			}
		}),
	)

	res, finished, err := runner.Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if err != nil {
		logger.Warn().Err(err).Int("turn", sim.Turn()).Msg("Simulation interrupted")
	}

	final := sim.Snapshot()
	printer.Print(final)

	rep := newReport(sim.GameID(), seed, res, finished, final)
	return writeReport(rep, cfg.Runner.ReportFormat, cfg.Runner.ReportPath, os.Stdout)
}
