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

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/Universalis/internal/config"
	"github.com/mitchelldurbincs/Universalis/internal/game"
	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	size := flag.Int("size", -1, "Grid side length (-1 to use config default)")
	nations := flag.Int("nations", -1, "Number of nations (-1 to use config default)")
	seed := flag.Int64("seed", -1, "Random seed, 0 for time based (-1 to use config default)")
	interval := flag.Int("interval", -1, "Milliseconds between rounds (-1 to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if *size != -1 {
		config.Set("game.size", *size)
		config.Set("game.width", 0)
		config.Set("game.height", 0)
	}
	if *nations != -1 {
		config.Set("game.nations", *nations)
	}
	if *seed != -1 {
		config.Set("game.seed", *seed)
	}
	if *interval != -1 {
		config.Set("ui.game.turn_interval", *interval)
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.SetupLogging(cfg.Runner.LogLevel, cfg.Runner.LogFormat, os.Stderr)

	gameSeed := cfg.Game.Seed
	if gameSeed == 0 {
		gameSeed = time.Now().UnixNano()
	}
	width, height := cfg.Game.Dimensions()
	sim, err := game.NewGame(context.Background(), game.GameConfig{
		Width:        width,
		Height:       height,
		Nations:      cfg.Game.Nations,
		Rng:          rand.New(rand.NewSource(gameSeed)),
		Logger:       logger,
		MaxIdleTurns: cfg.Game.IdleLimit(),
		Names:        cfg.Game.Names,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	viewer := ui.NewViewer(cfg.UI)
	viewer.Show(sim.Snapshot())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		viewer.Close()
	}()

	// The simulation is only touched from this goroutine from here on
	go func() {
		runner := game.NewRunner(sim,
			game.WithTurnLimit(cfg.Game.TurnLimit),
			game.WithTurnDelay(time.Duration(cfg.UI.Game.TurnInterval)*time.Millisecond),
			game.WithTurnHook(func(snap core.Snapshot) { viewer.Show(snap) }),
		)
		res, finished, err := runner.Run(ctx)
		switch {
		case err != nil:
			viewer.SetStatus("Stopped")
		case finished:
			viewer.SetStatus(fmt.Sprintf("Game over: %s (%s)", res.Outcome, res.Winner))
		default:
			viewer.SetStatus(fmt.Sprintf("Turn limit reached after %d rounds", res.Turns))
		}
	}()

	ebiten.SetWindowSize(cfg.UI.Window.Width, cfg.UI.Window.Height)
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal().Err(err).Msg("Viewer exited with error")
	}
}
