package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
)

// TurnHook receives a snapshot after every round a Runner plays
type TurnHook func(snap core.Snapshot)

// Runner drives a simulation round by round until the game ends or the run is
// stopped early. The simulation must not be touched by anything else while
// Run is in progress.
type Runner struct {
	sim       *Simulation
	limiter   *rate.Limiter
	turnLimit int
	hook      TurnHook
	logger    zerolog.Logger
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithTurnDelay paces rounds to at most one per d. Zero or negative runs
// unpaced.
func WithTurnDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithTurnLimit stops the run once the simulation reaches round n
func WithTurnLimit(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.turnLimit = n
		}
	}
}

// WithTurnHook registers fn to be called after every round
func WithTurnHook(fn TurnHook) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.hook = fn
		}
	}
}

// NewRunner wraps sim
func NewRunner(sim *Simulation, opts ...RunnerOption) *Runner {
	r := &Runner{
		sim:    sim,
		hook:   func(core.Snapshot) {},
		logger: sim.logger.With().Str("component", "Runner").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays rounds until the game ends. finished is false when the run was
// cut short by the turn limit or by ctx, in which case res holds the rounds
// played so far and err is ctx.Err() for cancellation.
func (r *Runner) Run(ctx context.Context) (res Result, finished bool, err error) {
	r.logger.Debug().
		Int("turn_limit", r.turnLimit).
		Bool("paced", r.limiter != nil).
		Msg("Run starting")

	for {
		if res, ok := r.sim.Result(); ok {
			return res, true, nil
		}
		if r.turnLimit > 0 && r.sim.Turn() >= r.turnLimit {
			r.logger.Info().Int("turn", r.sim.Turn()).Msg("Turn limit reached")
			return r.partial(), false, nil
		}
		if err := ctx.Err(); err != nil {
			return r.partial(), false, err
		}
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				// Wait fails early when the next round falls past the deadline
				if ctxErr := ctx.Err(); ctxErr != nil {
					err = ctxErr
				}
				return r.partial(), false, err
			}
		}

		res, done, err := r.sim.Step()
		if err != nil {
			return res, done, err
		}
		r.hook(r.sim.Snapshot())
		if done {
			return res, true, nil
		}
	}
}

func (r *Runner) partial() Result {
	return Result{Turns: r.sim.turn, IdleTurns: r.sim.stalemate.Idle()}
}
