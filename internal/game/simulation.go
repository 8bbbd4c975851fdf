package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/Universalis/internal/game/core"
	"github.com/mitchelldurbincs/Universalis/internal/game/events"
	"github.com/mitchelldurbincs/Universalis/internal/game/rules"
	"github.com/mitchelldurbincs/Universalis/internal/game/states"
)

// Outcome describes how a game ended
type Outcome string

const (
	OutcomeWinner      Outcome = "winner"
	OutcomeNoSurvivors Outcome = "no_survivors"
	OutcomeStalemate   Outcome = "stalemate"
)

// NoWinner is the winner name reported when no single nation survived
const NoWinner = "none"

// Result summarizes a finished game
type Result struct {
	Outcome   Outcome `json:"outcome" yaml:"outcome"`
	Winner    string  `json:"winner" yaml:"winner"`
	Turns     int     `json:"turns" yaml:"turns"`
	IdleTurns int     `json:"idle_turns" yaml:"idle_turns"`
}

// Simulation owns the grid and the active nations and advances them round by
// round. It is not safe for concurrent use; other goroutines should consume
// snapshots.
type Simulation struct {
	grid      *core.Grid
	nations   []*Nation
	byID      map[core.NationID]*Nation
	rng       *rand.Rand
	logger    zerolog.Logger
	publisher events.Publisher
	gameID    string
	maxIdle   int
	turn      int
	startedAt time.Time
	result    *Result

	turnProcessor *TurnProcessor
	development   *DevelopmentManager
	winCondition  *rules.WinConditionChecker
	stalemate     *rules.StalemateDetector
	stateMachine  *states.StateMachine
}

// Option configures a Simulation
type Option func(*Simulation)

// WithRand sets the random stream; every random decision draws from it
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulation) { s.logger = logger }
}

// WithPublisher sets the observer receiving simulation events
func WithPublisher(p events.Publisher) Option {
	return func(s *Simulation) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithGameID(id string) Option {
	return func(s *Simulation) { s.gameID = id }
}

// WithMaxIdleTurns sets the stalemate threshold; n <= 0 disables detection
func WithMaxIdleTurns(n int) Option {
	return func(s *Simulation) { s.maxIdle = n }
}

// NewSimulation creates a simulation over grid with nations in turn order.
// The nations' province memberships must already agree with the grid.
func NewSimulation(grid *core.Grid, nations []*Nation, opts ...Option) (*Simulation, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: grid is required", core.ErrInvalidConfiguration)
	}

	s := &Simulation{
		grid:      grid,
		byID:      make(map[core.NationID]*Nation, len(nations)),
		logger:    log.Logger,
		publisher: events.NopPublisher{},
		maxIdle:   core.DefaultMaxIdleTurns,
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.gameID == "" {
		s.gameID = uuid.NewString()
	}
	s.logger = s.logger.With().Str("component", "Simulation").Str("game_id", s.gameID).Logger()

	for _, n := range nations {
		if n == nil {
			return nil, fmt.Errorf("%w: nil nation", core.ErrInvalidNation)
		}
		if _, dup := s.byID[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d (%s)", core.ErrInvalidNation, n.ID, n.name)
		}
		s.byID[n.ID] = n
		s.nations = append(s.nations, n)
	}

	s.turnProcessor = NewTurnProcessor(s)
	s.development = NewDevelopmentManager(s.rng, s.logger)
	s.winCondition = rules.NewWinConditionChecker(s.logger)
	s.stalemate = rules.NewStalemateDetector(s.maxIdle, s.ownedProvinces())
	s.stateMachine = states.NewStateMachine(states.NewGameContext(s.gameID, len(s.nations), s.logger), s.publisher)

	if len(s.nations) > 0 {
		if err := s.stateMachine.TransitionTo(states.PhaseRunning, "simulation created"); err != nil {
			return nil, fmt.Errorf("state machine initialization failed: %w", err)
		}
	}
	return s, nil
}

func (s *Simulation) Grid() *core.Grid        { return s.grid }
func (s *Simulation) Turn() int               { return s.turn }
func (s *Simulation) GameID() string          { return s.gameID }
func (s *Simulation) Phase() states.GamePhase { return s.stateMachine.CurrentPhase() }

// Nations returns the active nations in turn order
func (s *Simulation) Nations() []*Nation {
	out := make([]*Nation, len(s.nations))
	copy(out, s.nations)
	return out
}

// Nation resolves an owner id to an active nation
func (s *Simulation) Nation(id core.NationID) (*Nation, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// Result returns the final result once the game has ended
func (s *Simulation) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// IsOver reports whether a terminal phase has been reached
func (s *Simulation) IsOver() bool {
	return s.result != nil
}

// RunTurns plays up to n rounds, stopping early once at most one nation
// remains. Stalemate is tracked but does not stop it. Returns rounds played.
func (s *Simulation) RunTurns(n int) int {
	played := 0
	for played < n && len(s.nations) > 1 && s.result == nil {
		s.turnProcessor.ProcessTurn()
		played++
	}
	if len(s.nations) <= 1 && s.result == nil {
		s.finish(false)
	}
	return played
}

// Step plays one round of a game run to completion. done is true once the
// game has ended, in which case res is final. Stepping a finished game fails
// with ErrGameOver.
func (s *Simulation) Step() (res Result, done bool, err error) {
	if s.result != nil {
		s.logger.Warn().Int("turn", s.turn).Msg("Attempted to step game that is already over")
		return *s.result, true, core.WrapGameStateError(s.turn, "step", core.ErrGameOver)
	}
	if len(s.nations) <= 1 {
		return s.finish(false), true, nil
	}

	stalled := s.turnProcessor.ProcessTurn()
	if over, _ := s.winCondition.CheckGameOver(s.contenders()); over {
		return s.finish(false), true, nil
	}
	if stalled {
		return s.finish(true), true, nil
	}
	return Result{Turns: s.turn, IdleTurns: s.stalemate.Idle()}, false, nil
}

// PlayToCompletion steps until one nation remains or a stalemate is detected
func (s *Simulation) PlayToCompletion() Result {
	for {
		res, done, _ := s.Step()
		if done {
			return res
		}
	}
}

func (s *Simulation) contenders() []rules.Contender {
	out := make([]rules.Contender, len(s.nations))
	for i, n := range s.nations {
		out[i] = n
	}
	return out
}

// finish records the result, moves to the terminal phase and notifies observers
func (s *Simulation) finish(stalled bool) Result {
	res := Result{Winner: NoWinner, Turns: s.turn, IdleTurns: s.stalemate.Idle()}
	phase := states.PhaseFinished
	reason := "one nation remains"
	switch {
	case len(s.nations) == 1:
		res.Outcome = OutcomeWinner
		res.Winner = s.nations[0].name
	case len(s.nations) == 0:
		res.Outcome = OutcomeNoSurvivors
		reason = "no nations remain"
	case stalled:
		res.Outcome = OutcomeStalemate
		phase = states.PhaseStalemate
		reason = fmt.Sprintf("territory unchanged for %d rounds", res.IdleTurns)
	}
	s.result = &res

	gameContext := s.stateMachine.GetContext()
	gameContext.Turn = s.turn
	gameContext.NationCount = len(s.nations)
	if res.Outcome == OutcomeWinner {
		gameContext.Winner = res.Winner
	}
	if err := s.stateMachine.TransitionTo(phase, reason); err != nil {
		s.logger.Error().Err(err).Str("to_phase", phase.String()).Msg("Failed to enter terminal phase")
	}

	duration := time.Since(s.startedAt)
	snap := s.Snapshot()
	s.publish(events.NewGameFinishedEvent(s.gameID, string(res.Outcome), res.Winner, s.turn, duration, &snap))

	s.logger.Info().
		Str("outcome", string(res.Outcome)).
		Str("winner", res.Winner).
		Int("turns", res.Turns).
		Int("idle_turns", res.IdleTurns).
		Dur("duration", duration).
		Msg("Game over")
	return res
}

func (s *Simulation) armyOf(id core.NationID) (int, bool) {
	n, ok := s.byID[id]
	if !ok {
		return 0, false
	}
	return n.army, true
}

func (s *Simulation) ownedProvinces() int {
	total := 0
	for _, n := range s.nations {
		total += n.ProvinceCount()
	}
	return total
}

func (s *Simulation) publish(e events.Event) {
	s.publisher.Publish(e)
}

// observed reports whether anyone is listening for events
func (s *Simulation) observed() bool {
	_, nop := s.publisher.(events.NopPublisher)
	return !nop
}

// Snapshot returns an immutable copy of the grid and the active nations
func (s *Simulation) Snapshot() core.Snapshot {
	cells := make([]core.CellView, s.grid.Area())
	for i := range cells {
		x, y := s.grid.XY(i)
		p := s.grid.Province(x, y)
		cells[i].Development = p.Development
		if owner, ok := s.byID[p.Owner]; ok {
			cells[i].Owner = owner.name
		}
	}

	nations := make([]core.NationView, len(s.nations))
	for i, n := range s.nations {
		strategy := ""
		if n.strategy != nil {
			strategy = n.strategy.String()
		}
		nations[i] = core.NationView{
			ID:               n.ID,
			Name:             n.name,
			Strategy:         strategy,
			ProvinceCount:    n.ProvinceCount(),
			TotalDevelopment: n.TotalDevelopment(),
			Army:             n.army,
		}
	}

	return core.Snapshot{
		Turn:    s.turn,
		Phase:   s.Phase().String(),
		Grid:    core.GridView{Width: s.grid.Width(), Height: s.grid.Height(), Cells: cells},
		Nations: nations,
	}
}

// String renders the current snapshot as text
func (s *Simulation) String() string {
	snap := s.Snapshot()
	return snap.String()
}
