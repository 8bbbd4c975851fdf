package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/Universalis/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Strs("nations", e.Nations).
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight)

	case *events.GameFinishedEvent:
		logEvent.
			Str("outcome", e.Outcome).
			Str("winner", e.Winner).
			Int("final_turn", e.FinalTurn).
			Dur("duration", e.Duration)

	case *events.TurnCompletedEvent:
		logEvent.Int("turn", e.TurnNumber)
		if e.Snapshot != nil {
			logEvent.
				Int("nations", len(e.Snapshot.Nations)).
				Int("owned_provinces", e.Snapshot.OwnedProvinces())
		}

	case *events.ProvinceClaimedEvent:
		logEvent.
			Int("turn", e.Turn).
			Str("nation", e.Nation).
			Int("x", e.Location.X).
			Int("y", e.Location.Y).
			Int("development", e.Development)

	case *events.BattleResolvedEvent:
		logEvent.
			Int("turn", e.Turn).
			Str("attacker", e.Attacker).
			Str("defender", e.Defender).
			Int("target_x", e.Target.X).
			Int("target_y", e.Target.Y).
			Int("attacker_army", e.AttackerArmy).
			Int("defender_army", e.DefenderArmy).
			Str("result", e.Result).
			Bool("tile_captured", e.TileCaptured)

	case *events.NationEliminatedEvent:
		logEvent.
			Int("turn", e.Turn).
			Str("nation", e.Nation).
			Int("remaining", e.Remaining)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
