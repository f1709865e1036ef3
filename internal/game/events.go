package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/hanabi/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeCardPlayed    EventType = "card_played"
	EventTypeBombTriggered EventType = "bomb_triggered"
	EventTypeCardDiscarded EventType = "card_discarded"
	EventTypeHintUsed      EventType = "hint_used"
	EventTypeDeckExhausted EventType = "deck_exhausted"
	EventTypeGameFinished  EventType = "game_finished"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// EventSubscriber receives game events from an EventBus
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus distributes game events to subscribers
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// CardPlayedEvent is published when a card successfully extends a stack
type CardPlayedEvent struct {
	Player      string
	Card        deck.Card
	StackHeight int
	timestamp   time.Time
}

func (e CardPlayedEvent) EventType() EventType { return EventTypeCardPlayed }
func (e CardPlayedEvent) Timestamp() time.Time { return e.timestamp }

// NewCardPlayedEvent creates a new card played event
func NewCardPlayedEvent(player string, card deck.Card, stackHeight int) CardPlayedEvent {
	return CardPlayedEvent{
		Player:      player,
		Card:        card,
		StackHeight: stackHeight,
		timestamp:   time.Now(),
	}
}

// BombTriggeredEvent is published when a play fails and costs a bomb
type BombTriggeredEvent struct {
	Player    string
	Card      deck.Card
	Bombs     int
	timestamp time.Time
}

func (e BombTriggeredEvent) EventType() EventType { return EventTypeBombTriggered }
func (e BombTriggeredEvent) Timestamp() time.Time { return e.timestamp }

// NewBombTriggeredEvent creates a new bomb triggered event
func NewBombTriggeredEvent(player string, card deck.Card, bombs int) BombTriggeredEvent {
	return BombTriggeredEvent{
		Player:    player,
		Card:      card,
		Bombs:     bombs,
		timestamp: time.Now(),
	}
}

// CardDiscardedEvent is published when a player deliberately discards
type CardDiscardedEvent struct {
	Player         string
	Card           deck.Card
	HintsRemaining int
	timestamp      time.Time
}

func (e CardDiscardedEvent) EventType() EventType { return EventTypeCardDiscarded }
func (e CardDiscardedEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDiscardedEvent creates a new card discarded event
func NewCardDiscardedEvent(player string, card deck.Card, hintsRemaining int) CardDiscardedEvent {
	return CardDiscardedEvent{
		Player:         player,
		Card:           card,
		HintsRemaining: hintsRemaining,
		timestamp:      time.Now(),
	}
}

// HintUsedEvent is published when a player consumes a hint
type HintUsedEvent struct {
	Player         string
	HintsRemaining int
	timestamp      time.Time
}

func (e HintUsedEvent) EventType() EventType { return EventTypeHintUsed }
func (e HintUsedEvent) Timestamp() time.Time { return e.timestamp }

// NewHintUsedEvent creates a new hint used event
func NewHintUsedEvent(player string, hintsRemaining int) HintUsedEvent {
	return HintUsedEvent{
		Player:         player,
		HintsRemaining: hintsRemaining,
		timestamp:      time.Now(),
	}
}

// DeckExhaustedEvent is published when the last card leaves the deck and
// the final-lap countdown is armed
type DeckExhaustedEvent struct {
	TurnsRemaining int
	timestamp      time.Time
}

func (e DeckExhaustedEvent) EventType() EventType { return EventTypeDeckExhausted }
func (e DeckExhaustedEvent) Timestamp() time.Time { return e.timestamp }

// NewDeckExhaustedEvent creates a new deck exhausted event
func NewDeckExhaustedEvent(turnsRemaining int) DeckExhaustedEvent {
	return DeckExhaustedEvent{
		TurnsRemaining: turnsRemaining,
		timestamp:      time.Now(),
	}
}

// GameFinishedEvent is published by the engine when the turn loop ends
type GameFinishedEvent struct {
	Score     int
	Bombs     int
	timestamp time.Time
}

func (e GameFinishedEvent) EventType() EventType { return EventTypeGameFinished }
func (e GameFinishedEvent) Timestamp() time.Time { return e.timestamp }

// NewGameFinishedEvent creates a new game finished event
func NewGameFinishedEvent(score, bombs int) GameFinishedEvent {
	return GameFinishedEvent{
		Score:     score,
		Bombs:     bombs,
		timestamp: time.Now(),
	}
}

// LoggerObserver subscribes to a game's event bus and logs each event.
// It keeps presentation concerns out of the rule engine.
type LoggerObserver struct {
	logger *log.Logger
}

// NewLoggerObserver creates an observer that logs events to the given logger
func NewLoggerObserver(logger *log.Logger) *LoggerObserver {
	return &LoggerObserver{logger: logger}
}

// OnEvent logs the event with structured fields
func (o *LoggerObserver) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case CardPlayedEvent:
		o.logger.Debug("Card played", "player", e.Player, "card", e.Card.String(), "stack", e.StackHeight)
	case BombTriggeredEvent:
		o.logger.Debug("Bomb triggered", "player", e.Player, "card", e.Card.String(), "bombs", e.Bombs)
	case CardDiscardedEvent:
		o.logger.Debug("Card discarded", "player", e.Player, "card", e.Card.String(), "hints", e.HintsRemaining)
	case HintUsedEvent:
		o.logger.Debug("Hint used", "player", e.Player, "hints", e.HintsRemaining)
	case DeckExhaustedEvent:
		o.logger.Info("Deck exhausted", "turnsRemaining", e.TurnsRemaining)
	case GameFinishedEvent:
		o.logger.Info("Game finished", "score", e.Score, "bombs", e.Bombs)
	default:
		o.logger.Debug("Game event", "type", event.EventType())
	}
}
