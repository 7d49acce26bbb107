// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-pong/pkg/entity"
)

// Type represents the type of event
type Type string

// Game event types
const (
	GameStarted  Type = "game_started"
	GameReset    Type = "game_reset"
	GameEnded    Type = "game_ended"
	BallServed   Type = "ball_served"
	PaddleHit    Type = "paddle_hit"
	WallHit      Type = "wall_hit"
	PointScored  Type = "point_scored"
	PhaseChanged Type = "phase_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it from
// the bus; cancelling twice is harmless.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})
	b.mu.Unlock()

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, reg := range regs {
		if reg.id == id {
			b.handlers[eventType] = append(regs[:i], regs[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribed handlers. Handlers run on the
// publisher's goroutine in subscription order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	handlers := make([]Handler, len(regs))
	for i, reg := range regs {
		handlers[i] = reg.handler
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// GameEvent marks game lifecycle changes: start, reset and game over
type GameEvent struct {
	BaseEvent
	Winner    entity.Side
	HasWinner bool
}

// NewGameEvent creates a lifecycle event without a winner
func NewGameEvent(eventType Type, source interface{}) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
	}
}

// NewGameEndedEvent creates a game over event carrying the match winner
func NewGameEndedEvent(source interface{}, winner entity.Side) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: GameEnded,
			Source:    source,
		},
		Winner:    winner,
		HasWinner: true,
	}
}

// ServeEvent announces the start of a rally
type ServeEvent struct {
	BaseEvent
	Toward entity.Side
}

// NewServeEvent creates a new serve event
func NewServeEvent(source interface{}, toward entity.Side) *ServeEvent {
	return &ServeEvent{
		BaseEvent: BaseEvent{
			EventType: BallServed,
			Source:    source,
		},
		Toward: toward,
	}
}

// PaddleHitEvent contains information about a ball/paddle collision
type PaddleHitEvent struct {
	BaseEvent
	Side  entity.Side
	Speed float64
}

// NewPaddleHitEvent creates a new paddle hit event
func NewPaddleHitEvent(source interface{}, side entity.Side, speed float64) *PaddleHitEvent {
	return &PaddleHitEvent{
		BaseEvent: BaseEvent{
			EventType: PaddleHit,
			Source:    source,
		},
		Side:  side,
		Speed: speed,
	}
}

// WallHitEvent contains information about a ball/wall bounce
type WallHitEvent struct {
	BaseEvent
	Top bool
}

// NewWallHitEvent creates a new wall hit event
func NewWallHitEvent(source interface{}, top bool) *WallHitEvent {
	return &WallHitEvent{
		BaseEvent: BaseEvent{
			EventType: WallHit,
			Source:    source,
		},
		Top: top,
	}
}

// ScoreEvent contains the scorer and the updated tallies
type ScoreEvent struct {
	BaseEvent
	Scorer entity.Side
	Left   int
	Right  int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(source interface{}, scorer entity.Side, left, right int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: PointScored,
			Source:    source,
		},
		Scorer: scorer,
		Left:   left,
		Right:  right,
	}
}

// PhaseEvent records a state machine transition
type PhaseEvent struct {
	BaseEvent
	From string
	To   string
}

// NewPhaseEvent creates a new phase transition event
func NewPhaseEvent(source interface{}, from, to string) *PhaseEvent {
	return &PhaseEvent{
		BaseEvent: BaseEvent{
			EventType: PhaseChanged,
			Source:    source,
		},
		From: from,
		To:   to,
	}
}
