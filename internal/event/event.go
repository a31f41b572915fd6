package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Domain event types
const (
	PackBought         Type = Type(domain.EventTypePackBought)
	PackOpened         Type = Type(domain.EventTypePackOpened)
	CardSold           Type = Type(domain.EventTypeCardSold)
	AchievementClaimed Type = Type(domain.EventTypeAchievementClaimed)
)

// AllTypes lists every domain event type.
func AllTypes() []Type {
	return []Type{PackBought, PackOpened, CardSold, AchievementClaimed}
}

// Type-safe event constructors

// NewPackBoughtEvent creates a pack.bought event
func NewPackBoughtEvent(playerID string, pack domain.BoosterPack, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PackBought,
		Payload: domain.PackBoughtPayload{
			PlayerID:  playerID,
			PackID:    pack.ID,
			PackName:  pack.Name,
			Price:     price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPackOpenedEvent creates a pack.opened event
func NewPackOpenedEvent(playerID string, pack domain.BoosterPack, counts domain.RarityTotals) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PackOpened,
		Payload: domain.PackOpenedPayload{
			PlayerID:  playerID,
			PackID:    pack.ID,
			PackName:  pack.Name,
			Counts:    counts,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCardSoldEvent creates a card.sold event
func NewCardSoldEvent(playerID, cardID string, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CardSold,
		Payload: domain.CardSoldPayload{
			PlayerID:  playerID,
			CardID:    cardID,
			Price:     price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewAchievementClaimedEvent creates an achievement.claimed event
func NewAchievementClaimedEvent(playerID, achievementID string, reward int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementClaimed,
		Payload: domain.AchievementClaimedPayload{
			PlayerID:      playerID,
			AchievementID: achievementID,
			Reward:        reward,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously. All handlers run even if some fail;
// their errors are joined into the returned error.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishAndLog publishes evt and logs handler failures instead of returning them.
// Services call it after a commit, when the state change must not be undone.
func PublishAndLog(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
