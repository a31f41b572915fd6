package metrics

import (
	"context"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics. A payload that cannot be
// decoded is counted as a handler error but never fails the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PackBought:
		err = recordPackBought(evt.Payload)
	case event.PackOpened:
		err = recordPackOpened(evt.Payload)
	case event.CardSold:
		err = recordCardSold(evt.Payload)
	case event.AchievementClaimed:
		err = recordAchievementClaimed(evt.Payload)
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordPackBought(payload interface{}) error {
	p, err := event.DecodePayload[domain.PackBoughtPayload](payload)
	if err != nil {
		return err
	}
	PacksBought.WithLabelValues(p.PackName).Inc()
	MoneySpent.Add(float64(p.Price))
	return nil
}

func recordPackOpened(payload interface{}) error {
	p, err := event.DecodePayload[domain.PackOpenedPayload](payload)
	if err != nil {
		return err
	}
	PacksOpened.Inc()
	for _, tier := range domain.AllTiers() {
		if n := p.Counts.Get(tier); n > 0 {
			CardsRevealed.WithLabelValues(string(tier)).Add(float64(n))
		}
	}
	return nil
}

func recordCardSold(payload interface{}) error {
	p, err := event.DecodePayload[domain.CardSoldPayload](payload)
	if err != nil {
		return err
	}
	CardsSold.Inc()
	MoneyEarned.WithLabelValues(SourceCardSale).Add(float64(p.Price))
	return nil
}

func recordAchievementClaimed(payload interface{}) error {
	p, err := event.DecodePayload[domain.AchievementClaimedPayload](payload)
	if err != nil {
		return err
	}
	AchievementsClaimed.WithLabelValues(p.AchievementID).Inc()
	MoneyEarned.WithLabelValues(SourceAchievement).Add(float64(p.Reward))
	return nil
}
