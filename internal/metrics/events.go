package metrics

import (
	"context"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CombatStarted,
		event.CombatEnded,
		event.LootDropped,
		event.ItemBought,
		event.ItemSold,
		event.ItemRepaired,
		event.ItemUsed,
		event.JourneyStep,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics.
// Undecodable payloads are counted and skipped, never returned as errors.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CombatStarted:
		var p domain.CombatStartedPayload
		if p, err = event.DecodePayload[domain.CombatStartedPayload](evt.Payload); err == nil {
			CombatsStarted.WithLabelValues(p.ArchetypeID).Inc()
		}

	case event.CombatEnded:
		var p domain.CombatEndedPayload
		if p, err = event.DecodePayload[domain.CombatEndedPayload](evt.Payload); err == nil {
			CombatsEnded.WithLabelValues(p.ArchetypeID, string(p.Outcome)).Inc()
			DamageDealt.Add(float64(p.DamageDealt))
			DamageTaken.Add(float64(p.DamageTaken))
			WeaponJams.Add(float64(p.Jams))
		}

	case event.LootDropped:
		var p domain.LootDroppedPayload
		if p, err = event.DecodePayload[domain.LootDroppedPayload](evt.Payload); err == nil {
			LootAdded.WithLabelValues(p.ItemKey, p.Source).Add(float64(p.Added))
			if lost := p.Rolled - p.Added; lost > 0 {
				LootLost.WithLabelValues(p.ItemKey).Add(float64(lost))
			}
		}

	case event.ItemBought:
		var p domain.ItemBoughtPayload
		if p, err = event.DecodePayload[domain.ItemBoughtPayload](evt.Payload); err == nil {
			ItemsBought.WithLabelValues(p.ItemKey).Inc()
			MoneySpent.WithLabelValues(ReasonPurchase).Add(float64(p.Price))
		}

	case event.ItemSold:
		var p domain.ItemSoldPayload
		if p, err = event.DecodePayload[domain.ItemSoldPayload](evt.Payload); err == nil {
			for _, key := range p.ItemKeys {
				ItemsSold.WithLabelValues(key).Inc()
			}
			MoneyEarned.Add(float64(p.TotalValue))
		}

	case event.ItemRepaired:
		var p domain.ItemRepairedPayload
		if p, err = event.DecodePayload[domain.ItemRepairedPayload](evt.Payload); err == nil {
			ItemsRepaired.WithLabelValues(p.ItemKey).Inc()
			MoneySpent.WithLabelValues(ReasonRepair).Add(float64(p.Cost))
		}

	case event.ItemUsed:
		var p domain.ItemUsedPayload
		if p, err = event.DecodePayload[domain.ItemUsedPayload](evt.Payload); err == nil {
			ItemsUsed.WithLabelValues(p.ItemKey).Inc()
		}

	case event.JourneyStep:
		var p domain.JourneyStepPayload
		if p, err = event.DecodePayload[domain.JourneyStepPayload](evt.Payload); err == nil {
			JourneySteps.WithLabelValues(p.Outcome).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
