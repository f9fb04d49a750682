package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Hodka_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	CombatStarted Type = domain.EventTypeCombatStarted
	CombatEnded   Type = domain.EventTypeCombatEnded
	LootDropped   Type = domain.EventTypeLootDropped
	ItemBought    Type = domain.EventTypeItemBought
	ItemSold      Type = domain.EventTypeItemSold
	ItemRepaired  Type = domain.EventTypeItemRepaired
	ItemUsed      Type = domain.EventTypeItemUsed
	JourneyStep   Type = domain.EventTypeJourneyStep
)

// Type-safe event constructors

// NewCombatStartedEvent creates a combat.started event
func NewCombatStartedEvent(sessionID, archetypeID string, enemyHealth int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CombatStarted,
		Payload: domain.CombatStartedPayload{
			SessionID:   sessionID,
			ArchetypeID: archetypeID,
			EnemyHealth: enemyHealth,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"session_id": sessionID,
		},
	}
}

// NewCombatEndedEvent creates a combat.ended event
func NewCombatEndedEvent(payload domain.CombatEndedPayload) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version: EventSchemaVersion,
		Type:    CombatEnded,
		Payload: payload,
		Metadata: map[string]interface{}{
			"session_id": payload.SessionID,
		},
	}
}

// NewLootDroppedEvent creates a loot.dropped event
func NewLootDroppedEvent(sessionID, source, itemKey string, rolled, added int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LootDropped,
		Payload: domain.LootDroppedPayload{
			SessionID: sessionID,
			Source:    source,
			ItemKey:   itemKey,
			Rolled:    rolled,
			Added:     added,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemBoughtEvent creates an item.bought event
func NewItemBoughtEvent(def *domain.ItemDefinition, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemBought,
		Payload: domain.ItemBoughtPayload{
			ItemKey:      def.Key,
			ItemCategory: def.Category,
			Price:        price,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates an item.sold event
func NewItemSoldEvent(keys []string, totalValue int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: domain.ItemSoldPayload{
			ItemKeys:   keys,
			Quantity:   len(keys),
			TotalValue: totalValue,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemRepairedEvent creates an item.repaired event
func NewItemRepairedEvent(itemKey string, cost int, equipped bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemRepaired,
		Payload: domain.ItemRepairedPayload{
			ItemKey:   itemKey,
			Cost:      cost,
			Equipped:  equipped,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemUsedEvent creates an item.used event
func NewItemUsedEvent(itemKey string, restore domain.Restore) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUsed,
		Payload: domain.ItemUsedPayload{
			ItemKey:   itemKey,
			Restore:   restore,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewJourneyStepEvent creates a journey.step event
func NewJourneyStepEvent(payload domain.JourneyStepPayload) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version: EventSchemaVersion,
		Type:    JourneyStep,
		Payload: payload,
		Metadata: map[string]interface{}{
			"session_id": payload.SessionID,
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

// Publish delivers an event to every subscriber in subscription order.
// Handlers run synchronously; their errors are aggregated.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
