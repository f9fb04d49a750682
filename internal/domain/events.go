package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeCombatStarted is published when an encounter begins
	EventTypeCombatStarted = "combat.started"

	// EventTypeCombatEnded is published when an encounter reaches victory, defeat or escape
	EventTypeCombatEnded = "combat.ended"

	// EventTypeLootDropped is published for each loot table row that rolled successfully
	EventTypeLootDropped = "loot.dropped"

	// EventTypeItemBought is published when an item is bought from the trader
	EventTypeItemBought = "item.bought"

	// EventTypeItemSold is published when items are sold to the trader
	EventTypeItemSold = "item.sold"

	// EventTypeItemRepaired is published when a weapon or armor piece is repaired
	EventTypeItemRepaired = "item.repaired"

	// EventTypeItemUsed is published when a consumable item is used
	EventTypeItemUsed = "item.used"

	// EventTypeJourneyStep is published after each journey step
	EventTypeJourneyStep = "journey.step"
)
