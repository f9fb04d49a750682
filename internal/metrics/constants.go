package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "hodka_events_published_total"
	MetricNameEventHandlerErrors = "hodka_event_handler_errors_total"
)

// Combat metric names
const (
	MetricNameCombatsStarted = "hodka_combats_started_total"
	MetricNameCombatsEnded   = "hodka_combats_ended_total"
	MetricNameDamageDealt    = "hodka_damage_dealt_total"
	MetricNameDamageTaken    = "hodka_damage_taken_total"
	MetricNameWeaponJams     = "hodka_weapon_jams_total"
	MetricNameLootAdded      = "hodka_loot_items_added_total"
	MetricNameLootLost       = "hodka_loot_items_lost_total"
)

// Economy metric names
const (
	MetricNameItemsBought   = "hodka_items_bought_total"
	MetricNameItemsSold     = "hodka_items_sold_total"
	MetricNameItemsRepaired = "hodka_items_repaired_total"
	MetricNameItemsUsed     = "hodka_items_used_total"
	MetricNameMoneyEarned   = "hodka_money_earned_total"
	MetricNameMoneySpent    = "hodka_money_spent_total"
)

// Journey metric names
const (
	MetricNameJourneySteps = "hodka_journey_steps_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event payloads that could not be decoded"
	HelpTextCombatsStarted     = "Total number of combat sessions started"
	HelpTextCombatsEnded       = "Total number of combat sessions ended, by outcome"
	HelpTextDamageDealt        = "Total damage dealt to enemies"
	HelpTextDamageTaken        = "Total damage taken by the player"
	HelpTextWeaponJams         = "Total number of weapon jams"
	HelpTextLootAdded          = "Total number of loot items added to the inventory"
	HelpTextLootLost           = "Total number of loot items lost to a full inventory"
	HelpTextItemsBought        = "Total number of items bought"
	HelpTextItemsSold          = "Total number of items sold"
	HelpTextItemsRepaired      = "Total number of items repaired"
	HelpTextItemsUsed          = "Total number of consumables used"
	HelpTextMoneyEarned        = "Total money earned from selling items"
	HelpTextMoneySpent         = "Total money spent, by reason"
	HelpTextJourneySteps       = "Total number of journey steps, by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelType      = "type"
	LabelArchetype = "archetype"
	LabelOutcome   = "outcome"
	LabelItem      = "item"
	LabelSource    = "source"
	LabelReason    = "reason"
)

// Money spent reasons
const (
	ReasonPurchase = "purchase"
	ReasonRepair   = "repair"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
