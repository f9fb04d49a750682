package domain

// CombatStartedPayload is the event payload for combat.started events
type CombatStartedPayload struct {
	SessionID   string `json:"session_id"`
	ArchetypeID string `json:"archetype_id"`
	EnemyHealth int    `json:"enemy_health"`
	Timestamp   int64  `json:"timestamp"`
}

// CombatEndedPayload is the event payload for combat.ended events
type CombatEndedPayload struct {
	SessionID   string      `json:"session_id"`
	ArchetypeID string      `json:"archetype_id"`
	Outcome     CombatState `json:"outcome"`
	Turns       int         `json:"turns"`
	DamageDealt int         `json:"damage_dealt"`
	DamageTaken int         `json:"damage_taken"`
	Jams        int         `json:"jams"`
	Timestamp   int64       `json:"timestamp"`
}

// LootDroppedPayload is the event payload for loot.dropped events
type LootDroppedPayload struct {
	SessionID string `json:"session_id,omitempty"`
	Source    string `json:"source"` // archetype id or "journey"
	ItemKey   string `json:"item_key"`
	Rolled    int    `json:"rolled"`
	Added     int    `json:"added"`
	Timestamp int64  `json:"timestamp"`
}

// ItemBoughtPayload is the event payload for item.bought events
type ItemBoughtPayload struct {
	ItemKey      string   `json:"item_key"`
	ItemCategory Category `json:"item_category"`
	Price        int      `json:"price"`
	Timestamp    int64    `json:"timestamp"`
}

// ItemSoldPayload is the event payload for item.sold events
type ItemSoldPayload struct {
	ItemKeys   []string `json:"item_keys"`
	Quantity   int      `json:"quantity"`
	TotalValue int      `json:"total_value"`
	Timestamp  int64    `json:"timestamp"`
}

// ItemRepairedPayload is the event payload for item.repaired events
type ItemRepairedPayload struct {
	ItemKey   string `json:"item_key"`
	Cost      int    `json:"cost"`
	Equipped  bool   `json:"equipped"`
	Timestamp int64  `json:"timestamp"`
}

// ItemUsedPayload is the event payload for item.used events
type ItemUsedPayload struct {
	ItemKey   string  `json:"item_key"`
	Restore   Restore `json:"restore"`
	Timestamp int64   `json:"timestamp"`
}

// JourneyStepPayload is the event payload for journey.step events
type JourneyStepPayload struct {
	SessionID string `json:"session_id"`
	Location  int    `json:"location"`
	Outcome   string `json:"outcome"`
	FoodCost  int    `json:"food_cost"`
	WaterCost int    `json:"water_cost"`
	Timestamp int64  `json:"timestamp"`
}
