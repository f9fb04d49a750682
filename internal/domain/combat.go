package domain

// CombatState is the position of the combat state machine
type CombatState string

const (
	CombatIdle       CombatState = "idle"
	CombatPlayerTurn CombatState = "player_turn"
	CombatEnemyTurn  CombatState = "enemy_turn"
	CombatVictory    CombatState = "victory"
	CombatDefeat     CombatState = "defeat"
	CombatEscaped    CombatState = "escaped"
)

// IsTerminal reports whether the session has ended and awaits Finish
func (s CombatState) IsTerminal() bool {
	return s == CombatVictory || s == CombatDefeat || s == CombatEscaped
}

// IsActive reports whether a session is in progress
func (s CombatState) IsActive() bool {
	return s == CombatPlayerTurn || s == CombatEnemyTurn
}

// ActionKind is a player choice during their turn
type ActionKind string

const (
	ActionAttack    ActionKind = "attack"
	ActionReload    ActionKind = "reload"
	ActionTakeCover ActionKind = "take_cover"
	ActionEscape    ActionKind = "escape"
)

// Action is one player turn. Slot is only read for attacks.
type Action struct {
	Kind ActionKind `json:"kind"`
	Slot Slot       `json:"slot,omitempty"`
}

// LogKind tags an entry of the combat log
type LogKind string

const (
	LogCombatStarted   LogKind = "combat_started"
	LogPlayerAttack    LogKind = "player_attack"
	LogWeaponJammed    LogKind = "weapon_jammed"
	LogReloaded        LogKind = "reloaded"
	LogReloadFailed    LogKind = "reload_failed"
	LogTookCover       LogKind = "took_cover"
	LogEscapeSucceeded LogKind = "escape_succeeded"
	LogEscapeFailed    LogKind = "escape_failed"
	LogEnemyMissed     LogKind = "enemy_missed"
	LogEnemyHit        LogKind = "enemy_hit"
	LogEnemyDefeated   LogKind = "enemy_defeated"
	LogLootDropped     LogKind = "loot_dropped"
	LogLootLost        LogKind = "loot_lost"
	LogPlayerDefeated  LogKind = "player_defeated"
	LogInventoryWiped  LogKind = "inventory_wiped"
)

// LogEvent is one ordered line of a combat transcript. Pacing is left to the caller.
type LogEvent struct {
	Kind    LogKind `json:"kind"`
	Slot    Slot    `json:"slot,omitempty"`
	ItemKey string  `json:"item_key,omitempty"`
	Amount  int     `json:"amount,omitempty"`
	Shots   int     `json:"shots,omitempty"`
	Health  int     `json:"health"` // enemy health for player lines, player health for enemy lines
}

// LootEntry is one row of an archetype's loot table
type LootEntry struct {
	ItemKey string  `json:"item" validate:"required"`
	Min     int     `json:"min" validate:"min=1"`
	Max     int     `json:"max" validate:"gtefield=Min"`
	Chance  float64 `json:"chance" validate:"min=0,max=100"` // percent
}

// Archetype is a static enemy definition
type Archetype struct {
	ID        string      `json:"id" validate:"required"`
	Name      string      `json:"name" validate:"required"`
	MaxHealth int         `json:"max_health" validate:"min=1"`
	MinDamage int         `json:"min_damage" validate:"min=0"`
	MaxDamage int         `json:"max_damage" validate:"gtefield=MinDamage"`
	Loot      []LootEntry `json:"loot" validate:"dive"`
}
