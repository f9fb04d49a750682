package combat

import (
	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/loot"
)

// Stats accumulates over one session
type Stats struct {
	Turns       int `json:"turns"`
	DamageDealt int `json:"damage_dealt"`
	DamageTaken int `json:"damage_taken"`
	ShotsFired  int `json:"shots_fired"`
	Jams        int `json:"jams"`
}

type session struct {
	id          string
	archetype   *domain.Archetype
	enemyHealth int
	stats       Stats
	log         []domain.LogEvent
}

// Outcome is what one call to Start or Act produced, in order
type Outcome struct {
	State       domain.CombatState `json:"state"`
	EnemyHealth int                `json:"enemy_health"`
	Events      []domain.LogEvent  `json:"events"`
	Drops       []loot.Drop        `json:"drops,omitempty"`
}

// View is a read-only picture of the running session
type View struct {
	SessionID      string             `json:"session_id"`
	ArchetypeID    string             `json:"archetype_id"`
	EnemyName      string             `json:"enemy_name"`
	EnemyHealth    int                `json:"enemy_health"`
	EnemyMaxHealth int                `json:"enemy_max_health"`
	State          domain.CombatState `json:"state"`
	Stats          Stats              `json:"stats"`
}

// Summary describes a finished session. Log holds every event since Start.
type Summary struct {
	SessionID   string             `json:"session_id"`
	ArchetypeID string             `json:"archetype_id"`
	Outcome     domain.CombatState `json:"outcome"`
	Stats       Stats              `json:"stats"`
	Log         []domain.LogEvent  `json:"log"`
}
