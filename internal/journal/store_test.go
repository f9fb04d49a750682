package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Hodka_Go/internal/combat"
	"github.com/osse101/Hodka_Go/internal/domain"
)

func summary(id string) *combat.Summary {
	return &combat.Summary{
		SessionID:   id,
		ArchetypeID: "mutant",
		Outcome:     domain.CombatVictory,
		Stats:       combat.Stats{Turns: 3, DamageDealt: 60},
		Log: []domain.LogEvent{
			{Kind: domain.LogCombatStarted, Health: 60},
			{Kind: domain.LogEnemyDefeated},
		},
	}
}

func TestStore_RecordAndGet(t *testing.T) {
	store := NewStore(4, time.Hour)

	store.Record(summary("a"))
	entry, ok := store.Get("a")

	require.True(t, ok)
	assert.Equal(t, SchemaVersion, entry.Version)
	assert.Equal(t, domain.CombatVictory, entry.Outcome)
	assert.Equal(t, 3, entry.Stats.Turns)
	assert.Len(t, entry.Log, 2)
	assert.False(t, entry.RecordedAt.IsZero())

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStore_LogIsCopied(t *testing.T) {
	store := NewStore(4, time.Hour)
	s := summary("a")
	store.Record(s)

	s.Log[0].Health = 999

	entry, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, 60, entry.Log[0].Health)
}

func TestStore_EvictsOldest(t *testing.T) {
	store := NewStore(2, time.Hour)
	for i := 0; i < 3; i++ {
		store.Record(summary(fmt.Sprintf("s%d", i)))
	}

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get("s0")
	assert.False(t, ok)

	recent := store.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "s2", recent[0].SessionID)
	assert.Equal(t, "s1", recent[1].SessionID)
}

func TestStore_RecentLimit(t *testing.T) {
	store := NewStore(8, time.Hour)
	for i := 0; i < 5; i++ {
		store.Record(summary(fmt.Sprintf("s%d", i)))
	}

	recent := store.Recent(2)

	require.Len(t, recent, 2)
	assert.Equal(t, "s4", recent[0].SessionID)
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(4, 20*time.Millisecond)
	store.Record(summary("a"))

	assert.Eventually(t, func() bool {
		_, ok := store.Get("a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestStore_StaleVersionDropped(t *testing.T) {
	store := NewStore(4, time.Hour)
	entry := store.Record(summary("a"))
	entry.Version = "0.9"

	_, ok := store.Get("a")

	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(4, time.Hour)
	store.Record(summary("a"))
	store.Clear()
	assert.Equal(t, 0, store.Len())
}
