package journal

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Hodka_Go/internal/combat"
	"github.com/osse101/Hodka_Go/internal/domain"
)

// SchemaVersion is the current version of stored entries.
// Increment this when Entry changes to drop old entries on read.
const SchemaVersion = "1.0"

// Entry is the transcript of one finished combat session
type Entry struct {
	Version     string             `json:"version"`
	SessionID   string             `json:"session_id"`
	ArchetypeID string             `json:"archetype_id"`
	Outcome     domain.CombatState `json:"outcome"`
	Stats       combat.Stats       `json:"stats"`
	Log         []domain.LogEvent  `json:"log"`
	RecordedAt  time.Time          `json:"recorded_at"`
}

// Store keeps the most recent session transcripts in memory with a size cap and
// time-based expiry.
type Store struct {
	lru *expirable.LRU[string, *Entry]
}

// NewStore creates a store holding at most size entries for ttl each
func NewStore(size int, ttl time.Duration) *Store {
	return &Store{
		lru: expirable.NewLRU[string, *Entry](size, nil, ttl),
	}
}

// Record stores a finished session, replacing any entry with the same id
func (s *Store) Record(summary *combat.Summary) *Entry {
	entry := &Entry{
		Version:     SchemaVersion,
		SessionID:   summary.SessionID,
		ArchetypeID: summary.ArchetypeID,
		Outcome:     summary.Outcome,
		Stats:       summary.Stats,
		Log:         slices.Clone(summary.Log),
		RecordedAt:  time.Now(),
	}
	s.lru.Add(entry.SessionID, entry)
	return entry
}

// Get returns the entry for sessionID.
// Entries with a stale schema version are removed and reported missing.
func (s *Store) Get(sessionID string) (*Entry, bool) {
	entry, found := s.lru.Get(sessionID)
	if !found {
		return nil, false
	}
	if entry.Version != SchemaVersion {
		s.lru.Remove(sessionID)
		return nil, false
	}
	return entry, true
}

// Recent returns up to n live entries, newest first. n <= 0 returns all of them.
func (s *Store) Recent(n int) []*Entry {
	values := s.lru.Values()
	slices.Reverse(values)
	if n > 0 && len(values) > n {
		values = values[:n]
	}
	return values
}

// Len returns the number of live entries
func (s *Store) Len() int {
	return s.lru.Len()
}

// Clear removes every entry
func (s *Store) Clear() {
	s.lru.Purge()
}
