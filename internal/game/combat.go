package game

import (
	"context"
	"fmt"

	"github.com/osse101/Hodka_Go/internal/combat"
	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/journal"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// StartCombat opens a session against the archetype with id
func (g *Game) StartCombat(ctx context.Context, archetypeID string) (*combat.Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.startCombat(ctx, archetypeID)
}

func (g *Game) startCombat(ctx context.Context, archetypeID string) (*combat.Outcome, error) {
	arch, err := g.catalog.Archetype(archetypeID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUnknownArchetypeFmt, domain.ErrUnknownArchetype, archetypeID)
	}

	sessionID := logger.GenerateSessionID()
	out, err := g.resolver.Start(sessionID, arch)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithSessionID(ctx, sessionID)
	g.publish(ctx, event.NewCombatStartedEvent(sessionID, arch.ID, arch.MaxHealth))
	logger.FromContext(ctx).Info(LogMsgCombatStarted, "archetype", arch.ID, "enemy_health", arch.MaxHealth)
	return out, nil
}

// Act resolves one player action. When the session ends it is closed here:
// the transcript goes to the journal, loot and end events are published, and a
// defeated player is revived at the station.
func (g *Game) Act(ctx context.Context, action domain.Action) (*combat.Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	view, ok := g.resolver.Session()
	if ok {
		ctx = logger.WithSessionID(ctx, view.SessionID)
	}
	log := logger.FromContext(ctx)

	out, err := g.resolver.Act(action)
	if out == nil {
		return nil, err
	}
	if err != nil {
		log.Warn(LogMsgLootFailed, "error", err)
	}
	log.Info(LogMsgCombatAction,
		"action", action.Kind,
		"slot", action.Slot,
		"state", out.State,
		"enemy_health", out.EnemyHealth,
		"player_health", g.vitals.Health())

	if out.State.IsTerminal() {
		g.closeSession(ctx, out)
	}
	return out, nil
}

func (g *Game) closeSession(ctx context.Context, out *combat.Outcome) {
	summary, err := g.resolver.Finish()
	if err != nil {
		return
	}
	g.journal.Record(summary)

	for _, drop := range out.Drops {
		g.publish(ctx, event.NewLootDroppedEvent(summary.SessionID, summary.ArchetypeID, drop.ItemKey, drop.Rolled, drop.Added))
	}
	g.publish(ctx, event.NewCombatEndedEvent(domain.CombatEndedPayload{
		SessionID:   summary.SessionID,
		ArchetypeID: summary.ArchetypeID,
		Outcome:     summary.Outcome,
		Turns:       summary.Stats.Turns,
		DamageDealt: summary.Stats.DamageDealt,
		DamageTaken: summary.Stats.DamageTaken,
		Jams:        summary.Stats.Jams,
	}))

	log := logger.FromContext(ctx)
	log.Info(LogMsgCombatEnded, "outcome", summary.Outcome, "turns", summary.Stats.Turns)

	if summary.Outcome == domain.CombatDefeat {
		g.journey.ReturnToStation()
		g.vitals.Revive()
		log.Info(LogMsgPlayerRevived, "health", g.vitals.Health())
	}
}

// Journal returns up to n recent combat transcripts, newest first
func (g *Game) Journal(n int) []*journal.Entry {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.journal.Recent(n)
}

// JournalEntry returns the transcript of one finished session
func (g *Game) JournalEntry(sessionID string) (*journal.Entry, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.journal.Get(sessionID)
}
