package game

import (
	"context"

	"github.com/osse101/Hodka_Go/internal/combat"
	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/journey"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// StepResult is one journey step and, for an encounter, the opened combat
type StepResult struct {
	Step   *journey.Step   `json:"step"`
	Combat *combat.Outcome `json:"combat,omitempty"`
}

// Continue walks one step further from the station. Encounters open a combat
// session straight away.
func (g *Game) Continue(ctx context.Context) (*StepResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.guard("travel"); err != nil {
		return nil, err
	}

	sessionID := logger.GenerateSessionID()
	ctx = logger.WithSessionID(ctx, sessionID)
	log := logger.FromContext(ctx)

	step, err := g.journey.Continue()
	if step == nil {
		return nil, err
	}
	if err != nil {
		log.Warn(LogMsgLootFailed, "error", err)
	}

	outcome := string(step.Event)
	if step.Encounter != "" {
		outcome = step.Encounter
	}
	g.publish(ctx, event.NewJourneyStepEvent(domain.JourneyStepPayload{
		SessionID: sessionID,
		Location:  step.Location,
		Outcome:   outcome,
		FoodCost:  step.FoodCost,
		WaterCost: step.WaterCost,
	}))
	log.Info(LogMsgJourneyStep,
		"location", step.Location,
		"event", step.Event,
		"encounter", step.Encounter,
		"food", g.vitals.Food(),
		"water", g.vitals.Water())

	if step.Loot != nil {
		g.publish(ctx, event.NewLootDroppedEvent(sessionID, LootSourceJourney, step.Loot.ItemKey, step.Loot.Rolled, step.Loot.Added))
		log.Info(LogMsgJourneyLoot, "item", step.Loot.ItemKey, "added", step.Loot.Added)
	}

	result := &StepResult{Step: step}
	if step.Event == journey.EventEncounter {
		out, err := g.startCombat(ctx, step.Encounter)
		if err != nil {
			return result, err
		}
		result.Combat = out
	}
	return result, nil
}

// ReturnToStation ends the journey and restores energy
func (g *Game) ReturnToStation(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.guard("return to station"); err != nil {
		return err
	}

	g.journey.ReturnToStation()
	logger.FromContext(ctx).Info(LogMsgReturnedToStation, "energy", g.vitals.Energy())
	return nil
}
