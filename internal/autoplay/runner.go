package autoplay

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/game"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// Report summarises an autoplay run
type Report struct {
	Steps     int `json:"steps"`
	Combats   int `json:"combats"`
	Victories int `json:"victories"`
	Defeats   int `json:"defeats"`
	Escapes   int `json:"escapes"`
	Returns   int `json:"returns"`
	Balance   int `json:"balance"`
}

// Run drives g for up to steps journey steps with a fixed survival policy:
// eat, drink and heal when low, fight every encounter, go home to resupply
// when the road can no longer be travelled.
func Run(ctx context.Context, g *game.Game, steps int) (*Report, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarted, "steps", steps)

	report := &Report{}
	for report.Steps < steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		maintain(ctx, g)

		result, err := g.Continue(ctx)
		if errors.Is(err, domain.ErrCannotTravel) {
			if err := resupply(ctx, g, report); err != nil {
				return report, err
			}
			if !g.Snapshot().CanTravel {
				break
			}
			continue
		}
		if err != nil && result == nil {
			return report, err
		}
		report.Steps++

		if result.Combat != nil {
			if err := fight(ctx, g, report); err != nil {
				return report, err
			}
		}
	}

	report.Balance = g.Snapshot().Balance
	log.Info(LogMsgRunFinished,
		"steps", report.Steps,
		"combats", report.Combats,
		"victories", report.Victories,
		"defeats", report.Defeats,
		"escapes", report.Escapes,
		"balance", report.Balance)
	return report, nil
}

// fight plays the open combat session to its end
func fight(ctx context.Context, g *game.Game, report *Report) error {
	report.Combats++
	for i := 0; i < MaxActionsPerFight; i++ {
		out, err := g.Act(ctx, chooseAction(g.Snapshot()))
		if err != nil {
			// a rejected action leaves the turn open; fall back to something always legal
			logger.FromContext(ctx).Debug(LogMsgActionSkipped, "error", err)
			out, err = g.Act(ctx, fallback(err))
			if err != nil {
				return err
			}
		}
		switch out.State {
		case domain.CombatVictory:
			report.Victories++
			return nil
		case domain.CombatDefeat:
			report.Defeats++
			return nil
		case domain.CombatEscaped:
			report.Escapes++
			return nil
		}
	}

	logger.FromContext(ctx).Warn(LogMsgCombatStuck, "limit", MaxActionsPerFight)
	for g.CombatState() == domain.CombatPlayerTurn {
		out, err := g.Act(ctx, domain.Action{Kind: domain.ActionEscape})
		if err != nil {
			return err
		}
		if out.State == domain.CombatEscaped {
			report.Escapes++
		} else if out.State == domain.CombatDefeat {
			report.Defeats++
		}
	}
	return nil
}

func chooseAction(snap game.Snapshot) domain.Action {
	v := snap.Vitals
	if v.MaxHealth > 0 && v.Health*100/v.MaxHealth <= FleeHealthPercent {
		return domain.Action{Kind: domain.ActionEscape}
	}
	for _, slot := range domain.WeaponSlots {
		if weapon, ok := snap.Equipment[slot]; ok && (weapon.Ammo > 0 || !usesAmmo(snap, slot)) {
			return domain.Action{Kind: domain.ActionAttack, Slot: slot}
		}
	}
	if snap.CanReload {
		return domain.Action{Kind: domain.ActionReload}
	}
	return domain.Action{Kind: domain.ActionEscape}
}

func usesAmmo(snap game.Snapshot, slot domain.Slot) bool {
	for _, status := range snap.Weapons {
		if status.Slot == slot {
			return status.AmmoType != domain.AmmoTypeNone
		}
	}
	return false
}

func fallback(err error) domain.Action {
	switch {
	case errors.Is(err, domain.ErrNotEnoughEnergy):
		return domain.Action{Kind: domain.ActionTakeCover}
	case errors.Is(err, domain.ErrWeaponEmpty):
		return domain.Action{Kind: domain.ActionReload}
	default:
		return domain.Action{Kind: domain.ActionEscape}
	}
}

// maintain uses consumables when a need drops below its threshold
func maintain(ctx context.Context, g *game.Game) {
	snap := g.Snapshot()
	if snap.Vitals.Food < HungerThreshold {
		consume(ctx, g, snap, FoodKeys)
	}
	if snap.Vitals.Water < ThirstThreshold {
		consume(ctx, g, snap, WaterKeys)
	}
	if snap.Vitals.Health < HealThreshold {
		consume(ctx, g, snap, HealKeys)
	}
}

func consume(ctx context.Context, g *game.Game, snap game.Snapshot, keys []string) bool {
	for _, stack := range snap.Inventory {
		if slices.Contains(keys, stack.Item.Key) {
			_, err := g.UseItem(ctx, stack.Item.ID)
			return err == nil
		}
	}
	return false
}

// resupply returns to the station if needed, sells trophies, repairs worn gear and buys
// supplies until the player can travel again or runs out of money
func resupply(ctx context.Context, g *game.Game, report *Report) error {
	if !g.Snapshot().AtStation {
		if err := g.ReturnToStation(ctx); err != nil {
			return fmt.Errorf("returning to station: %w", err)
		}
		report.Returns++
	}
	logger.FromContext(ctx).Info(LogMsgResupply, "balance", g.Snapshot().Balance)

	for _, stack := range g.Snapshot().Inventory {
		if slices.Contains(SellKeys, stack.Item.Key) {
			ids := make([]uuid.UUID, stack.Count)
			for i := range ids {
				ids[i] = stack.Item.ID
			}
			_, _ = g.Sell(ctx, ids...)
		}
	}

	for _, item := range g.Snapshot().Equipment {
		if item.NeedsRepair && item.DurabilityPercent < RepairBelowPercent {
			_, _ = g.Repair(ctx, item.ID)
		}
	}

	for _, key := range SupplyKeys {
		for countOf(g.Snapshot(), key) < SupplyTarget {
			if _, err := g.Buy(ctx, key); err != nil {
				break
			}
		}
	}

	snap := g.Snapshot()
	for snap.Vitals.Food < HungerThreshold && consume(ctx, g, snap, FoodKeys) {
		snap = g.Snapshot()
	}
	for snap.Vitals.Water < ThirstThreshold && consume(ctx, g, snap, WaterKeys) {
		snap = g.Snapshot()
	}
	for snap.Vitals.Health < HealThreshold && consume(ctx, g, snap, HealKeys) {
		snap = g.Snapshot()
	}
	return nil
}

func countOf(snap game.Snapshot, key string) int {
	n := 0
	for _, stack := range snap.Inventory {
		if stack.Item.Key == key {
			n += stack.Count
		}
	}
	return n
}
