package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/economy"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// Equip moves a ledger item into its slot
func (g *Game) Equip(ctx context.Context, id uuid.UUID) (domain.Slot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.guard("equip"); err != nil {
		return "", err
	}

	slot, err := g.slots.Equip(id)
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info(LogMsgItemEquipped, "item_id", id, "slot", slot, "max_health", g.vitals.MaxHealth())
	return slot, nil
}

// Unequip moves a slot's item back into the ledger. A full ledger leaves it equipped.
func (g *Game) Unequip(ctx context.Context, slot domain.Slot) (*domain.ItemInstance, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.guard("unequip"); err != nil {
		return nil, err
	}

	inst, err := g.slots.Unequip(slot)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgItemUnequipped, "item", inst.Key(), "slot", slot, "max_health", g.vitals.MaxHealth())
	return inst, nil
}

// UseItem consumes one unit of a consumable from the ledger and applies its restore
func (g *Game) UseItem(ctx context.Context, id uuid.UUID) (domain.Restore, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.guard("use items"); err != nil {
		return domain.Restore{}, err
	}

	inst, ok := g.ledger.Find(id)
	if !ok {
		return domain.Restore{}, fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, id)
	}
	if inst.Def.Category != domain.CategoryConsumable {
		return domain.Restore{}, fmt.Errorf(ErrMsgNotConsumableFmt, domain.ErrNotConsumable, inst.Key())
	}

	g.ledger.Take(id)
	restore := inst.Def.Restore
	g.vitals.Apply(restore)
	g.publish(ctx, event.NewItemUsedEvent(inst.Key(), restore))

	logger.FromContext(ctx).Info(LogMsgItemUsed, "item", inst.Key(), "health", g.vitals.Health(), "food", g.vitals.Food(), "water", g.vitals.Water())
	return restore, nil
}

// Buy purchases one unit from the trader
func (g *Game) Buy(ctx context.Context, key string) (*economy.BuyResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.guard("trade"); err != nil {
		return nil, err
	}
	return g.economy.Buy(ctx, key)
}

// Sell sells one unit per id to the trader
func (g *Game) Sell(ctx context.Context, ids ...uuid.UUID) (*economy.SellResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.guard("trade"); err != nil {
		return nil, err
	}
	return g.economy.Sell(ctx, ids...)
}

// Prices lists the trader's stock
func (g *Game) Prices() []economy.Price {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.economy.Prices()
}

// RepairQuote returns what repairing id would cost
func (g *Game) RepairQuote(id uuid.UUID) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.economy.RepairQuote(id)
}

// Repair restores a weapon or armor piece to full durability
func (g *Game) Repair(ctx context.Context, id uuid.UUID) (*economy.RepairResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.guard("repair"); err != nil {
		return nil, err
	}
	return g.economy.Repair(ctx, id)
}
