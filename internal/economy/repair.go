package economy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// RepairQuote returns what Repair would charge for id
func (s *service) RepairQuote(id uuid.UUID) (int, error) {
	inst, _, err := s.repairable(id)
	if err != nil {
		return 0, err
	}
	return inst.RepairCost(), nil
}

// Repair restores a weapon or armor piece held in the ledger or equipped
func (s *service) Repair(ctx context.Context, id uuid.UUID) (*RepairResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRepairCalled, "item_id", id)

	inst, equipped, err := s.repairable(id)
	if err != nil {
		return nil, err
	}

	cost := inst.RepairCost()
	if !s.wallet.Spend(cost) {
		return nil, fmt.Errorf(ErrMsgRepairUnaffordableFmt, inst.Key(), cost, s.wallet.Balance(), domain.ErrInsufficientFunds)
	}
	inst.Repair()

	s.publish(ctx, event.NewItemRepairedEvent(inst.Key(), cost, equipped))

	log.Info(LogMsgItemRepaired, "item", inst.Key(), "cost", cost, "equipped", equipped, "balance", s.wallet.Balance())
	return &RepairResult{ItemKey: inst.Key(), Cost: cost, Equipped: equipped, Balance: s.wallet.Balance()}, nil
}

func (s *service) repairable(id uuid.UUID) (*domain.ItemInstance, bool, error) {
	inst, equipped, ok := s.locate(id)
	if !ok {
		return nil, false, fmt.Errorf(ErrMsgItemNotOwnedFmt, id, domain.ErrItemNotFound)
	}
	if !inst.IsRepairable() {
		return nil, false, fmt.Errorf(ErrMsgNotRepairableFmt, inst.Key(), domain.ErrNotRepairable)
	}
	if !inst.NeedsRepair() {
		return nil, false, fmt.Errorf(ErrMsgNoRepairNeededFmt, inst.Key(), domain.ErrNoRepairNeeded)
	}
	return inst, equipped, nil
}

func (s *service) locate(id uuid.UUID) (*domain.ItemInstance, bool, bool) {
	if inst, ok := s.ledger.Find(id); ok {
		return inst, false, true
	}
	if inst, _, ok := s.slots.Find(id); ok {
		return inst, true, true
	}
	return nil, false, false
}
