package economy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// Sell removes one unit per id and credits the summed sell price.
// Every id must be in the ledger or nothing is sold. Repeating an id sells
// that many units of its stack.
func (s *service) Sell(ctx context.Context, ids ...uuid.UUID) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "count", len(ids))

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, ErrMsgNothingToSell)
	}

	wanted := make(map[uuid.UUID]int, len(ids))
	for _, id := range ids {
		wanted[id]++
	}
	for id, n := range wanted {
		if s.ledger.CountByID(id) < n {
			return nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, id, domain.ErrItemNotFound)
		}
	}

	total := 0
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		inst, ok := s.ledger.Take(id)
		if !ok {
			return nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, id, domain.ErrItemNotFound)
		}
		total += inst.Def.SellPrice
		keys = append(keys, inst.Key())
	}
	s.wallet.Add(total)

	s.publish(ctx, event.NewItemSoldEvent(keys, total))

	log.Info(LogMsgItemsSold, "items", len(keys), "money_gained", total, "balance", s.wallet.Balance())
	return &SellResult{ItemsSold: len(keys), MoneyGained: total, Balance: s.wallet.Balance()}, nil
}
