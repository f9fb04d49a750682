package economy

import (
	"context"
	"fmt"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// Buy purchases one unit of key, which may be a display name. Funds and ledger
// room are both checked before anything changes.
func (s *service) Buy(ctx context.Context, key string) (*BuyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "item", key)

	def, err := s.catalog.Item(key)
	if err != nil {
		return nil, err
	}
	key = def.Key
	if !s.catalog.InStock(key) {
		return nil, fmt.Errorf(ErrMsgNotInStockFmt, key, domain.ErrNotSold)
	}
	if !s.wallet.HasEnough(def.BuyPrice) {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, key, def.BuyPrice, s.wallet.Balance(), domain.ErrInsufficientFunds)
	}

	inst := domain.NewItemInstance(def)
	if !s.ledger.CanAccept(inst) {
		return nil, fmt.Errorf(ErrMsgInventoryFullFmt, key, domain.ErrInventoryFull)
	}
	s.wallet.Spend(def.BuyPrice)
	s.ledger.Add(inst)

	s.publish(ctx, event.NewItemBoughtEvent(def, def.BuyPrice))

	log.Info(LogMsgItemPurchased, "item", key, "price", def.BuyPrice, "balance", s.wallet.Balance())
	return &BuyResult{ItemKey: key, Price: def.BuyPrice, Balance: s.wallet.Balance()}, nil
}
