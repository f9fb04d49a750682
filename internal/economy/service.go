package economy

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/equipment"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/inventory"
	"github.com/osse101/Hodka_Go/internal/logger"
)

// BuyResult contains the result of a buy operation
type BuyResult struct {
	ItemKey string `json:"item_key"`
	Price   int    `json:"price"`
	Balance int    `json:"balance"`
}

// SellResult contains the result of a sell operation
type SellResult struct {
	ItemsSold   int `json:"items_sold"`
	MoneyGained int `json:"money_gained"`
	Balance     int `json:"balance"`
}

// RepairResult contains the result of a repair operation
type RepairResult struct {
	ItemKey  string `json:"item_key"`
	Cost     int    `json:"cost"`
	Equipped bool   `json:"equipped"`
	Balance  int    `json:"balance"`
}

// Price is one line of the trader's price list
type Price struct {
	ItemKey   string          `json:"item_key"`
	Name      string          `json:"name"`
	Category  domain.Category `json:"category"`
	BuyPrice  int             `json:"buy_price"`
	SellPrice int             `json:"sell_price"`
}

// Service defines the interface for trade and repair operations
type Service interface {
	Buy(ctx context.Context, key string) (*BuyResult, error)
	Sell(ctx context.Context, ids ...uuid.UUID) (*SellResult, error)
	RepairQuote(id uuid.UUID) (int, error)
	Repair(ctx context.Context, id uuid.UUID) (*RepairResult, error)
	Prices() []Price
}

// Catalog is the subset of the item catalog the trader needs
type Catalog interface {
	Item(key string) (*domain.ItemDefinition, error)
	InStock(key string) bool
	TraderStock() []*domain.ItemDefinition
}

type service struct {
	catalog Catalog
	ledger  *inventory.Ledger
	slots   *equipment.Slots
	wallet  *Wallet
	bus     event.Bus
}

// NewService creates a new economy service. bus may be nil.
func NewService(catalog Catalog, ledger *inventory.Ledger, slots *equipment.Slots, wallet *Wallet, bus event.Bus) Service {
	return &service{
		catalog: catalog,
		ledger:  ledger,
		slots:   slots,
		wallet:  wallet,
		bus:     bus,
	}
}

// Prices lists the trader's stock
func (s *service) Prices() []Price {
	stock := s.catalog.TraderStock()
	out := make([]Price, 0, len(stock))
	for _, def := range stock {
		out = append(out, Price{
			ItemKey:   def.Key,
			Name:      def.Name,
			Category:  def.Category,
			BuyPrice:  def.BuyPrice,
			SellPrice: def.SellPrice,
		})
	}
	return out
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
