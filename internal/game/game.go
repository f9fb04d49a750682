package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/Hodka_Go/internal/catalog"
	"github.com/osse101/Hodka_Go/internal/combat"
	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/economy"
	"github.com/osse101/Hodka_Go/internal/equipment"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/inventory"
	"github.com/osse101/Hodka_Go/internal/journal"
	"github.com/osse101/Hodka_Go/internal/journey"
	"github.com/osse101/Hodka_Go/internal/logger"
	"github.com/osse101/Hodka_Go/internal/loot"
	"github.com/osse101/Hodka_Go/internal/reload"
	"github.com/osse101/Hodka_Go/internal/utils"
	"github.com/osse101/Hodka_Go/internal/vitals"
)

// Game owns one player's state and serialises every operation on it.
// Inventory, equipment and trade calls are refused while a combat session runs.
type Game struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	ledger   *inventory.Ledger
	slots    *equipment.Slots
	vitals   *vitals.Vitals
	wallet   *economy.Wallet
	reloader *reload.Resolver
	roller   *loot.Roller
	resolver *combat.Resolver
	economy  economy.Service
	journey  *journey.Journey
	journal  *journal.Store
	bus      event.Bus
}

// New builds a game from the catalog and hands out the starting loadout
func New(ctx context.Context, cat *catalog.Catalog, opts Options) (*Game, error) {
	rng := opts.Rand
	if rng == nil {
		rng = utils.NewRandom(0)
	}
	bus := opts.Bus
	if bus == nil {
		bus = event.NewMemoryBus()
	}

	g := &Game{
		catalog: cat,
		ledger:  inventory.NewLedger(opts.InventorySlots),
		vitals:  vitals.New(opts.BaseMaxHealth),
		wallet:  economy.NewWallet(opts.StartingMoney),
		journal: journal.NewStore(opts.JournalSize, opts.JournalTTL),
		bus:     bus,
	}
	g.slots = equipment.New(g.ledger, g.vitals)
	g.reloader = reload.New(g.ledger, g.slots)
	g.roller = loot.NewRoller(cat, rng)
	g.resolver = combat.NewResolver(combat.Deps{
		Ledger:   g.ledger,
		Slots:    g.slots,
		Vitals:   g.vitals,
		Reloader: g.reloader,
		Looter:   g.roller,
		Rand:     rng,
	}, opts.Combat)
	g.economy = economy.NewService(cat, g.ledger, g.slots, g.wallet, bus)
	g.journey = journey.New(g.vitals, g.ledger, g.roller, cat.JourneyLoot(), rng, opts.Journey)

	if err := g.applyLoadout(cat.StartingLoadout()); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgGameCreated,
		"catalog_version", cat.Version(),
		"stacks", g.ledger.Len(),
		"balance", g.wallet.Balance())
	return g, nil
}

func (g *Game) applyLoadout(entries []catalog.LoadoutEntry) error {
	for _, entry := range entries {
		for i := 0; i < entry.Quantity; i++ {
			inst, err := g.catalog.NewInstance(entry.ItemKey)
			if err != nil {
				return fmt.Errorf(ErrMsgLoadoutItemFmt, entry.ItemKey, err)
			}
			if entry.Equip && i == 0 {
				if _, err := g.slots.EquipNew(inst); err != nil {
					return fmt.Errorf(ErrMsgLoadoutItemFmt, entry.ItemKey, err)
				}
				continue
			}
			if !g.ledger.Add(inst) {
				return fmt.Errorf(ErrMsgLoadoutNoRoomFmt, entry.ItemKey, domain.ErrInventoryFull)
			}
		}
	}
	return nil
}

// Bus returns the event bus the game publishes to
func (g *Game) Bus() event.Bus {
	return g.bus
}

// CombatState returns the combat state machine's position
func (g *Game) CombatState() domain.CombatState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resolver.State()
}

// guard refuses op while a combat session is open. Callers hold mu.
func (g *Game) guard(op string) error {
	if g.resolver.State() != domain.CombatIdle {
		return fmt.Errorf(ErrMsgCombatActiveFmt, domain.ErrCombatActive, op)
	}
	return nil
}

func (g *Game) publish(ctx context.Context, evt event.Event) {
	if err := g.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
