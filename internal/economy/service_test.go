package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/equipment"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/inventory"
)

var (
	bread = &domain.ItemDefinition{
		Key: "bread", Name: "Bread", Category: domain.CategoryConsumable,
		Stackable: true, MaxStack: 10, BuyPrice: 50, SellPrice: 20,
		Restore: domain.Restore{Food: 30},
	}
	pistol = &domain.ItemDefinition{
		Key: "pm_pistol", Name: "PM Pistol", Category: domain.CategoryWeapon, WeaponType: domain.WeaponTypePistol,
		MaxStack: 1, BuyPrice: 800, SellPrice: 300, HasDurability: true, MaxDurability: 100,
		MinDamage: 10, MaxDamage: 20, AmmoType: domain.AmmoTypePistol, MaxAmmo: 8,
	}
	rifle = &domain.ItemDefinition{
		Key: "ak74", Name: "AK-74", Category: domain.CategoryWeapon, WeaponType: domain.WeaponTypeAny,
		MaxStack: 1, BuyPrice: 5000, SellPrice: 2000, HasDurability: true, MaxDurability: 100,
		MinDamage: 15, MaxDamage: 25, AmmoType: domain.AmmoTypeRifle, MaxAmmo: 30, ShotsPerAttack: 3,
	}
	vest = &domain.ItemDefinition{
		Key: "kevlar_vest", Name: "Kevlar Vest", Category: domain.CategoryArmor, ArmorType: domain.ArmorTypeChest,
		MaxStack: 1, BuyPrice: 3000, SellPrice: 1000, HasDurability: true, MaxDurability: 100, ArmorValue: 25,
	}
)

type fixture struct {
	catalog *MockCatalog
	bus     *MockBus
	ledger  *inventory.Ledger
	slots   *equipment.Slots
	wallet  *Wallet
	svc     Service
}

func newFixture(balance, capacity int) *fixture {
	f := &fixture{
		catalog: &MockCatalog{},
		bus:     &MockBus{},
		ledger:  inventory.NewLedger(capacity),
		wallet:  NewWallet(balance),
	}
	f.slots = equipment.New(f.ledger, nil)
	f.svc = NewService(f.catalog, f.ledger, f.slots, f.wallet, f.bus)
	return f
}

func eventOfType(typ event.Type) interface{} {
	return mock.MatchedBy(func(e event.Event) bool { return e.Type == typ })
}

func TestBuy(t *testing.T) {
	ctx := context.Background()

	t.Run("success charges and adds", func(t *testing.T) {
		f := newFixture(1000, 5)
		f.catalog.On("Item", "bread").Return(bread, nil)
		f.catalog.On("InStock", "bread").Return(true)
		f.bus.On("Publish", mock.Anything, eventOfType(event.ItemBought)).Return(nil).Once()

		result, err := f.svc.Buy(ctx, "bread")

		require.NoError(t, err)
		assert.Equal(t, "bread", result.ItemKey)
		assert.Equal(t, 50, result.Price)
		assert.Equal(t, 950, result.Balance)
		assert.Equal(t, 950, f.wallet.Balance())
		assert.Equal(t, 1, f.ledger.CountOf("bread"))
		f.bus.AssertExpectations(t)
	})

	t.Run("buying stackable twice merges", func(t *testing.T) {
		f := newFixture(1000, 5)
		f.catalog.On("Item", "bread").Return(bread, nil)
		f.catalog.On("InStock", "bread").Return(true)
		f.bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := f.svc.Buy(ctx, "bread")
		require.NoError(t, err)
		_, err = f.svc.Buy(ctx, "bread")
		require.NoError(t, err)

		assert.Equal(t, 1, f.ledger.Len())
		assert.Equal(t, 2, f.ledger.CountOf("bread"))
	})

	t.Run("display name resolves to the catalog key", func(t *testing.T) {
		f := newFixture(1000, 5)
		f.catalog.On("Item", "Bread").Return(bread, nil)
		f.catalog.On("InStock", "bread").Return(true)
		f.bus.On("Publish", mock.Anything, eventOfType(event.ItemBought)).Return(nil).Once()

		result, err := f.svc.Buy(ctx, "Bread")

		require.NoError(t, err)
		assert.Equal(t, "bread", result.ItemKey)
		assert.Equal(t, 1, f.ledger.CountOf("bread"))
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(1000, 5)
		f.catalog.On("Item", "nope").Return(nil, domain.ErrItemNotFound)

		_, err := f.svc.Buy(ctx, "nope")

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Equal(t, 1000, f.wallet.Balance())
	})

	t.Run("not sold by trader", func(t *testing.T) {
		f := newFixture(10000, 5)
		f.catalog.On("Item", "ak74").Return(rifle, nil)
		f.catalog.On("InStock", "ak74").Return(false)

		_, err := f.svc.Buy(ctx, "ak74")

		assert.ErrorIs(t, err, domain.ErrNotSold)
		assert.Equal(t, 10000, f.wallet.Balance())
		assert.Equal(t, 0, f.ledger.Len())
	})

	t.Run("insufficient funds leaves ledger unchanged", func(t *testing.T) {
		f := newFixture(700, 5)
		f.catalog.On("Item", "pm_pistol").Return(pistol, nil)
		f.catalog.On("InStock", "pm_pistol").Return(true)

		_, err := f.svc.Buy(ctx, "pm_pistol")

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, 700, f.wallet.Balance())
		assert.Equal(t, 0, f.ledger.Len())
		f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("full inventory is not charged", func(t *testing.T) {
		f := newFixture(1000, 1)
		require.True(t, f.ledger.Add(domain.NewItemInstance(vest)))
		f.catalog.On("Item", "pm_pistol").Return(pistol, nil)
		f.catalog.On("InStock", "pm_pistol").Return(true)

		_, err := f.svc.Buy(ctx, "pm_pistol")

		assert.ErrorIs(t, err, domain.ErrInventoryFull)
		assert.Equal(t, 1000, f.wallet.Balance())
		assert.Equal(t, 0, f.ledger.CountOf("pm_pistol"))
	})

	t.Run("publish failure does not undo the purchase", func(t *testing.T) {
		f := newFixture(1000, 5)
		f.catalog.On("Item", "bread").Return(bread, nil)
		f.catalog.On("InStock", "bread").Return(true)
		f.bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))

		_, err := f.svc.Buy(ctx, "bread")

		require.NoError(t, err)
		assert.Equal(t, 950, f.wallet.Balance())
	})
}

func TestSell(t *testing.T) {
	ctx := context.Background()

	t.Run("sums sell prices", func(t *testing.T) {
		f := newFixture(0, 5)
		gun := domain.NewItemInstance(pistol)
		loaf := domain.NewItemInstance(bread)
		require.True(t, f.ledger.Add(gun))
		require.True(t, f.ledger.Add(loaf))
		f.bus.On("Publish", mock.Anything, eventOfType(event.ItemSold)).Return(nil).Once()

		result, err := f.svc.Sell(ctx, gun.ID, loaf.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, result.ItemsSold)
		assert.Equal(t, 320, result.MoneyGained)
		assert.Equal(t, 320, f.wallet.Balance())
		assert.Equal(t, 0, f.ledger.Len())
		f.bus.AssertExpectations(t)
	})

	t.Run("repeated id sells from a stack", func(t *testing.T) {
		f := newFixture(0, 5)
		loaf := domain.NewItemInstance(bread)
		require.True(t, f.ledger.Add(loaf))
		require.True(t, f.ledger.Add(domain.NewItemInstance(bread)))
		require.True(t, f.ledger.Add(domain.NewItemInstance(bread)))
		f.bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		result, err := f.svc.Sell(ctx, loaf.ID, loaf.ID)

		require.NoError(t, err)
		assert.Equal(t, 40, result.MoneyGained)
		assert.Equal(t, 1, f.ledger.CountOf("bread"))
	})

	t.Run("missing id sells nothing", func(t *testing.T) {
		f := newFixture(0, 5)
		gun := domain.NewItemInstance(pistol)
		require.True(t, f.ledger.Add(gun))

		_, err := f.svc.Sell(ctx, gun.ID, uuid.New())

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Equal(t, 0, f.wallet.Balance())
		assert.Equal(t, 1, f.ledger.CountOf("pm_pistol"))
	})

	t.Run("more units than the stack holds sells nothing", func(t *testing.T) {
		f := newFixture(0, 5)
		loaf := domain.NewItemInstance(bread)
		require.True(t, f.ledger.Add(loaf))
		require.True(t, f.ledger.Add(domain.NewItemInstance(bread)))

		_, err := f.svc.Sell(ctx, loaf.ID, loaf.ID, loaf.ID)

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Equal(t, 2, f.ledger.CountOf("bread"))
		assert.Equal(t, 0, f.wallet.Balance())
	})

	t.Run("equipped items cannot be sold", func(t *testing.T) {
		f := newFixture(0, 5)
		gun := domain.NewItemInstance(pistol)
		_, err := f.slots.EquipNew(gun)
		require.NoError(t, err)

		_, err = f.svc.Sell(ctx, gun.ID)

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Same(t, gun, f.slots.Get(domain.SlotSecondary))
	})

	t.Run("empty sale", func(t *testing.T) {
		f := newFixture(0, 5)
		_, err := f.svc.Sell(ctx)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestRepair(t *testing.T) {
	ctx := context.Background()

	t.Run("ledger weapon at moderate wear", func(t *testing.T) {
		f := newFixture(2000, 5)
		gun := domain.NewItemInstance(pistol)
		gun.Durability = 60
		require.True(t, f.ledger.Add(gun))
		f.bus.On("Publish", mock.Anything, eventOfType(event.ItemRepaired)).Return(nil).Once()

		quote, err := f.svc.RepairQuote(gun.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RepairCostModerate, quote)

		result, err := f.svc.Repair(ctx, gun.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.RepairCostModerate, result.Cost)
		assert.False(t, result.Equipped)
		assert.Equal(t, 500, f.wallet.Balance())
		assert.InDelta(t, 100.0, gun.Durability, 0.0001)
		f.bus.AssertExpectations(t)
	})

	t.Run("equipped armor", func(t *testing.T) {
		f := newFixture(20000, 5)
		armor := domain.NewItemInstance(vest)
		armor.Durability = 10
		_, err := f.slots.EquipNew(armor)
		require.NoError(t, err)
		f.bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		result, err := f.svc.Repair(ctx, armor.ID)

		require.NoError(t, err)
		assert.True(t, result.Equipped)
		assert.Equal(t, domain.RepairCostSevere, result.Cost)
		assert.Equal(t, 10000, f.wallet.Balance())
		assert.InDelta(t, 100.0, armor.Durability, 0.0001)
	})

	t.Run("full durability", func(t *testing.T) {
		f := newFixture(2000, 5)
		gun := domain.NewItemInstance(pistol)
		require.True(t, f.ledger.Add(gun))

		_, err := f.svc.Repair(ctx, gun.ID)

		assert.ErrorIs(t, err, domain.ErrNoRepairNeeded)
		assert.Equal(t, 2000, f.wallet.Balance())
	})

	t.Run("consumables are not repairable", func(t *testing.T) {
		f := newFixture(2000, 5)
		loaf := domain.NewItemInstance(bread)
		require.True(t, f.ledger.Add(loaf))

		_, err := f.svc.RepairQuote(loaf.ID)

		assert.ErrorIs(t, err, domain.ErrNotRepairable)
	})

	t.Run("unaffordable repair changes nothing", func(t *testing.T) {
		f := newFixture(799, 5)
		gun := domain.NewItemInstance(pistol)
		gun.Durability = 90
		require.True(t, f.ledger.Add(gun))

		_, err := f.svc.Repair(ctx, gun.ID)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, 799, f.wallet.Balance())
		assert.InDelta(t, 90.0, gun.Durability, 0.0001)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(2000, 5)
		_, err := f.svc.Repair(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestPrices(t *testing.T) {
	f := newFixture(0, 5)
	f.catalog.On("TraderStock").Return([]*domain.ItemDefinition{bread, pistol})

	prices := f.svc.Prices()

	require.Len(t, prices, 2)
	assert.Equal(t, Price{ItemKey: "bread", Name: "Bread", Category: domain.CategoryConsumable, BuyPrice: 50, SellPrice: 20}, prices[0])
	assert.Equal(t, "pm_pistol", prices[1].ItemKey)
}

func TestNilBus(t *testing.T) {
	ledger := inventory.NewLedger(5)
	catalog := &MockCatalog{}
	catalog.On("Item", "bread").Return(bread, nil)
	catalog.On("InStock", "bread").Return(true)
	svc := NewService(catalog, ledger, equipment.New(ledger, nil), NewWallet(100), nil)

	_, err := svc.Buy(context.Background(), "bread")

	require.NoError(t, err)
}
