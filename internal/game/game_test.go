package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Hodka_Go/internal/catalog"
	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/journey"
	"github.com/osse101/Hodka_Go/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) types() []event.Type {
	out := make([]event.Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func (r *recorder) count(typ event.Type) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, rng utils.Random) (*Game, *recorder) {
	t.Helper()
	cat, err := catalog.LoadDefault()
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	rec := &recorder{}
	for _, typ := range []event.Type{
		event.CombatStarted, event.CombatEnded, event.LootDropped, event.ItemBought,
		event.ItemSold, event.ItemRepaired, event.ItemUsed, event.JourneyStep,
	} {
		bus.Subscribe(typ, func(_ context.Context, e event.Event) error {
			rec.events = append(rec.events, e)
			return nil
		})
	}

	opts := DefaultOptions()
	opts.Rand = rng
	opts.Bus = bus
	g, err := New(context.Background(), cat, opts)
	require.NoError(t, err)
	return g, rec
}

func stackID(t *testing.T, g *Game, key string) domain.ItemInstance {
	t.Helper()
	for _, s := range g.Snapshot().Inventory {
		if s.Item.Key == key {
			inst, ok := g.ledger.Find(s.Item.ID)
			require.True(t, ok)
			return *inst
		}
	}
	t.Fatalf("no %s in inventory", key)
	return domain.ItemInstance{}
}

func TestNew_StartingLoadout(t *testing.T) {
	g, _ := newTestGame(t, utils.NewScriptedRandom())

	snap := g.Snapshot()

	assert.Equal(t, 1000, snap.Balance)
	assert.Equal(t, 100, snap.Vitals.Health)
	assert.Equal(t, 20, snap.Capacity)
	assert.Equal(t, 0, snap.Location)
	assert.True(t, snap.AtStation)
	assert.True(t, snap.CanTravel)
	assert.Equal(t, 30, snap.ItemCount)
	assert.False(t, snap.CanReload, "pistol starts loaded")
	require.Contains(t, snap.Equipment, domain.SlotSecondary)
	assert.Equal(t, "pm_pistol", snap.Equipment[domain.SlotSecondary].Key)
	assert.Equal(t, 8, snap.Equipment[domain.SlotSecondary].Ammo)
	assert.Len(t, snap.Inventory, 4)
	assert.Equal(t, 24, g.ledger.TotalAmmo(domain.AmmoTypePistol))
	assert.Equal(t, 2, g.ledger.CountOf("bread"))
	assert.Len(t, snap.Weapons, 2)
	assert.Nil(t, snap.Combat)
	assert.Equal(t, domain.CombatIdle, g.CombatState())
}

func TestUseItem(t *testing.T) {
	ctx := context.Background()

	t.Run("consumable", func(t *testing.T) {
		g, rec := newTestGame(t, utils.NewScriptedRandom())
		g.vitals.ChangeFood(-50)
		bread := stackID(t, g, "bread")

		restore, err := g.UseItem(ctx, bread.ID)

		require.NoError(t, err)
		assert.Equal(t, 30, restore.Food)
		assert.Equal(t, 80, g.vitals.Food())
		assert.Equal(t, 1, g.ledger.CountOf("bread"))
		assert.Equal(t, 1, rec.count(event.ItemUsed))
	})

	t.Run("ammo is not consumable", func(t *testing.T) {
		g, _ := newTestGame(t, utils.NewScriptedRandom())
		ammo := stackID(t, g, "ammo_9x18")

		_, err := g.UseItem(ctx, ammo.ID)

		assert.ErrorIs(t, err, domain.ErrNotConsumable)
		assert.Equal(t, 24, g.ledger.TotalAmmo(domain.AmmoTypePistol))
	})
}

func TestEquipUnequip(t *testing.T) {
	ctx := context.Background()
	g, _ := newTestGame(t, utils.NewScriptedRandom())

	pistol, err := g.Unequip(ctx, domain.SlotSecondary)
	require.NoError(t, err)
	assert.Equal(t, 1, g.ledger.CountOf("pm_pistol"))

	slot, err := g.Equip(ctx, pistol.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSecondary, slot)
	assert.Equal(t, 0, g.ledger.CountOf("pm_pistol"))
}

func TestTradeAndRepair(t *testing.T) {
	ctx := context.Background()
	g, rec := newTestGame(t, utils.NewScriptedRandom())

	bought, err := g.Buy(ctx, "water_bottle")
	require.NoError(t, err)
	assert.Equal(t, 960, bought.Balance)

	bandage := stackID(t, g, "bandage")
	sold, err := g.Sell(ctx, bandage.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, sold.MoneyGained)

	pistol := g.slots.Get(domain.SlotSecondary)
	_, err = g.Repair(ctx, pistol.ID)
	assert.ErrorIs(t, err, domain.ErrNoRepairNeeded)

	pistol.Durability = 85
	quote, err := g.RepairQuote(pistol.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RepairCostMinor, quote)

	repaired, err := g.Repair(ctx, pistol.ID)
	require.NoError(t, err)
	assert.True(t, repaired.Equipped)
	assert.Equal(t, 190, g.wallet.Balance())

	assert.Equal(t, []event.Type{event.ItemBought, event.ItemSold, event.ItemRepaired}, rec.types())
	assert.NotEmpty(t, g.Prices())
}

func TestCombatBlocksInventory(t *testing.T) {
	ctx := context.Background()
	g, _ := newTestGame(t, utils.NewScriptedRandom())
	bread := stackID(t, g, "bread")

	_, err := g.StartCombat(ctx, "mutant")
	require.NoError(t, err)

	_, err = g.Buy(ctx, "bread")
	assert.ErrorIs(t, err, domain.ErrCombatActive)
	_, err = g.Sell(ctx, bread.ID)
	assert.ErrorIs(t, err, domain.ErrCombatActive)
	_, err = g.UseItem(ctx, bread.ID)
	assert.ErrorIs(t, err, domain.ErrCombatActive)
	_, err = g.Unequip(ctx, domain.SlotSecondary)
	assert.ErrorIs(t, err, domain.ErrCombatActive)
	_, err = g.Continue(ctx)
	assert.ErrorIs(t, err, domain.ErrCombatActive)
	assert.ErrorIs(t, g.ReturnToStation(ctx), domain.ErrCombatActive)
	_, err = g.StartCombat(ctx, "bandit")
	assert.ErrorIs(t, err, domain.ErrCombatActive)

	snap := g.Snapshot()
	require.NotNil(t, snap.Combat)
	assert.Equal(t, "mutant", snap.Combat.ArchetypeID)
	assert.Equal(t, 60, snap.Combat.EnemyHealth)
}

func TestStartCombat_UnknownArchetype(t *testing.T) {
	g, _ := newTestGame(t, utils.NewScriptedRandom())
	_, err := g.StartCombat(context.Background(), "dragon")
	assert.ErrorIs(t, err, domain.ErrUnknownArchetype)
	assert.Equal(t, domain.CombatIdle, g.CombatState())
}

func TestCombatVictory(t *testing.T) {
	// five 14-damage pistol shots, enemy always misses, tail drops twice, no artifact
	rng := utils.NewScriptedRandom().
		QueueFloats(0.5, 0.0, 0.5, 0.0, 0.5, 0.0, 0.5, 0.0, 0.5, 0.0, 0.0, 0.99).
		QueueInts(6, 0, 6, 0, 6, 0, 6, 0, 6, 1)
	ctx := context.Background()
	g, rec := newTestGame(t, rng)

	_, err := g.StartCombat(ctx, "mutant")
	require.NoError(t, err)

	var last domain.CombatState
	for i := 0; i < 5; i++ {
		out, err := g.Act(ctx, domain.Action{Kind: domain.ActionAttack, Slot: domain.SlotSecondary})
		require.NoError(t, err)
		last = out.State
	}

	assert.Equal(t, domain.CombatVictory, last)
	assert.Equal(t, domain.CombatIdle, g.CombatState())
	assert.Equal(t, 2, g.ledger.CountOf("mutant_tail"))
	assert.Equal(t, 3, g.slots.Get(domain.SlotSecondary).Ammo)
	assert.Equal(t, 25, g.vitals.Energy())

	assert.Equal(t, 1, rec.count(event.CombatStarted))
	assert.Equal(t, 1, rec.count(event.LootDropped))
	assert.Equal(t, 1, rec.count(event.CombatEnded))
	ended := rec.events[len(rec.events)-1].Payload.(domain.CombatEndedPayload)
	assert.Equal(t, domain.CombatVictory, ended.Outcome)
	assert.Equal(t, 70, ended.DamageDealt)

	entries := g.Journal(0)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.CombatVictory, entries[0].Outcome)
	_, ok := g.JournalEntry(entries[0].SessionID)
	assert.True(t, ok)
}

func TestCombatDefeatRevivesAtStation(t *testing.T) {
	// leave the station, then take cover and get hit for 15
	rng := utils.NewScriptedRandom().QueueInts(0, 0, 99, 10).QueueFloats(0.1, 0.9)
	ctx := context.Background()
	g, rec := newTestGame(t, rng)
	_, err := g.Continue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, g.Snapshot().Location)
	g.vitals.TakeDamage(95)

	_, err = g.StartCombat(ctx, "mutant")
	require.NoError(t, err)
	out, err := g.Act(ctx, domain.Action{Kind: domain.ActionTakeCover})

	require.NoError(t, err)
	assert.Equal(t, domain.CombatDefeat, out.State)
	snap := g.Snapshot()
	assert.Empty(t, snap.Inventory)
	assert.Empty(t, snap.Equipment)
	assert.Equal(t, 100, snap.Vitals.Health)
	assert.Equal(t, 100, snap.Vitals.Energy)
	assert.Equal(t, 0, snap.Location)
	assert.Equal(t, domain.CombatIdle, g.CombatState())
	assert.Equal(t, 1, rec.count(event.CombatEnded))
}

func TestCombatEscape(t *testing.T) {
	ctx := context.Background()
	g, _ := newTestGame(t, utils.NewScriptedRandom().QueueInts(0))
	_, err := g.StartCombat(ctx, "bandit")
	require.NoError(t, err)

	out, err := g.Act(ctx, domain.Action{Kind: domain.ActionEscape})

	require.NoError(t, err)
	assert.Equal(t, domain.CombatEscaped, out.State)
	assert.Equal(t, domain.CombatIdle, g.CombatState())
	assert.Equal(t, 4, len(g.Snapshot().Inventory), "escape keeps everything")

	_, err = g.Act(ctx, domain.Action{Kind: domain.ActionEscape})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestContinue(t *testing.T) {
	ctx := context.Background()

	t.Run("quiet step", func(t *testing.T) {
		g, rec := newTestGame(t, utils.NewScriptedRandom().QueueInts(0, 0).QueueFloats(0.1, 0.9))

		result, err := g.Continue(ctx)

		require.NoError(t, err)
		assert.Equal(t, journey.EventQuiet, result.Step.Event)
		assert.Nil(t, result.Combat)
		assert.Equal(t, 99, g.vitals.Food())
		assert.Equal(t, 95, g.vitals.Water())
		assert.Equal(t, []event.Type{event.JourneyStep}, rec.types())

		require.NoError(t, g.ReturnToStation(ctx))
		assert.Equal(t, 0, g.Snapshot().Location)
	})

	t.Run("encounter opens combat", func(t *testing.T) {
		g, rec := newTestGame(t, utils.NewScriptedRandom().QueueInts(0, 0).QueueFloats(0.55))

		result, err := g.Continue(ctx)

		require.NoError(t, err)
		assert.Equal(t, journey.ArchetypeMutant, result.Step.Encounter)
		require.NotNil(t, result.Combat)
		assert.Equal(t, domain.CombatPlayerTurn, result.Combat.State)
		assert.Equal(t, domain.CombatPlayerTurn, g.CombatState())
		assert.Equal(t, []event.Type{event.JourneyStep, event.CombatStarted}, rec.types())
	})

	t.Run("bonus loot", func(t *testing.T) {
		// pool index 0 is bread
		g, rec := newTestGame(t, utils.NewScriptedRandom().QueueInts(0, 0, 0).QueueFloats(0.95))

		result, err := g.Continue(ctx)

		require.NoError(t, err)
		require.NotNil(t, result.Step.Loot)
		assert.Equal(t, "bread", result.Step.Loot.ItemKey)
		assert.Equal(t, 3, g.ledger.CountOf("bread"))
		assert.Equal(t, 1, rec.count(event.LootDropped))
	})

	t.Run("out of water", func(t *testing.T) {
		g, _ := newTestGame(t, utils.NewScriptedRandom())
		g.vitals.ChangeWater(-100)
		assert.False(t, g.Snapshot().CanTravel)

		_, err := g.Continue(ctx)

		assert.ErrorIs(t, err, domain.ErrCannotTravel)
	})
}
