package loot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/inventory"
	"github.com/osse101/Hodka_Go/internal/utils"
)

var (
	tailDef     = &domain.ItemDefinition{Key: "mutant_tail", Category: domain.CategoryMisc, Stackable: true, MaxStack: 20}
	artifactDef = &domain.ItemDefinition{Key: "medusa_artifact", Category: domain.CategoryMisc, MaxStack: 1}
)

// newSource returns a MockItemSource that hands out fresh instances for the known defs
func newSource(defs ...*domain.ItemDefinition) *MockItemSource {
	src := new(MockItemSource)
	for _, def := range defs {
		def := def
		src.On("NewInstance", def.Key).Return(func(string) *domain.ItemInstance {
			return domain.NewItemInstance(def)
		}, nil)
	}
	return src
}

func TestRoll(t *testing.T) {
	table := []domain.LootEntry{
		{ItemKey: "mutant_tail", Min: 1, Max: 3, Chance: 60},
		{ItemKey: "medusa_artifact", Min: 1, Max: 1, Chance: 5},
	}

	t.Run("roll at or below chance drops", func(t *testing.T) {
		// ARRANGE
		rng := utils.NewScriptedRandom().
			QueueFloats(0.60, 0.05). // 60.0 <= 60, 5.0 <= 5
			QueueInts(1, 0)          // tail quantity 2, artifact quantity 1
		ledger := inventory.NewLedger(10)
		roller := NewRoller(newSource(tailDef, artifactDef), rng)

		// ACT
		drops, err := roller.Roll(table, ledger)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, []Drop{
			{ItemKey: "mutant_tail", Rolled: 2, Added: 2},
			{ItemKey: "medusa_artifact", Rolled: 1, Added: 1},
		}, drops)
		assert.Equal(t, 2, ledger.CountOf("mutant_tail"))
		assert.Equal(t, 1, ledger.CountOf("medusa_artifact"))
	})

	t.Run("roll above chance drops nothing", func(t *testing.T) {
		rng := utils.NewScriptedRandom().QueueFloats(0.61, 0.99)
		ledger := inventory.NewLedger(10)
		source := newSource(tailDef, artifactDef)

		drops, err := NewRoller(source, rng).Roll(table, ledger)

		require.NoError(t, err)
		assert.Empty(t, drops)
		assert.Equal(t, 0, ledger.Len())
		source.AssertNotCalled(t, "NewInstance", mock.Anything)
	})

	t.Run("zero chance never drops", func(t *testing.T) {
		rng := utils.NewScriptedRandom().QueueFloats(0)
		drops, err := NewRoller(newSource(tailDef), rng).Roll(
			[]domain.LootEntry{{ItemKey: "mutant_tail", Min: 1, Max: 1, Chance: 0}}, inventory.NewLedger(1))

		require.NoError(t, err)
		assert.Empty(t, drops)
	})

	t.Run("full ledger silently drops the excess", func(t *testing.T) {
		rng := utils.NewScriptedRandom().QueueFloats(0, 0).QueueInts(0, 0)
		ledger := inventory.NewLedger(1)
		require.True(t, ledger.Add(domain.NewItemInstance(artifactDef)))

		drops, err := NewRoller(newSource(tailDef, artifactDef), rng).Roll(table, ledger)

		require.NoError(t, err)
		require.Len(t, drops, 2)
		assert.Equal(t, 1, drops[0].Lost())
		assert.Equal(t, 1, drops[1].Lost())
		assert.Equal(t, 1, ledger.Len())
	})

	t.Run("source error is returned", func(t *testing.T) {
		rng := utils.NewScriptedRandom().QueueFloats(0).QueueInts(0)
		source := new(MockItemSource)
		source.On("NewInstance", "mutant_tail").Return(nil, domain.ErrItemNotFound)

		_, err := NewRoller(source, rng).Roll(table[:1], inventory.NewLedger(5))

		assert.True(t, errors.Is(err, domain.ErrItemNotFound))
	})
}

func TestRollIsReproducibleWithSeed(t *testing.T) {
	table := []domain.LootEntry{{ItemKey: "mutant_tail", Min: 1, Max: 5, Chance: 50}}
	run := func() int {
		ledger := inventory.NewLedger(20)
		roller := NewRoller(newSource(tailDef), utils.NewRandom(99))
		for i := 0; i < 10; i++ {
			_, err := roller.Roll(table, ledger)
			require.NoError(t, err)
		}
		return ledger.CountOf("mutant_tail")
	}

	assert.Equal(t, run(), run())
}

func TestPickOne(t *testing.T) {
	roller := NewRoller(newSource(), utils.NewScriptedRandom().QueueInts(2))

	key, ok := roller.PickOne([]string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "c", key)

	_, ok = roller.PickOne(nil)
	assert.False(t, ok)
}
