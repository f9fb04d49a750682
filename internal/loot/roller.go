package loot

import (
	"fmt"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/inventory"
	"github.com/osse101/Hodka_Go/internal/utils"
)

// ItemSource creates fresh item instances by definition key
type ItemSource interface {
	NewInstance(key string) (*domain.ItemInstance, error)
}

// Drop is the result of one successful loot table row
type Drop struct {
	ItemKey string `json:"item_key"`
	Rolled  int    `json:"rolled"`
	Added   int    `json:"added"`
}

// Lost returns how many rolled items did not fit in the ledger
func (d Drop) Lost() int {
	return d.Rolled - d.Added
}

// Roller rolls loot tables into a ledger
type Roller struct {
	items ItemSource
	rng   utils.Random
}

// NewRoller creates a Roller
func NewRoller(items ItemSource, rng utils.Random) *Roller {
	return &Roller{items: items, rng: rng}
}

// Roll checks every row of table independently. A row drops when a [0,100) roll
// is at or below its chance; the quantity is uniform in [Min,Max]. Items that do
// not fit in the ledger are dropped silently and reported through Drop.Lost.
func (r *Roller) Roll(table []domain.LootEntry, ledger *inventory.Ledger) ([]Drop, error) {
	var drops []Drop
	for _, entry := range table {
		if entry.Chance <= 0 || utils.Percent(r.rng) > entry.Chance {
			continue
		}
		qty := utils.RandomInt(r.rng, entry.Min, entry.Max)
		drop, err := r.Grant(entry.ItemKey, qty, ledger)
		if err != nil {
			return drops, err
		}
		drops = append(drops, drop)
	}
	return drops, nil
}

// Grant adds qty fresh instances of key to the ledger
func (r *Roller) Grant(key string, qty int, ledger *inventory.Ledger) (Drop, error) {
	drop := Drop{ItemKey: key, Rolled: qty}
	for i := 0; i < qty; i++ {
		inst, err := r.items.NewInstance(key)
		if err != nil {
			return drop, fmt.Errorf("loot %s: %w", key, err)
		}
		if ledger.Add(inst) {
			drop.Added++
		}
	}
	return drop, nil
}

// PickOne returns a uniformly chosen key, or false for an empty pool
func (r *Roller) PickOne(pool []string) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}
	return pool[r.rng.Intn(len(pool))], true
}
