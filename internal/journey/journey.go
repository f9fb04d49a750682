package journey

import (
	"fmt"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/inventory"
	"github.com/osse101/Hodka_Go/internal/loot"
	"github.com/osse101/Hodka_Go/internal/utils"
	"github.com/osse101/Hodka_Go/internal/vitals"
)

// EventKind is what happened on one step of the road
type EventKind string

const (
	EventQuiet     EventKind = "quiet"
	EventEncounter EventKind = "encounter"
	EventBonusLoot EventKind = "bonus_loot"
)

// Archetype ids rolled for encounters
const (
	ArchetypeMutant = "mutant"
	ArchetypeBandit = "bandit"
)

// Settings holds the step costs and event odds. Chances are percents.
type Settings struct {
	FoodCostMin   int
	FoodCostMax   int
	WaterCostMin  int
	WaterCostMax  int
	QuietChance   float64
	MutantChance  float64
	BanditChance  float64
	QuietLootOdds float64
}

// DefaultSettings returns the stock odds: half the steps are quiet, then mutants,
// bandits and bonus loot. A quiet step still finds something one time in ten.
func DefaultSettings() Settings {
	return Settings{
		FoodCostMin:   1,
		FoodCostMax:   10,
		WaterCostMin:  5,
		WaterCostMax:  15,
		QuietChance:   50,
		MutantChance:  20,
		BanditChance:  20,
		QuietLootOdds: 10,
	}
}

// Looter picks and grants items from the journey pool
type Looter interface {
	PickOne(pool []string) (string, bool)
	Grant(key string, qty int, ledger *inventory.Ledger) (loot.Drop, error)
}

// Step is the result of one Continue call
type Step struct {
	Location  int        `json:"location"`
	FoodCost  int        `json:"food_cost"`
	WaterCost int        `json:"water_cost"`
	Event     EventKind  `json:"event"`
	Encounter string     `json:"encounter,omitempty"`
	Loot      *loot.Drop `json:"loot,omitempty"`
}

// Journey walks the player away from the station one step at a time.
// Encounters are reported, not fought; the caller starts combat.
type Journey struct {
	vitals   *vitals.Vitals
	ledger   *inventory.Ledger
	looter   Looter
	pool     []string
	rng      utils.Random
	settings Settings

	location int
}

// New creates a Journey starting at the station
func New(v *vitals.Vitals, ledger *inventory.Ledger, looter Looter, pool []string, rng utils.Random, settings Settings) *Journey {
	return &Journey{
		vitals:   v,
		ledger:   ledger,
		looter:   looter,
		pool:     pool,
		rng:      rng,
		settings: settings,
	}
}

// Location returns how many steps the player is from the station
func (j *Journey) Location() int {
	return j.location
}

// AtStation reports whether the player is at the station
func (j *Journey) AtStation() bool {
	return j.location == 0
}

// Continue spends food and water, moves one step and rolls the step's event
func (j *Journey) Continue() (*Step, error) {
	if !j.vitals.CanContinueJourney() {
		snap := j.vitals.Snapshot()
		return nil, fmt.Errorf("%w: food %d, water %d, health %d", domain.ErrCannotTravel, snap.Food, snap.Water, snap.Health)
	}

	step := &Step{
		FoodCost:  utils.RandomInt(j.rng, j.settings.FoodCostMin, j.settings.FoodCostMax),
		WaterCost: utils.RandomInt(j.rng, j.settings.WaterCostMin, j.settings.WaterCostMax),
	}
	j.vitals.ChangeFood(-step.FoodCost)
	j.vitals.ChangeWater(-step.WaterCost)
	j.location++
	step.Location = j.location

	var err error
	roll := utils.Percent(j.rng)
	switch {
	case roll < j.settings.QuietChance:
		step.Event = EventQuiet
		if utils.Percent(j.rng) < j.settings.QuietLootOdds {
			step.Loot, err = j.findLoot()
		}
	case roll < j.settings.QuietChance+j.settings.MutantChance:
		step.Event = EventEncounter
		step.Encounter = ArchetypeMutant
	case roll < j.settings.QuietChance+j.settings.MutantChance+j.settings.BanditChance:
		step.Event = EventEncounter
		step.Encounter = ArchetypeBandit
	default:
		step.Event = EventBonusLoot
		step.Loot, err = j.findLoot()
	}
	return step, err
}

// ReturnToStation ends the journey and restores energy
func (j *Journey) ReturnToStation() {
	j.location = 0
	j.vitals.RestoreAtBase()
}

func (j *Journey) findLoot() (*loot.Drop, error) {
	key, ok := j.looter.PickOne(j.pool)
	if !ok {
		return nil, nil
	}
	drop, err := j.looter.Grant(key, 1, j.ledger)
	if err != nil {
		return nil, err
	}
	return &drop, nil
}
