package game

import (
	"time"

	"github.com/osse101/Hodka_Go/internal/combat"
	"github.com/osse101/Hodka_Go/internal/config"
	"github.com/osse101/Hodka_Go/internal/event"
	"github.com/osse101/Hodka_Go/internal/journey"
	"github.com/osse101/Hodka_Go/internal/utils"
)

// Options configures a new Game
type Options struct {
	InventorySlots int
	BaseMaxHealth  int
	StartingMoney  int
	JournalSize    int
	JournalTTL     time.Duration

	Combat  combat.Settings
	Journey journey.Settings

	// Rand drives every roll. Nil means time seeded.
	Rand utils.Random
	// Bus receives game events. Nil means a private MemoryBus.
	Bus event.Bus
}

// DefaultOptions returns the stock rule set with config defaults
func DefaultOptions() Options {
	return Options{
		InventorySlots: config.DefaultInventorySlots,
		BaseMaxHealth:  config.DefaultBaseMaxHealth,
		StartingMoney:  config.DefaultStartingMoney,
		JournalSize:    config.DefaultJournalSize,
		JournalTTL:     config.DefaultJournalTTL,
		Combat:         combat.DefaultSettings(),
		Journey:        journey.DefaultSettings(),
	}
}

// OptionsFromConfig maps the loaded configuration onto game options
func OptionsFromConfig(cfg *config.Config, bus event.Bus) Options {
	opts := DefaultOptions()
	opts.InventorySlots = cfg.InventorySlots
	opts.BaseMaxHealth = cfg.BaseMaxHealth
	opts.StartingMoney = cfg.StartingMoney
	opts.JournalSize = cfg.JournalSize
	opts.JournalTTL = cfg.JournalTTL
	opts.Combat = combat.Settings(cfg.Combat)
	opts.Rand = utils.NewRandom(cfg.RNGSeed)
	opts.Bus = bus
	return opts
}
