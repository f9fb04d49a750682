package config

import "time"

// Environment variable names
const (
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvEnvironment           = "ENVIRONMENT"
	EnvCatalogPath           = "CATALOG_PATH"
	EnvInventorySlots        = "INVENTORY_SLOTS"
	EnvBaseMaxHealth         = "BASE_MAX_HEALTH"
	EnvStartingMoney         = "STARTING_MONEY"
	EnvRNGSeed               = "RNG_SEED"
	EnvJournalSize           = "JOURNAL_SIZE"
	EnvJournalTTL            = "JOURNAL_TTL"
	EnvPrimaryAttackEnergy   = "PRIMARY_ATTACK_ENERGY"
	EnvSecondaryAttackEnergy = "SECONDARY_ATTACK_ENERGY"
	EnvReloadEnergy          = "RELOAD_ENERGY"
	EnvCoverEnergy           = "COVER_ENERGY"
	EnvEscapeChance          = "ESCAPE_CHANCE"
	EnvEnemyMissChance       = "ENEMY_MISS_CHANCE"
	EnvAutoplaySteps         = "AUTOPLAY_STEPS"
	EnvReportPath            = "REPORT_PATH"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"

	DefaultInventorySlots = 20
	DefaultBaseMaxHealth  = 100
	DefaultStartingMoney  = 1000

	DefaultJournalSize = 32
	DefaultJournalTTL  = time.Hour

	DefaultPrimaryAttackEnergy   = 30
	DefaultSecondaryAttackEnergy = 15
	DefaultReloadEnergy          = 10
	DefaultCoverEnergy           = 60
	DefaultEscapeChance          = 50
	DefaultEnemyMissChance       = 25

	DefaultAutoplaySteps = 50
)

// Error messages
const (
	ErrMsgInvalidConfig = "invalid configuration"
)
