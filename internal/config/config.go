package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"required,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"required,oneof=json text"`
	Environment string `validate:"required"`
	CatalogPath string // empty means the embedded catalog

	InventorySlots int   `validate:"min=1"`
	BaseMaxHealth  int   `validate:"min=1"`
	StartingMoney  int   `validate:"min=0"`
	RNGSeed        int64 // 0 means time based

	JournalSize int           `validate:"min=1"`
	JournalTTL  time.Duration `validate:"min=0"`

	Combat CombatConfig

	AutoplaySteps int    `validate:"min=0"`
	ReportPath    string // empty disables the JSON run report
}

// CombatConfig holds the tunable combat constants
type CombatConfig struct {
	PrimaryAttackEnergy   int `validate:"min=0,max=100"`
	SecondaryAttackEnergy int `validate:"min=0,max=100"`
	ReloadEnergy          int `validate:"min=0,max=100"`
	CoverEnergy           int `validate:"min=0,max=100"`
	EscapeChance          int `validate:"min=0,max=100"`
	EnemyMissChance       int `validate:"min=0,max=100"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		CatalogPath: getEnv(EnvCatalogPath, ""),

		InventorySlots: getEnvAsInt(EnvInventorySlots, DefaultInventorySlots),
		BaseMaxHealth:  getEnvAsInt(EnvBaseMaxHealth, DefaultBaseMaxHealth),
		StartingMoney:  getEnvAsInt(EnvStartingMoney, DefaultStartingMoney),

		JournalSize: getEnvAsInt(EnvJournalSize, DefaultJournalSize),
		JournalTTL:  getEnvAsDuration(EnvJournalTTL, DefaultJournalTTL),

		Combat: CombatConfig{
			PrimaryAttackEnergy:   getEnvAsInt(EnvPrimaryAttackEnergy, DefaultPrimaryAttackEnergy),
			SecondaryAttackEnergy: getEnvAsInt(EnvSecondaryAttackEnergy, DefaultSecondaryAttackEnergy),
			ReloadEnergy:          getEnvAsInt(EnvReloadEnergy, DefaultReloadEnergy),
			CoverEnergy:           getEnvAsInt(EnvCoverEnergy, DefaultCoverEnergy),
			EscapeChance:          getEnvAsInt(EnvEscapeChance, DefaultEscapeChance),
			EnemyMissChance:       getEnvAsInt(EnvEnemyMissChance, DefaultEnemyMissChance),
		},

		AutoplaySteps: getEnvAsInt(EnvAutoplaySteps, DefaultAutoplaySteps),
		ReportPath:    getEnv(EnvReportPath, ""),
	}

	seedStr := getEnv(EnvRNGSeed, "0")
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvRNGSeed, err)
	}
	cfg.RNGSeed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration retrieves a duration environment variable such as "30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
