package combat

import "github.com/osse101/Hodka_Go/internal/domain"

// Default action costs and odds
const (
	DefaultPrimaryAttackEnergy   = 30
	DefaultSecondaryAttackEnergy = 15
	DefaultReloadEnergy          = 10
	DefaultCoverEnergy           = 60
	DefaultEscapeChance          = 50
	DefaultEnemyMissChance       = 25
)

// Settings holds the tunable numbers of the combat rules. Chances are percents.
type Settings struct {
	PrimaryAttackEnergy   int
	SecondaryAttackEnergy int
	ReloadEnergy          int
	CoverEnergy           int
	EscapeChance          int
	EnemyMissChance       int
}

// DefaultSettings returns the stock rule set
func DefaultSettings() Settings {
	return Settings{
		PrimaryAttackEnergy:   DefaultPrimaryAttackEnergy,
		SecondaryAttackEnergy: DefaultSecondaryAttackEnergy,
		ReloadEnergy:          DefaultReloadEnergy,
		CoverEnergy:           DefaultCoverEnergy,
		EscapeChance:          DefaultEscapeChance,
		EnemyMissChance:       DefaultEnemyMissChance,
	}
}

// AttackEnergy returns the energy an attack from slot costs
func (s Settings) AttackEnergy(slot domain.Slot) int {
	if slot == domain.SlotSecondary {
		return s.SecondaryAttackEnergy
	}
	return s.PrimaryAttackEnergy
}
