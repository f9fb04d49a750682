package vitals

import (
	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/utils"
)

// Resource bounds for energy, food, water and radiation
const (
	ResourceMin = 0
	ResourceMax = 100
)

// Vitals tracks the player's health and survival resources.
// Max health is the base plus the armor value of the equipped armor.
type Vitals struct {
	baseMaxHealth int
	armor         int

	health    int
	energy    int
	food      int
	water     int
	radiation int
}

// Snapshot is a read-only copy of the vitals
type Snapshot struct {
	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Armor     int `json:"armor"`
	Energy    int `json:"energy"`
	Food      int `json:"food"`
	Water     int `json:"water"`
	Radiation int `json:"radiation"`
}

// New creates vitals at full health with full energy, food and water and no radiation
func New(baseMaxHealth int) *Vitals {
	return &Vitals{
		baseMaxHealth: baseMaxHealth,
		health:        baseMaxHealth,
		energy:        ResourceMax,
		food:          ResourceMax,
		water:         ResourceMax,
	}
}

// Health returns current health
func (v *Vitals) Health() int { return v.health }

// Energy returns current energy
func (v *Vitals) Energy() int { return v.energy }

// Food returns current food
func (v *Vitals) Food() int { return v.food }

// Water returns current water
func (v *Vitals) Water() int { return v.water }

// Radiation returns accumulated radiation
func (v *Vitals) Radiation() int { return v.radiation }

// Armor returns the armor total of the equipped pieces
func (v *Vitals) Armor() int { return v.armor }

// MaxHealth returns base max health plus equipped armor
func (v *Vitals) MaxHealth() int {
	return v.baseMaxHealth + v.armor
}

// ApplyArmor records the equipped armor total and clamps health if the max shrank
func (v *Vitals) ApplyArmor(total int) {
	v.armor = max(total, 0)
	v.health = min(v.health, v.MaxHealth())
}

// TakeDamage lowers health, never below zero
func (v *Vitals) TakeDamage(damage int) {
	if damage <= 0 {
		return
	}
	v.health = max(v.health-damage, 0)
}

// RestoreHealth raises health up to the armor-adjusted max
func (v *Vitals) RestoreHealth(amount int) {
	if amount <= 0 {
		return
	}
	v.health = min(v.health+amount, v.MaxHealth())
}

// ChangeEnergy adds delta to energy, clamped to [0,100]
func (v *Vitals) ChangeEnergy(delta int) {
	v.energy = utils.Clamp(v.energy+delta, ResourceMin, ResourceMax)
}

// ChangeFood adds delta to food, clamped to [0,100]
func (v *Vitals) ChangeFood(delta int) {
	v.food = utils.Clamp(v.food+delta, ResourceMin, ResourceMax)
}

// ChangeWater adds delta to water, clamped to [0,100]
func (v *Vitals) ChangeWater(delta int) {
	v.water = utils.Clamp(v.water+delta, ResourceMin, ResourceMax)
}

// ChangeRadiation adds delta to radiation, clamped to [0,100]
func (v *Vitals) ChangeRadiation(delta int) {
	v.radiation = utils.Clamp(v.radiation+delta, ResourceMin, ResourceMax)
}

// Apply gives the restore amounts of a consumable
func (v *Vitals) Apply(r domain.Restore) {
	v.RestoreHealth(r.Health)
	v.ChangeFood(r.Food)
	v.ChangeWater(r.Water)
	v.ChangeEnergy(r.Energy)
	v.ChangeRadiation(-r.Radiation)
}

// IsAlive reports whether health is above zero
func (v *Vitals) IsAlive() bool {
	return v.health > 0
}

// CanContinueJourney reports whether the player has food, water and health left
func (v *Vitals) CanContinueJourney() bool {
	return v.food > 0 && v.water > 0 && v.health > 0
}

// RestoreAtBase refills energy
func (v *Vitals) RestoreAtBase() {
	v.energy = ResourceMax
}

// Revive brings the player back at the station with full health and energy
func (v *Vitals) Revive() {
	v.health = v.MaxHealth()
	v.RestoreAtBase()
}

// Snapshot returns a copy of the current values
func (v *Vitals) Snapshot() Snapshot {
	return Snapshot{
		Health:    v.health,
		MaxHealth: v.MaxHealth(),
		Armor:     v.armor,
		Energy:    v.energy,
		Food:      v.food,
		Water:     v.water,
		Radiation: v.radiation,
	}
}
