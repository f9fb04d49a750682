package domain

import (
	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/utils"
)

// Category is the top-level kind of an item definition
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryConsumable Category = "consumable"
	CategoryAmmo       Category = "ammo"
	CategoryMisc       Category = "misc"
)

// ArmorType selects which armor slot a piece of armor occupies
type ArmorType string

const (
	ArmorTypeNone   ArmorType = ""
	ArmorTypeHelmet ArmorType = "helmet"
	ArmorTypeChest  ArmorType = "chest"
	ArmorTypeLegs   ArmorType = "legs"
)

// WeaponType selects which weapon slot a weapon occupies
type WeaponType string

const (
	WeaponTypeAny    WeaponType = "any"
	WeaponTypePistol WeaponType = "pistol"
)

// AmmoType is the ammunition category a weapon fires and an ammo item provides
type AmmoType string

const (
	AmmoTypeNone      AmmoType = ""
	AmmoTypePistol    AmmoType = "pistol"
	AmmoTypeShotgun   AmmoType = "shotgun"
	AmmoTypeRifle     AmmoType = "rifle"
	AmmoTypeExplosive AmmoType = "explosive"
)

// Restore holds the amounts a consumable gives back when used
type Restore struct {
	Health    int `json:"health,omitempty" validate:"min=0"`
	Food      int `json:"food,omitempty" validate:"min=0"`
	Water     int `json:"water,omitempty" validate:"min=0"`
	Radiation int `json:"radiation,omitempty" validate:"min=0"` // amount removed
	Energy    int `json:"energy,omitempty" validate:"min=0"`
}

// IsZero reports whether the restore does nothing
func (r Restore) IsZero() bool {
	return r == Restore{}
}

// ItemDefinition is an immutable catalog template. Loaded once, never mutated.
type ItemDefinition struct {
	Key         string   `json:"key" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category" validate:"required,oneof=weapon armor consumable ammo misc"`

	ArmorType  ArmorType  `json:"armor_type,omitempty" validate:"omitempty,oneof=helmet chest legs"`
	WeaponType WeaponType `json:"weapon_type,omitempty"`

	Stackable bool `json:"stackable"`
	MaxStack  int  `json:"max_stack" validate:"min=1"`

	BuyPrice  int `json:"buy_price" validate:"min=0"`
	SellPrice int `json:"sell_price" validate:"min=0"`

	HasDurability bool    `json:"has_durability"`
	MaxDurability float64 `json:"max_durability" validate:"min=0"`

	MinDamage      int      `json:"min_damage,omitempty" validate:"min=0"`
	MaxDamage      int      `json:"max_damage,omitempty" validate:"gtefield=MinDamage"`
	AmmoType       AmmoType `json:"ammo_type,omitempty" validate:"omitempty,oneof=pistol shotgun rifle explosive"`
	MaxAmmo        int      `json:"max_ammo,omitempty" validate:"min=0"`
	StartingAmmo   int      `json:"starting_ammo,omitempty" validate:"min=0,ltefield=MaxAmmo"`
	ShotsPerAttack int      `json:"shots_per_attack,omitempty" validate:"min=0"`

	ArmorValue int `json:"armor_value,omitempty" validate:"min=0"`

	Restore Restore `json:"restore"`
}

// IsWeapon reports whether the definition is a weapon
func (d *ItemDefinition) IsWeapon() bool { return d.Category == CategoryWeapon }

// IsArmor reports whether the definition is armor
func (d *ItemDefinition) IsArmor() bool { return d.Category == CategoryArmor }

// IsAmmo reports whether the definition is ammunition
func (d *ItemDefinition) IsAmmo() bool { return d.Category == CategoryAmmo }

// UsesAmmo reports whether the weapon draws from an ammo category. Melee weapons do not.
func (d *ItemDefinition) UsesAmmo() bool {
	return d.IsWeapon() && d.AmmoType != AmmoTypeNone
}

// Shots returns the number of shots fired per attack, at least one
func (d *ItemDefinition) Shots() int {
	if d.ShotsPerAttack < 1 {
		return 1
	}
	return d.ShotsPerAttack
}

// StackKey identifies which ledger stacks an instance may merge into.
// Ammo carries its category so distinct ammo names never merge.
type StackKey struct {
	Key  string
	Ammo AmmoType
}

// ItemInstance is a mutable runtime copy of a definition. It is owned by exactly
// one container at a time: a ledger stack or an equipment slot.
type ItemInstance struct {
	ID         uuid.UUID       `json:"id"`
	Def        *ItemDefinition `json:"-"`
	Durability float64         `json:"durability"`
	Ammo       int             `json:"ammo"`
}

// NewItemInstance creates a fresh instance at full durability with the definition's starting ammo
func NewItemInstance(def *ItemDefinition) *ItemInstance {
	inst := &ItemInstance{
		ID:   uuid.New(),
		Def:  def,
		Ammo: def.StartingAmmo,
	}
	if def.HasDurability {
		inst.Durability = def.MaxDurability
	}
	return inst
}

// Key returns the definition key
func (i *ItemInstance) Key() string { return i.Def.Key }

// Name returns the display name
func (i *ItemInstance) Name() string { return i.Def.Name }

// StackKey returns the merge key for ledger stacking
func (i *ItemInstance) StackKey() StackKey {
	if i.Def.IsAmmo() {
		return StackKey{Key: i.Def.Key, Ammo: i.Def.AmmoType}
	}
	return StackKey{Key: i.Def.Key}
}

// Clone returns a copy with a new identity
func (i *ItemInstance) Clone() *ItemInstance {
	c := *i
	c.ID = uuid.New()
	return &c
}

// DurabilityPercent returns current durability as a percentage of max.
// Items without durability are always at 100.
func (i *ItemInstance) DurabilityPercent() float64 {
	if !i.Def.HasDurability || i.Def.MaxDurability <= 0 {
		return 100
	}
	return i.Durability / i.Def.MaxDurability * 100
}

// JamChance returns the probability in [0,1] that an attack with this weapon jams
func (i *ItemInstance) JamChance() float64 {
	if !i.Def.HasDurability {
		return 0
	}
	p := i.DurabilityPercent()
	switch {
	case p <= 0:
		return JamChanceBroken
	case p <= 25:
		return JamChanceCritical
	case p <= 50:
		return JamChanceWorn
	case p <= 80:
		return JamChanceUsed
	default:
		return 0
	}
}

// RepairCost returns the price of restoring the instance to max durability
func (i *ItemInstance) RepairCost() int {
	p := i.DurabilityPercent()
	switch {
	case p >= 80:
		return RepairCostMinor
	case p >= 50:
		return RepairCostModerate
	case p >= 25:
		return RepairCostMajor
	default:
		return RepairCostSevere
	}
}

// IsRepairable reports whether the instance is a weapon or armor with durability
func (i *ItemInstance) IsRepairable() bool {
	return i.Def.HasDurability && (i.Def.IsWeapon() || i.Def.IsArmor())
}

// NeedsRepair reports whether the instance is below max durability
func (i *ItemInstance) NeedsRepair() bool {
	return i.IsRepairable() && i.Durability < i.Def.MaxDurability
}

// Repair restores max durability
func (i *ItemInstance) Repair() {
	if i.Def.HasDurability {
		i.Durability = i.Def.MaxDurability
	}
}

// Wear removes a uniform [1,3) amount of durability and returns the loss.
// Items without durability are unaffected.
func (i *ItemInstance) Wear(r utils.Random) float64 {
	if !i.Def.HasDurability {
		return 0
	}
	loss := utils.RandomRange(r, WearMin, WearMax)
	before := i.Durability
	i.Durability = utils.ClampFloat(i.Durability-loss, 0, i.Def.MaxDurability)
	return before - i.Durability
}

// IsEmpty reports whether an ammo-fed weapon has no rounds loaded
func (i *ItemInstance) IsEmpty() bool {
	return i.Def.UsesAmmo() && i.Ammo <= 0
}

// MissingAmmo returns how many rounds are needed to fill the weapon
func (i *ItemInstance) MissingAmmo() int {
	if !i.Def.UsesAmmo() {
		return 0
	}
	return max(i.Def.MaxAmmo-i.Ammo, 0)
}

// RollDamage returns one damage roll in [MinDamage, MaxDamage]
func (i *ItemInstance) RollDamage(r utils.Random) int {
	return utils.RandomInt(r, i.Def.MinDamage, i.Def.MaxDamage)
}

// Item rule constants
const (
	JamChanceBroken   = 1.0
	JamChanceCritical = 0.5
	JamChanceWorn     = 0.15
	JamChanceUsed     = 0.05

	RepairCostMinor    = 800
	RepairCostModerate = 1500
	RepairCostMajor    = 5000
	RepairCostSevere   = 10000

	WearMin = 1.0
	WearMax = 3.0
)
