package domain

// Slot names one of the five equipment positions
type Slot string

const (
	SlotHelmet    Slot = "helmet"
	SlotChest     Slot = "chest"
	SlotLegs      Slot = "legs"
	SlotPrimary   Slot = "primary"
	SlotSecondary Slot = "secondary"
)

// AllSlots lists every equipment slot in display order
var AllSlots = []Slot{SlotHelmet, SlotChest, SlotLegs, SlotPrimary, SlotSecondary}

// ArmorSlots lists the slots that contribute armor value
var ArmorSlots = []Slot{SlotHelmet, SlotChest, SlotLegs}

// WeaponSlots lists the slots a player can attack with
var WeaponSlots = []Slot{SlotPrimary, SlotSecondary}

// IsArmor reports whether the slot holds armor
func (s Slot) IsArmor() bool {
	return s == SlotHelmet || s == SlotChest || s == SlotLegs
}

// IsWeapon reports whether the slot holds a weapon
func (s Slot) IsWeapon() bool {
	return s == SlotPrimary || s == SlotSecondary
}

// Valid reports whether s is one of the five known slots
func (s Slot) Valid() bool {
	return s.IsArmor() || s.IsWeapon()
}

// SlotFor routes a definition to its equipment slot. Pistols go to the secondary
// slot, every other weapon type to the primary. The second return is false for
// items that cannot be equipped or carry an unrecognised subtype.
func SlotFor(def *ItemDefinition) (Slot, bool) {
	switch def.Category {
	case CategoryArmor:
		switch def.ArmorType {
		case ArmorTypeHelmet:
			return SlotHelmet, true
		case ArmorTypeChest:
			return SlotChest, true
		case ArmorTypeLegs:
			return SlotLegs, true
		}
	case CategoryWeapon:
		switch def.WeaponType {
		case WeaponTypePistol:
			return SlotSecondary, true
		case WeaponTypeAny, "":
			return SlotPrimary, true
		}
	}
	return "", false
}
