package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Combat errors
	ErrMsgInvalidState     = "action not allowed in current combat state"
	ErrMsgNoWeaponEquipped = "no weapon equipped in slot"
	ErrMsgWeaponEmpty      = "weapon is empty"
	ErrMsgNotEnoughEnergy  = "not enough energy"
	ErrMsgCombatActive     = "not allowed during combat"
	ErrMsgUnknownArchetype = "unknown enemy archetype"
	ErrMsgUnknownAction    = "unknown combat action"

	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgNotEquippable  = "item is not equippable"
	ErrMsgNotConsumable  = "item is not consumable"
	ErrMsgNotRepairable  = "item is not repairable"
	ErrMsgNoRepairNeeded = "item does not need repair"
	ErrMsgNotSold        = "item is not sold here"
	ErrMsgInvalidSlot    = "invalid equipment slot"
	ErrMsgSlotEmpty      = "equipment slot is empty"

	// Inventory errors
	ErrMsgInventoryFull = "inventory is full"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Journey errors
	ErrMsgCannotTravel = "player cannot continue the journey"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Combat errors
	ErrInvalidState     = errors.New(ErrMsgInvalidState)
	ErrNoWeaponEquipped = errors.New(ErrMsgNoWeaponEquipped)
	ErrWeaponEmpty      = errors.New(ErrMsgWeaponEmpty)
	ErrNotEnoughEnergy  = errors.New(ErrMsgNotEnoughEnergy)
	ErrCombatActive     = errors.New(ErrMsgCombatActive)
	ErrUnknownArchetype = errors.New(ErrMsgUnknownArchetype)
	ErrUnknownAction    = errors.New(ErrMsgUnknownAction)

	// Item errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrNotEquippable  = errors.New(ErrMsgNotEquippable)
	ErrNotConsumable  = errors.New(ErrMsgNotConsumable)
	ErrNotRepairable  = errors.New(ErrMsgNotRepairable)
	ErrNoRepairNeeded = errors.New(ErrMsgNoRepairNeeded)
	ErrNotSold        = errors.New(ErrMsgNotSold)
	ErrInvalidSlot    = errors.New(ErrMsgInvalidSlot)
	ErrSlotEmpty      = errors.New(ErrMsgSlotEmpty)

	// Inventory errors
	ErrInventoryFull = errors.New(ErrMsgInventoryFull)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Journey errors
	ErrCannotTravel = errors.New(ErrMsgCannotTravel)

	// Catalog errors
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
)
