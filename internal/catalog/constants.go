package catalog

// Embedded file paths
const (
	CatalogPath = "data/catalog.json"
	SchemaPath  = "data/catalog.schema.json"
)

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
)

// Validation error formats, used with domain.ErrInvalidCatalog
const (
	ErrFmtCatalogNil          = "%w: catalog is nil"
	ErrFmtStructInvalid       = "%w: %s"
	ErrFmtDuplicateItem       = "%w: duplicate item key '%s'"
	ErrFmtDuplicateArchetype  = "%w: duplicate archetype id '%s'"
	ErrFmtStackableMaxStack   = "%w: item '%s' is stackable but max_stack is %d"
	ErrFmtUnstackableMaxStack = "%w: item '%s' is not stackable but max_stack is %d"
	ErrFmtEquipmentStackable  = "%w: item '%s' is equipment and cannot stack"
	ErrFmtBadSlotRouting      = "%w: item '%s' has no equipment slot for its subtype"
	ErrFmtAmmoWithoutType     = "%w: ammo item '%s' has no ammo_type"
	ErrFmtAmmoNotStackable    = "%w: ammo item '%s' must be stackable"
	ErrFmtDurabilityMax       = "%w: item '%s' has durability but max_durability is 0"
	ErrFmtWeaponNoMagazine    = "%w: weapon '%s' uses ammo but max_ammo is 0"
	ErrFmtUnknownReference    = "%w: %s references unknown item '%s'"
	ErrFmtLoadoutNotEquip     = "%w: starting item '%s' is marked equip but cannot be equipped"
)

// Lookup error formats
const (
	ErrFmtItemNotFound           = "%w: %s"
	ErrFmtItemNotFoundSuggestion = "%w: %s (did you mean %q?)"
	ErrFmtArchetypeNotFound      = "%w: %s"
)
