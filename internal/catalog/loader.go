package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/utils"
	"github.com/osse101/Hodka_Go/internal/validation"
)

//go:embed data/catalog.json data/catalog.schema.json
var embedded embed.FS

// Config represents the JSON catalog document
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items           []domain.ItemDefinition `json:"items" validate:"required,min=1,dive"`
	Archetypes      []domain.Archetype      `json:"archetypes" validate:"required,min=1,dive"`
	TraderStock     []string                `json:"trader_stock"`
	JourneyLoot     []string                `json:"journey_loot"`
	StartingLoadout []LoadoutEntry          `json:"starting_loadout" validate:"dive"`
}

// LoadoutEntry is one line of the starting kit
type LoadoutEntry struct {
	ItemKey  string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
	Equip    bool   `json:"equip,omitempty"`
}

// Loader handles loading and validating catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	LoadBytes(data []byte) (*Config, error)
	Validate(cfg *Config) error
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader that checks documents against the bundled schema
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(embedded),
		validate:        validator.New(),
	}
}

// Load checks a catalog JSON file on disk against the schema and parses it
func (l *catalogLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	if err := l.schemaValidator.ValidateFile(path, SchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, path, err)
	}

	var cfg Config
	if err := utils.LoadJSON(path, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	return &cfg, nil
}

// LoadBytes validates data against the schema and parses it
func (l *catalogLoader) LoadBytes(data []byte) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return &cfg, nil
}

// Validate checks the cross-references and item rules the schema cannot express
func (l *catalogLoader) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf(ErrFmtCatalogNil, domain.ErrInvalidCatalog)
	}

	if err := l.validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf(ErrFmtStructInvalid, domain.ErrInvalidCatalog,
				fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf(ErrFmtStructInvalid, domain.ErrInvalidCatalog, err.Error())
	}

	items := make(map[string]*domain.ItemDefinition, len(cfg.Items))
	for i := range cfg.Items {
		def := &cfg.Items[i]
		if _, dup := items[def.Key]; dup {
			return fmt.Errorf(ErrFmtDuplicateItem, domain.ErrInvalidCatalog, def.Key)
		}
		items[def.Key] = def

		if err := validateItemDef(def); err != nil {
			return err
		}
	}

	archetypes := make(map[string]bool, len(cfg.Archetypes))
	for _, a := range cfg.Archetypes {
		if archetypes[a.ID] {
			return fmt.Errorf(ErrFmtDuplicateArchetype, domain.ErrInvalidCatalog, a.ID)
		}
		archetypes[a.ID] = true

		for _, entry := range a.Loot {
			if items[entry.ItemKey] == nil {
				return fmt.Errorf(ErrFmtUnknownReference, domain.ErrInvalidCatalog, "archetype "+a.ID, entry.ItemKey)
			}
		}
	}

	for _, key := range cfg.TraderStock {
		if items[key] == nil {
			return fmt.Errorf(ErrFmtUnknownReference, domain.ErrInvalidCatalog, "trader_stock", key)
		}
	}
	for _, key := range cfg.JourneyLoot {
		if items[key] == nil {
			return fmt.Errorf(ErrFmtUnknownReference, domain.ErrInvalidCatalog, "journey_loot", key)
		}
	}
	for _, entry := range cfg.StartingLoadout {
		def := items[entry.ItemKey]
		if def == nil {
			return fmt.Errorf(ErrFmtUnknownReference, domain.ErrInvalidCatalog, "starting_loadout", entry.ItemKey)
		}
		if _, ok := domain.SlotFor(def); entry.Equip && !ok {
			return fmt.Errorf(ErrFmtLoadoutNotEquip, domain.ErrInvalidCatalog, entry.ItemKey)
		}
	}

	return nil
}

func validateItemDef(def *domain.ItemDefinition) error {
	if def.Stackable && def.MaxStack < 2 {
		return fmt.Errorf(ErrFmtStackableMaxStack, domain.ErrInvalidCatalog, def.Key, def.MaxStack)
	}
	if !def.Stackable && def.MaxStack != 1 {
		return fmt.Errorf(ErrFmtUnstackableMaxStack, domain.ErrInvalidCatalog, def.Key, def.MaxStack)
	}
	if def.HasDurability && def.MaxDurability <= 0 {
		return fmt.Errorf(ErrFmtDurabilityMax, domain.ErrInvalidCatalog, def.Key)
	}

	switch def.Category {
	case domain.CategoryWeapon, domain.CategoryArmor:
		if def.Stackable {
			return fmt.Errorf(ErrFmtEquipmentStackable, domain.ErrInvalidCatalog, def.Key)
		}
		if _, ok := domain.SlotFor(def); !ok {
			return fmt.Errorf(ErrFmtBadSlotRouting, domain.ErrInvalidCatalog, def.Key)
		}
		if def.UsesAmmo() && def.MaxAmmo < 1 {
			return fmt.Errorf(ErrFmtWeaponNoMagazine, domain.ErrInvalidCatalog, def.Key)
		}
	case domain.CategoryAmmo:
		if def.AmmoType == domain.AmmoTypeNone {
			return fmt.Errorf(ErrFmtAmmoWithoutType, domain.ErrInvalidCatalog, def.Key)
		}
		if !def.Stackable {
			return fmt.Errorf(ErrFmtAmmoNotStackable, domain.ErrInvalidCatalog, def.Key)
		}
	}

	return nil
}
