package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/osse101/Hodka_Go/internal/domain"
)

// Catalog is the read-only index of item definitions, enemy archetypes and
// trader stock. It is safe for concurrent use once built.
type Catalog struct {
	version    string
	items      map[string]*domain.ItemDefinition
	itemOrder  []string
	names      map[string]string // folded key or display name -> key
	archetypes map[string]*domain.Archetype
	archOrder  []string
	stock      []string
	inStock    map[string]bool
	journey    []string
	loadout    []LoadoutEntry
}

// LoadDefault builds the catalog bundled with the binary
func LoadDefault() (*Catalog, error) {
	data, err := embedded.ReadFile(CatalogPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	cfg, err := NewLoader().LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// LoadFile builds a catalog from a JSON file on disk
func LoadFile(path string) (*Catalog, error) {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New validates cfg and indexes it
func New(cfg *Config) (*Catalog, error) {
	if err := NewLoader().Validate(cfg); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:    cfg.Version,
		items:      make(map[string]*domain.ItemDefinition, len(cfg.Items)),
		names:      make(map[string]string, len(cfg.Items)*2),
		archetypes: make(map[string]*domain.Archetype, len(cfg.Archetypes)),
		inStock:    make(map[string]bool, len(cfg.TraderStock)),
		stock:      append([]string(nil), cfg.TraderStock...),
		journey:    append([]string(nil), cfg.JourneyLoot...),
		loadout:    append([]LoadoutEntry(nil), cfg.StartingLoadout...),
	}

	for i := range cfg.Items {
		def := cfg.Items[i]
		c.items[def.Key] = &def
		c.itemOrder = append(c.itemOrder, def.Key)
		c.names[fold(def.Key)] = def.Key
		if _, taken := c.names[fold(def.Name)]; !taken {
			c.names[fold(def.Name)] = def.Key
		}
	}
	for i := range cfg.Archetypes {
		a := cfg.Archetypes[i]
		a.Loot = append([]domain.LootEntry(nil), a.Loot...)
		c.archetypes[a.ID] = &a
		c.archOrder = append(c.archOrder, a.ID)
	}
	for _, key := range cfg.TraderStock {
		c.inStock[key] = true
	}

	return c, nil
}

// Version returns the catalog document version
func (c *Catalog) Version() string { return c.version }

// Item returns the definition for key or display name. Unknown names wrap
// domain.ErrItemNotFound with the closest known key when one is near enough.
func (c *Catalog) Item(key string) (*domain.ItemDefinition, error) {
	if def, ok := c.Lookup(key); ok {
		return def, nil
	}
	if suggestion, ok := c.Suggest(key); ok {
		return nil, fmt.Errorf(ErrFmtItemNotFoundSuggestion, domain.ErrItemNotFound, key, suggestion)
	}
	return nil, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, key)
}

// Lookup resolves a key or display name, ignoring case
func (c *Catalog) Lookup(name string) (*domain.ItemDefinition, bool) {
	if def, ok := c.items[name]; ok {
		return def, true
	}
	key, ok := c.names[fold(name)]
	if !ok {
		return nil, false
	}
	return c.items[key], true
}

// Suggest returns the item key whose key or name is closest to name by edit distance
func (c *Catalog) Suggest(name string) (string, bool) {
	needle := fold(name)
	if len(needle) < 3 {
		return "", false
	}

	best, bestDist := "", -1
	for _, candidate := range sortedKeys(c.names) {
		dist := levenshtein.ComputeDistance(needle, candidate)
		if dist > suggestionLimit(len(candidate)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c.names[candidate], dist
		}
	}
	return best, bestDist >= 0
}

// NewInstance creates a fresh instance of key
func (c *Catalog) NewInstance(key string) (*domain.ItemInstance, error) {
	def, err := c.Item(key)
	if err != nil {
		return nil, err
	}
	return domain.NewItemInstance(def), nil
}

// Items returns every definition in catalog order
func (c *Catalog) Items() []*domain.ItemDefinition {
	out := make([]*domain.ItemDefinition, 0, len(c.itemOrder))
	for _, key := range c.itemOrder {
		out = append(out, c.items[key])
	}
	return out
}

// Archetype returns the enemy definition for id
func (c *Catalog) Archetype(id string) (*domain.Archetype, error) {
	a, ok := c.archetypes[id]
	if !ok {
		return nil, fmt.Errorf(ErrFmtArchetypeNotFound, domain.ErrUnknownArchetype, id)
	}
	return a, nil
}

// ArchetypeIDs returns every archetype id in catalog order
func (c *Catalog) ArchetypeIDs() []string {
	return append([]string(nil), c.archOrder...)
}

// TraderStock returns the definitions the trader sells
func (c *Catalog) TraderStock() []*domain.ItemDefinition {
	out := make([]*domain.ItemDefinition, 0, len(c.stock))
	for _, key := range c.stock {
		out = append(out, c.items[key])
	}
	return out
}

// InStock reports whether the trader sells key
func (c *Catalog) InStock(key string) bool {
	return c.inStock[key]
}

// JourneyLoot returns the keys that can be found while travelling
func (c *Catalog) JourneyLoot() []string {
	return append([]string(nil), c.journey...)
}

// StartingLoadout returns the kit a new player receives
func (c *Catalog) StartingLoadout() []LoadoutEntry {
	return append([]LoadoutEntry(nil), c.loadout...)
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
