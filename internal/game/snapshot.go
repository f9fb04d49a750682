package game

import (
	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/combat"
	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/reload"
	"github.com/osse101/Hodka_Go/internal/vitals"
)

// ItemView is a read-only copy of an item instance
type ItemView struct {
	ID                uuid.UUID       `json:"id"`
	Key               string          `json:"key"`
	Name              string          `json:"name"`
	Category          domain.Category `json:"category"`
	Durability        float64         `json:"durability"`
	DurabilityPercent float64         `json:"durability_percent"`
	Ammo              int             `json:"ammo"`
	NeedsRepair       bool            `json:"needs_repair"`
}

// StackView is one ledger entry
type StackView struct {
	Item  ItemView `json:"item"`
	Count int      `json:"count"`
}

// Snapshot is a read-only picture of the whole game
type Snapshot struct {
	Balance   int                      `json:"balance"`
	Vitals    vitals.Snapshot          `json:"vitals"`
	CanTravel bool                     `json:"can_travel"`
	Location  int                      `json:"location"`
	AtStation bool                     `json:"at_station"`
	Capacity  int                      `json:"capacity"`
	ItemCount int                      `json:"item_count"`
	Inventory []StackView              `json:"inventory"`
	Equipment map[domain.Slot]ItemView `json:"equipment"`
	Weapons   []reload.Status          `json:"weapons"`
	CanReload bool                     `json:"can_reload"`
	Combat    *combat.View             `json:"combat,omitempty"`
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Balance:   g.wallet.Balance(),
		Vitals:    g.vitals.Snapshot(),
		CanTravel: g.vitals.CanContinueJourney(),
		Location:  g.journey.Location(),
		AtStation: g.journey.AtStation(),
		Capacity:  g.ledger.Capacity(),
		ItemCount: g.ledger.TotalItems(),
		Equipment: make(map[domain.Slot]ItemView),
		Weapons:   g.reloader.Status(),
		CanReload: g.reloader.CanReloadAny(),
	}
	for _, stack := range g.ledger.Stacks() {
		snap.Inventory = append(snap.Inventory, StackView{Item: viewOf(stack.Item), Count: stack.Count})
	}
	for slot, inst := range g.slots.Equipped() {
		snap.Equipment[slot] = viewOf(inst)
	}
	if view, ok := g.resolver.Session(); ok {
		snap.Combat = &view
	}
	return snap
}

func viewOf(inst *domain.ItemInstance) ItemView {
	return ItemView{
		ID:                inst.ID,
		Key:               inst.Key(),
		Name:              inst.Name(),
		Category:          inst.Def.Category,
		Durability:        inst.Durability,
		DurabilityPercent: inst.DurabilityPercent(),
		Ammo:              inst.Ammo,
		NeedsRepair:       inst.NeedsRepair(),
	}
}
