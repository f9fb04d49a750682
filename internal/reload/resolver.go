package reload

import (
	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/equipment"
	"github.com/osse101/Hodka_Go/internal/inventory"
)

// Result reports which weapons received ammo
type Result struct {
	Primary   bool `json:"primary"`
	Secondary bool `json:"secondary"`
}

// Any reports whether at least one weapon was reloaded
func (r Result) Any() bool {
	return r.Primary || r.Secondary
}

// Status describes one weapon slot's magazine
type Status struct {
	Slot      domain.Slot     `json:"slot"`
	ItemKey   string          `json:"item_key,omitempty"`
	AmmoType  domain.AmmoType `json:"ammo_type,omitempty"`
	Current   int             `json:"current"`
	Max       int             `json:"max"`
	Available int             `json:"available"`
	CanReload bool            `json:"can_reload"`
}

// Resolver moves ammo from the ledger into equipped weapons
type Resolver struct {
	ledger *inventory.Ledger
	slots  *equipment.Slots
}

// New creates a Resolver
func New(ledger *inventory.Ledger, slots *equipment.Slots) *Resolver {
	return &Resolver{ledger: ledger, slots: slots}
}

// ReloadAll reloads primary then secondary independently
func (r *Resolver) ReloadAll() Result {
	return Result{
		Primary:   r.Reload(domain.SlotPrimary),
		Secondary: r.Reload(domain.SlotSecondary),
	}
}

// Reload tops up the weapon in slot with as many rounds as the ledger holds,
// never beyond its max. Returns false when nothing moved.
func (r *Resolver) Reload(slot domain.Slot) bool {
	weapon, required, available := r.need(slot)
	if weapon == nil || required <= 0 || available == 0 {
		return false
	}

	used := min(required, available)
	if !r.ledger.ConsumeAmmo(weapon.Def.AmmoType, used) {
		return false
	}
	weapon.Ammo += used
	return true
}

// CanReload mirrors Reload without changing anything
func (r *Resolver) CanReload(slot domain.Slot) bool {
	weapon, required, available := r.need(slot)
	return weapon != nil && required > 0 && available > 0
}

// CanReloadAny reports whether ReloadAll would move any ammo
func (r *Resolver) CanReloadAny() bool {
	return r.CanReload(domain.SlotPrimary) || r.CanReload(domain.SlotSecondary)
}

// Status returns the magazine state of both weapon slots
func (r *Resolver) Status() []Status {
	out := make([]Status, 0, len(domain.WeaponSlots))
	for _, slot := range domain.WeaponSlots {
		st := Status{Slot: slot}
		if weapon := r.slots.Get(slot); weapon != nil {
			st.ItemKey = weapon.Key()
			st.AmmoType = weapon.Def.AmmoType
			st.Current = weapon.Ammo
			st.Max = weapon.Def.MaxAmmo
			if weapon.Def.UsesAmmo() {
				st.Available = r.ledger.TotalAmmo(weapon.Def.AmmoType)
			}
			st.CanReload = r.CanReload(slot)
		}
		out = append(out, st)
	}
	return out
}

func (r *Resolver) need(slot domain.Slot) (*domain.ItemInstance, int, int) {
	weapon := r.slots.Get(slot)
	if weapon == nil || !weapon.Def.UsesAmmo() {
		return nil, 0, 0
	}
	return weapon, weapon.MissingAmmo(), r.ledger.TotalAmmo(weapon.Def.AmmoType)
}
