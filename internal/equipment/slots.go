package equipment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/inventory"
)

// ArmorObserver is told the new armor total whenever an armor slot changes
type ArmorObserver interface {
	ApplyArmor(total int)
}

// Slots holds the five equipment positions. An instance in a slot is never in
// the ledger at the same time; every transfer moves ownership.
type Slots struct {
	ledger   *inventory.Ledger
	observer ArmorObserver
	items    map[domain.Slot]*domain.ItemInstance
}

// New creates empty slots backed by ledger. observer may be nil.
func New(ledger *inventory.Ledger, observer ArmorObserver) *Slots {
	return &Slots{
		ledger:   ledger,
		observer: observer,
		items:    make(map[domain.Slot]*domain.ItemInstance, len(domain.AllSlots)),
	}
}

// Equip moves the ledger item with id into its slot. A previous occupant goes
// back to the ledger first; if it cannot, nothing changes.
func (s *Slots) Equip(id uuid.UUID) (domain.Slot, error) {
	inst, ok := s.ledger.Find(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	slot, ok := domain.SlotFor(inst.Def)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotEquippable, inst.Key())
	}

	occupant := s.items[slot]
	// taking the last unit of a stack frees a slot for the occupant
	if occupant != nil && s.ledger.CountByID(id) > 1 && !s.ledger.CanAccept(occupant) {
		return "", fmt.Errorf("%w: cannot return %s", domain.ErrInventoryFull, occupant.Key())
	}

	taken, _ := s.ledger.Take(id)
	if occupant != nil && !s.ledger.Add(occupant) {
		if !s.ledger.Add(taken) {
			return "", fmt.Errorf("%w: cannot return %s or restore %s", domain.ErrInventoryFull, occupant.Key(), taken.Key())
		}
		return "", fmt.Errorf("%w: cannot return %s", domain.ErrInventoryFull, occupant.Key())
	}

	s.place(slot, taken)
	return slot, nil
}

// EquipNew equips an instance that is not yet owned by the ledger, such as a
// starting item. The previous occupant goes to the ledger.
func (s *Slots) EquipNew(inst *domain.ItemInstance) (domain.Slot, error) {
	slot, ok := domain.SlotFor(inst.Def)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotEquippable, inst.Key())
	}
	if occupant := s.items[slot]; occupant != nil {
		if !s.ledger.Add(occupant) {
			return "", fmt.Errorf("%w: cannot return %s", domain.ErrInventoryFull, occupant.Key())
		}
	}

	s.place(slot, inst)
	return slot, nil
}

// Unequip moves the slot's instance back to the ledger. A full ledger leaves it equipped.
func (s *Slots) Unequip(slot domain.Slot) (*domain.ItemInstance, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}
	inst := s.items[slot]
	if inst == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotEmpty, slot)
	}
	if !s.ledger.Add(inst) {
		return nil, fmt.Errorf("%w: cannot unequip %s", domain.ErrInventoryFull, inst.Key())
	}

	s.place(slot, nil)
	return inst, nil
}

// Get returns the instance in slot, or nil
func (s *Slots) Get(slot domain.Slot) *domain.ItemInstance {
	return s.items[slot]
}

// Find returns the equipped instance with id and its slot
func (s *Slots) Find(id uuid.UUID) (*domain.ItemInstance, domain.Slot, bool) {
	for _, slot := range domain.AllSlots {
		if inst := s.items[slot]; inst != nil && inst.ID == id {
			return inst, slot, true
		}
	}
	return nil, "", false
}

// Armor returns the equipped armor pieces in slot order
func (s *Slots) Armor() []*domain.ItemInstance {
	out := make([]*domain.ItemInstance, 0, len(domain.ArmorSlots))
	for _, slot := range domain.ArmorSlots {
		if inst := s.items[slot]; inst != nil {
			out = append(out, inst)
		}
	}
	return out
}

// ArmorTotal sums the armor value of the three armor slots
func (s *Slots) ArmorTotal() int {
	total := 0
	for _, inst := range s.Armor() {
		total += inst.Def.ArmorValue
	}
	return total
}

// Clear empties all five slots without returning anything to the ledger
func (s *Slots) Clear() {
	clear(s.items)
	s.notify()
}

// IsEmpty reports whether every slot is empty
func (s *Slots) IsEmpty() bool {
	return len(s.items) == 0
}

// Equipped returns a copy of the occupied slots
func (s *Slots) Equipped() map[domain.Slot]*domain.ItemInstance {
	out := make(map[domain.Slot]*domain.ItemInstance, len(s.items))
	for slot, inst := range s.items {
		out[slot] = inst
	}
	return out
}

func (s *Slots) place(slot domain.Slot, inst *domain.ItemInstance) {
	if inst == nil {
		delete(s.items, slot)
	} else {
		s.items[slot] = inst
	}
	if slot.IsArmor() {
		s.notify()
	}
}

func (s *Slots) notify() {
	if s.observer != nil {
		s.observer.ApplyArmor(s.ArmorTotal())
	}
}
