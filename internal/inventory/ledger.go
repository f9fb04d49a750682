package inventory

import (
	"github.com/google/uuid"

	"github.com/osse101/Hodka_Go/internal/domain"
)

// Stack is one ledger entry: an instance and how many identical copies it stands for.
// Non-stackable items always have Count == 1.
type Stack struct {
	Item  *domain.ItemInstance
	Count int
}

// Ledger is the player's bag. Each stack occupies one slot regardless of its count.
// Operations return false instead of erroring so callers can re-check affordability.
type Ledger struct {
	capacity int
	stacks   []*Stack
}

// NewLedger creates an empty ledger with the given slot capacity
func NewLedger(capacity int) *Ledger {
	return &Ledger{capacity: capacity}
}

// Capacity returns the maximum number of stacks
func (l *Ledger) Capacity() int { return l.capacity }

// Len returns the number of occupied slots
func (l *Ledger) Len() int { return len(l.stacks) }

// IsFull reports whether no new stack can be created
func (l *Ledger) IsFull() bool { return len(l.stacks) >= l.capacity }

// Add places inst in the ledger. Stackable items merge into the first under-full
// stack with the same stack key; otherwise a new stack is created if a slot is free.
// Merging never fails on capacity.
func (l *Ledger) Add(inst *domain.ItemInstance) bool {
	if inst == nil || inst.Def == nil {
		return false
	}
	if s := l.mergeTarget(inst); s != nil {
		s.Count++
		return true
	}
	if l.IsFull() {
		return false
	}
	l.stacks = append(l.stacks, &Stack{Item: inst, Count: 1})
	return true
}

// CanAccept reports whether Add(inst) would succeed without changing the ledger
func (l *Ledger) CanAccept(inst *domain.ItemInstance) bool {
	if inst == nil || inst.Def == nil {
		return false
	}
	return l.mergeTarget(inst) != nil || !l.IsFull()
}

func (l *Ledger) mergeTarget(inst *domain.ItemInstance) *Stack {
	if !inst.Def.Stackable {
		return nil
	}
	key := inst.StackKey()
	for _, s := range l.stacks {
		if s.Item.StackKey() == key && s.Count < s.Item.Def.MaxStack {
			return s
		}
	}
	return nil
}

// Remove decrements the first stack of the definition key, deleting it at zero
func (l *Ledger) Remove(key string) bool {
	for i, s := range l.stacks {
		if s.Item.Key() == key {
			l.decrement(i)
			return true
		}
	}
	return false
}

// Find returns the instance heading the stack with id
func (l *Ledger) Find(id uuid.UUID) (*domain.ItemInstance, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.stacks[i].Item, true
	}
	return nil, false
}

// CountByID returns the count of the stack headed by id, or 0
func (l *Ledger) CountByID(id uuid.UUID) int {
	if i := l.indexOf(id); i >= 0 {
		return l.stacks[i].Count
	}
	return 0
}

// Take removes one unit of the stack with id and hands ownership to the caller.
// A multi-count stack keeps its instance and yields a copy with a fresh id.
func (l *Ledger) Take(id uuid.UUID) (*domain.ItemInstance, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return nil, false
	}
	s := l.stacks[i]
	if s.Count > 1 {
		s.Count--
		return s.Item.Clone(), true
	}
	l.stacks = append(l.stacks[:i], l.stacks[i+1:]...)
	return s.Item, true
}

// ConsumeAmmo removes amount rounds of the category across stacks in ledger order.
// Nothing is removed when the total is short.
func (l *Ledger) ConsumeAmmo(ammo domain.AmmoType, amount int) bool {
	if amount < 0 || ammo == domain.AmmoTypeNone {
		return false
	}
	if l.TotalAmmo(ammo) < amount {
		return false
	}

	remaining := amount
	kept := l.stacks[:0]
	for _, s := range l.stacks {
		if remaining > 0 && isAmmoOf(s, ammo) {
			take := min(s.Count, remaining)
			s.Count -= take
			remaining -= take
			if s.Count == 0 {
				continue
			}
		}
		kept = append(kept, s)
	}
	clear(l.stacks[len(kept):])
	l.stacks = kept
	return true
}

// CountOf sums the counts of every stack of the definition key
func (l *Ledger) CountOf(key string) int {
	total := 0
	for _, s := range l.stacks {
		if s.Item.Key() == key {
			total += s.Count
		}
	}
	return total
}

// TotalAmmo sums the rounds of the category across all ammo stacks
func (l *Ledger) TotalAmmo(ammo domain.AmmoType) int {
	total := 0
	for _, s := range l.stacks {
		if isAmmoOf(s, ammo) {
			total += s.Count
		}
	}
	return total
}

// Clear empties the ledger
func (l *Ledger) Clear() {
	l.stacks = nil
}

// Stacks returns a copy of the ledger entries in order
func (l *Ledger) Stacks() []Stack {
	out := make([]Stack, len(l.stacks))
	for i, s := range l.stacks {
		out[i] = *s
	}
	return out
}

// TotalItems sums the counts of every stack
func (l *Ledger) TotalItems() int {
	total := 0
	for _, s := range l.stacks {
		total += s.Count
	}
	return total
}

func (l *Ledger) indexOf(id uuid.UUID) int {
	for i, s := range l.stacks {
		if s.Item.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) decrement(i int) {
	l.stacks[i].Count--
	if l.stacks[i].Count <= 0 {
		l.stacks = append(l.stacks[:i], l.stacks[i+1:]...)
	}
}

func isAmmoOf(s *Stack, ammo domain.AmmoType) bool {
	return s.Item.Def.IsAmmo() && s.Item.Def.AmmoType == ammo
}
