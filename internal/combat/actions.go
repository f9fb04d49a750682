package combat

import (
	"fmt"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/utils"
)

// attack fires the weapon in slot. A jam costs the energy and the turn; an empty
// magazine costs nothing. Bursts fire up to ShotsPerAttack rounds, limited by
// what is loaded, and wear the weapon once.
func (r *Resolver) attack(slot domain.Slot) error {
	if !slot.IsWeapon() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}
	weapon := r.slots.Get(slot)
	if weapon == nil {
		return fmt.Errorf("%w: %s", domain.ErrNoWeaponEquipped, slot)
	}
	cost := r.settings.AttackEnergy(slot)
	if r.vitals.Energy() < cost {
		return fmt.Errorf("%w: attack needs %d, have %d", domain.ErrNotEnoughEnergy, cost, r.vitals.Energy())
	}

	if weapon.Def.HasDurability && r.rng.Float64() < weapon.JamChance() {
		r.vitals.ChangeEnergy(-cost)
		r.session.stats.Jams++
		r.emit(domain.LogEvent{
			Kind:    domain.LogWeaponJammed,
			Slot:    slot,
			ItemKey: weapon.Key(),
			Health:  r.session.enemyHealth,
		})
		r.state = domain.CombatEnemyTurn
		return nil
	}

	if weapon.IsEmpty() {
		return fmt.Errorf("%w: %s", domain.ErrWeaponEmpty, weapon.Key())
	}

	shots := weapon.Def.Shots()
	if weapon.Def.UsesAmmo() {
		shots = min(shots, weapon.Ammo)
		weapon.Ammo -= shots
	}
	damage := 0
	for i := 0; i < shots; i++ {
		damage += weapon.RollDamage(r.rng)
	}
	weapon.Wear(r.rng)

	r.session.enemyHealth = max(r.session.enemyHealth-damage, 0)
	r.vitals.ChangeEnergy(-cost)
	r.session.stats.DamageDealt += damage
	r.session.stats.ShotsFired += shots
	r.emit(domain.LogEvent{
		Kind:    domain.LogPlayerAttack,
		Slot:    slot,
		ItemKey: weapon.Key(),
		Amount:  damage,
		Shots:   shots,
		Health:  r.session.enemyHealth,
	})

	if r.session.enemyHealth <= 0 {
		return r.victory()
	}
	r.state = domain.CombatEnemyTurn
	return nil
}

// reload spends energy and advances the turn whether or not any ammo moved
func (r *Resolver) reload() error {
	cost := r.settings.ReloadEnergy
	if r.vitals.Energy() < cost {
		return fmt.Errorf("%w: reload needs %d, have %d", domain.ErrNotEnoughEnergy, cost, r.vitals.Energy())
	}
	r.vitals.ChangeEnergy(-cost)

	result := r.reloader.ReloadAll()
	if !result.Any() {
		r.emit(domain.LogEvent{Kind: domain.LogReloadFailed, Health: r.session.enemyHealth})
	}
	if result.Primary {
		r.emitReloaded(domain.SlotPrimary)
	}
	if result.Secondary {
		r.emitReloaded(domain.SlotSecondary)
	}
	r.state = domain.CombatEnemyTurn
	return nil
}

func (r *Resolver) emitReloaded(slot domain.Slot) {
	e := domain.LogEvent{Kind: domain.LogReloaded, Slot: slot, Health: r.session.enemyHealth}
	if weapon := r.slots.Get(slot); weapon != nil {
		e.ItemKey = weapon.Key()
		e.Amount = weapon.Ammo
	}
	r.emit(e)
}

func (r *Resolver) takeCover() {
	r.vitals.ChangeEnergy(r.settings.CoverEnergy)
	r.emit(domain.LogEvent{Kind: domain.LogTookCover, Amount: r.settings.CoverEnergy, Health: r.session.enemyHealth})
	r.state = domain.CombatEnemyTurn
}

func (r *Resolver) escape() {
	if r.rng.Intn(100) < r.settings.EscapeChance {
		r.emit(domain.LogEvent{Kind: domain.LogEscapeSucceeded, Health: r.session.enemyHealth})
		r.state = domain.CombatEscaped
		return
	}
	r.emit(domain.LogEvent{Kind: domain.LogEscapeFailed, Health: r.session.enemyHealth})
	r.state = domain.CombatEnemyTurn
}

// enemyTurn either misses or hits. Every hit wears all equipped armor.
func (r *Resolver) enemyTurn() {
	if r.rng.Intn(100) < r.settings.EnemyMissChance {
		r.emit(domain.LogEvent{Kind: domain.LogEnemyMissed, Health: r.vitals.Health()})
		r.state = domain.CombatPlayerTurn
		return
	}

	arch := r.session.archetype
	damage := utils.RandomInt(r.rng, arch.MinDamage, arch.MaxDamage)
	for _, piece := range r.slots.Armor() {
		piece.Wear(r.rng)
	}
	r.vitals.TakeDamage(damage)
	r.session.stats.DamageTaken += damage
	r.emit(domain.LogEvent{Kind: domain.LogEnemyHit, Amount: damage, Health: r.vitals.Health()})

	if !r.vitals.IsAlive() {
		r.defeat()
		return
	}
	r.state = domain.CombatPlayerTurn
}

func (r *Resolver) victory() error {
	r.state = domain.CombatVictory
	r.emit(domain.LogEvent{Kind: domain.LogEnemyDefeated, Health: 0})

	drops, err := r.looter.Roll(r.session.archetype.Loot, r.ledger)
	for _, d := range drops {
		r.emit(domain.LogEvent{Kind: domain.LogLootDropped, ItemKey: d.ItemKey, Amount: d.Added})
		if lost := d.Lost(); lost > 0 {
			r.emit(domain.LogEvent{Kind: domain.LogLootLost, ItemKey: d.ItemKey, Amount: lost})
		}
	}
	r.drops = drops
	if err != nil {
		return fmt.Errorf("rolling loot for %s: %w", r.session.archetype.ID, err)
	}
	return nil
}

// defeat wipes the ledger and every slot
func (r *Resolver) defeat() {
	r.state = domain.CombatDefeat
	r.emit(domain.LogEvent{Kind: domain.LogPlayerDefeated, Health: 0})
	r.ledger.Clear()
	r.slots.Clear()
	r.emit(domain.LogEvent{Kind: domain.LogInventoryWiped})
}
