package combat

import (
	"fmt"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/equipment"
	"github.com/osse101/Hodka_Go/internal/inventory"
	"github.com/osse101/Hodka_Go/internal/loot"
	"github.com/osse101/Hodka_Go/internal/reload"
	"github.com/osse101/Hodka_Go/internal/utils"
	"github.com/osse101/Hodka_Go/internal/vitals"
)

// Reloader tops up equipped weapons from the ledger
type Reloader interface {
	ReloadAll() reload.Result
}

// Looter rolls a loot table into the ledger
type Looter interface {
	Roll(table []domain.LootEntry, ledger *inventory.Ledger) ([]loot.Drop, error)
}

// Deps are the collaborators a Resolver mutates
type Deps struct {
	Ledger   *inventory.Ledger
	Slots    *equipment.Slots
	Vitals   *vitals.Vitals
	Reloader Reloader
	Looter   Looter
	Rand     utils.Random
}

// Resolver is the turn-based combat state machine. It is pure logic: no logging,
// no clocks, and every roll comes from the injected random source. Pacing of the
// returned log events is up to the caller.
type Resolver struct {
	ledger   *inventory.Ledger
	slots    *equipment.Slots
	vitals   *vitals.Vitals
	reloader Reloader
	looter   Looter
	rng      utils.Random
	settings Settings

	state   domain.CombatState
	session *session
	pending []domain.LogEvent
	drops   []loot.Drop
}

// NewResolver creates an idle Resolver
func NewResolver(deps Deps, settings Settings) *Resolver {
	return &Resolver{
		ledger:   deps.Ledger,
		slots:    deps.Slots,
		vitals:   deps.Vitals,
		reloader: deps.Reloader,
		looter:   deps.Looter,
		rng:      deps.Rand,
		settings: settings,
		state:    domain.CombatIdle,
	}
}

// State returns the current state
func (r *Resolver) State() domain.CombatState {
	return r.state
}

// Session returns a view of the current session, or false when idle
func (r *Resolver) Session() (View, bool) {
	if r.session == nil {
		return View{}, false
	}
	return View{
		SessionID:      r.session.id,
		ArchetypeID:    r.session.archetype.ID,
		EnemyName:      r.session.archetype.Name,
		EnemyHealth:    r.session.enemyHealth,
		EnemyMaxHealth: r.session.archetype.MaxHealth,
		State:          r.state,
		Stats:          r.session.stats,
	}, true
}

// Start opens a session against archetype. The player moves first.
func (r *Resolver) Start(sessionID string, archetype *domain.Archetype) (*Outcome, error) {
	if r.state != domain.CombatIdle {
		return nil, fmt.Errorf("%w: session %s is %s", domain.ErrCombatActive, r.session.id, r.state)
	}
	if archetype == nil {
		return nil, domain.ErrUnknownArchetype
	}

	r.session = &session{
		id:          sessionID,
		archetype:   archetype,
		enemyHealth: archetype.MaxHealth,
	}
	r.state = domain.CombatPlayerTurn
	r.emit(domain.LogEvent{Kind: domain.LogCombatStarted, Health: r.session.enemyHealth})
	return r.flush(), nil
}

// Act resolves one player action and, if the session is still running, the
// enemy's reply. Errors leave every piece of state untouched.
//
// A victory whose loot could not be created still returns its outcome
// together with the error.
func (r *Resolver) Act(action domain.Action) (*Outcome, error) {
	if r.state != domain.CombatPlayerTurn {
		return nil, fmt.Errorf("%w: cannot %s during %s", domain.ErrInvalidState, action.Kind, r.state)
	}

	var err error
	switch action.Kind {
	case domain.ActionAttack:
		err = r.attack(action.Slot)
	case domain.ActionReload:
		err = r.reload()
	case domain.ActionTakeCover:
		r.takeCover()
	case domain.ActionEscape:
		r.escape()
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action.Kind)
	}
	if err != nil && len(r.pending) == 0 {
		return nil, err
	}

	r.session.stats.Turns++
	if r.state == domain.CombatEnemyTurn {
		r.enemyTurn()
	}
	return r.flush(), err
}

// Finish closes a terminal session and returns the resolver to idle
func (r *Resolver) Finish() (*Summary, error) {
	if !r.state.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot finish during %s", domain.ErrInvalidState, r.state)
	}
	summary := &Summary{
		SessionID:   r.session.id,
		ArchetypeID: r.session.archetype.ID,
		Outcome:     r.state,
		Stats:       r.session.stats,
		Log:         r.session.log,
	}
	r.session = nil
	r.state = domain.CombatIdle
	return summary, nil
}

func (r *Resolver) emit(e domain.LogEvent) {
	r.pending = append(r.pending, e)
	r.session.log = append(r.session.log, e)
}

func (r *Resolver) flush() *Outcome {
	out := &Outcome{
		State:       r.state,
		EnemyHealth: r.session.enemyHealth,
		Events:      r.pending,
		Drops:       r.drops,
	}
	r.pending = nil
	r.drops = nil
	return out
}
