package combat

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Hodka_Go/internal/domain"
	"github.com/osse101/Hodka_Go/internal/inventory"
	"github.com/osse101/Hodka_Go/internal/loot"
)

// MockLooter is a mock implementation of Looter
type MockLooter struct {
	mock.Mock
}

func (m *MockLooter) Roll(table []domain.LootEntry, ledger *inventory.Ledger) ([]loot.Drop, error) {
	args := m.Called(table, ledger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]loot.Drop), args.Error(1)
}
