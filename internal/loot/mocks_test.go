package loot

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Hodka_Go/internal/domain"
)

// MockItemSource is a mock implementation of ItemSource
type MockItemSource struct {
	mock.Mock
}

func (m *MockItemSource) NewInstance(key string) (*domain.ItemInstance, error) {
	args := m.Called(key)
	if fn, ok := args.Get(0).(func(string) *domain.ItemInstance); ok {
		return fn(key), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemInstance), args.Error(1)
}
