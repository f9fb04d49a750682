package equipment

import "github.com/stretchr/testify/mock"

// MockArmorObserver is a mock implementation of ArmorObserver
type MockArmorObserver struct {
	mock.Mock
}

func (m *MockArmorObserver) ApplyArmor(total int) {
	m.Called(total)
}
