package mocks

import "github.com/stretchr/testify/mock"

// MockConfirmer records confirmation prompts for testing across packages.
// Pass m.Confirm wherever a filesystem.Confirmer is expected.
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm() bool {
	args := m.Called()
	return args.Bool(0)
}
