package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/port"
)

// MockSQLGenerator is a mock implementation of port.SQLGenerator.
type MockSQLGenerator struct {
	mock.Mock
}

func (m *MockSQLGenerator) Generate(ctx context.Context, question string) (*port.GenerateOutput, error) {
	args := m.Called(ctx, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.GenerateOutput), args.Error(1)
}
