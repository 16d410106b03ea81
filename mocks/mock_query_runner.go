package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockQueryRunner is a mock implementation of port.QueryRunner.
type MockQueryRunner struct {
	mock.Mock
}

func (m *MockQueryRunner) RunSelect(ctx context.Context, query string) ([]map[string]interface{}, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]interface{}), args.Error(1)
}
