package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/domain"
)

// MockCustomerRepo is a mock implementation of port.CustomerRepository.
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
