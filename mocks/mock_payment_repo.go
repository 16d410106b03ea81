package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/domain"
)

// MockPaymentRepo is a mock implementation of port.PaymentRepository.
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
