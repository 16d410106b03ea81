package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/domain"
)

// MockInvoiceRepo is a mock implementation of port.InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepo) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceRow, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.InvoiceRow), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
