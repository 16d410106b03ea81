package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/domain"
	"spendlens/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceRow, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.InvoiceRow), args.Int(1), args.Error(2)
}

func (m *MockInvoiceService) Export(ctx context.Context, filter domain.InvoiceFilter, format string) (*service.ExportResult, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
