package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/domain"
)

// MockAnalyticsRepo is a mock implementation of port.AnalyticsRepository.
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockAnalyticsRepo) InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTrend), args.Error(1)
}

func (m *MockAnalyticsRepo) CategorySpend(ctx context.Context) ([]domain.CategorySpend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}

func (m *MockAnalyticsRepo) CashOutflow(ctx context.Context, months int) ([]domain.MonthlyOutflow, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyOutflow), args.Error(1)
}

func (m *MockAnalyticsRepo) TopVendors(ctx context.Context, limit int) ([]domain.VendorSpend, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorSpend), args.Error(1)
}
