package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spendlens/internal/domain"
)

// MockAnalyticsService is a mock implementation of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockAnalyticsService) InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTrend), args.Error(1)
}

func (m *MockAnalyticsService) CategorySpend(ctx context.Context) ([]domain.CategorySpend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}

func (m *MockAnalyticsService) CashOutflow(ctx context.Context, months int) ([]domain.MonthlyOutflow, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyOutflow), args.Error(1)
}

func (m *MockAnalyticsService) TopVendors(ctx context.Context, limit int) ([]domain.VendorSpend, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorSpend), args.Error(1)
}
