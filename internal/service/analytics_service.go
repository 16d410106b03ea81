package service

import (
	"context"

	"spendlens/internal/domain"
	"spendlens/internal/port"
)

// Defaults for the forecast and ranking queries.
const (
	defaultOutflowMonths = 6
	defaultTopVendors    = 10
	maxTopVendors        = 100
)

// AnalyticsService provides the dashboard aggregates.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	CategorySpend(ctx context.Context) ([]domain.CategorySpend, error)
	CashOutflow(ctx context.Context, months int) ([]domain.MonthlyOutflow, error)
	TopVendors(ctx context.Context, limit int) ([]domain.VendorSpend, error)
}

type analyticsService struct {
	analyticsRepo port.AnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService implementation.
func NewAnalyticsService(analyticsRepo port.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.analyticsRepo.DashboardStats(ctx)
}

func (s *analyticsService) InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	return s.analyticsRepo.InvoiceTrends(ctx)
}

func (s *analyticsService) CategorySpend(ctx context.Context) ([]domain.CategorySpend, error) {
	return s.analyticsRepo.CategorySpend(ctx)
}

func (s *analyticsService) CashOutflow(ctx context.Context, months int) ([]domain.MonthlyOutflow, error) {
	if months <= 0 || months > 24 {
		months = defaultOutflowMonths
	}
	return s.analyticsRepo.CashOutflow(ctx, months)
}

func (s *analyticsService) TopVendors(ctx context.Context, limit int) ([]domain.VendorSpend, error) {
	if limit <= 0 || limit > maxTopVendors {
		limit = defaultTopVendors
	}
	return s.analyticsRepo.TopVendors(ctx, limit)
}
