package port

import (
	"context"

	"spendlens/internal/domain"
)

// AnalyticsRepository provides the aggregate queries behind the dashboard.
type AnalyticsRepository interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	CategorySpend(ctx context.Context) ([]domain.CategorySpend, error)
	CashOutflow(ctx context.Context, months int) ([]domain.MonthlyOutflow, error)
	TopVendors(ctx context.Context, limit int) ([]domain.VendorSpend, error)
}

// QueryRunner executes ad-hoc read-only SQL and returns generic rows.
// Implementations must refuse anything that is not a single SELECT.
type QueryRunner interface {
	RunSelect(ctx context.Context, query string) ([]map[string]interface{}, error)
}
