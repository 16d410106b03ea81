package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"spendlens/internal/domain"
	"spendlens/internal/port"
)

type analyticsRepo struct {
	db *sqlx.DB
}

// NewAnalyticsRepo creates a new PostgreSQL-backed AnalyticsRepository.
func NewAnalyticsRepo(db *sqlx.DB) port.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

const dashboardStatsQuery = `SELECT
	COALESCE(SUM(CASE WHEN issue_date >= date_trunc('year', now()) THEN total_amount END), 0) AS total_spend,
	COUNT(*) AS total_invoices,
	COALESCE(AVG(total_amount), 0) AS avg_invoice_value
FROM invoices`

func (r *analyticsRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.db.GetContext(ctx, &stats, dashboardStatsQuery); err != nil {
		return nil, fmt.Errorf("analyticsRepo.DashboardStats: %w", err)
	}
	// Every invoice originates from exactly one ingested document.
	stats.DocumentsUploaded = stats.TotalInvoices
	return &stats, nil
}

const invoiceTrendsQuery = `SELECT
	to_char(issue_date, 'YYYY-MM') AS month,
	COUNT(*) AS count,
	COALESCE(SUM(total_amount), 0) AS total_amount
FROM invoices
GROUP BY 1
ORDER BY 1`

func (r *analyticsRepo) InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	var trends []domain.MonthlyTrend
	if err := r.db.SelectContext(ctx, &trends, invoiceTrendsQuery); err != nil {
		return nil, fmt.Errorf("analyticsRepo.InvoiceTrends: %w", err)
	}
	return trends, nil
}

const categorySpendQuery = `SELECT
	category,
	COALESCE(SUM(total_amount), 0) AS total_spend
FROM invoices
WHERE category <> ''
GROUP BY category
ORDER BY total_spend DESC`

func (r *analyticsRepo) CategorySpend(ctx context.Context) ([]domain.CategorySpend, error) {
	var spend []domain.CategorySpend
	if err := r.db.SelectContext(ctx, &spend, categorySpendQuery); err != nil {
		return nil, fmt.Errorf("analyticsRepo.CategorySpend: %w", err)
	}
	return spend, nil
}

const cashOutflowQuery = `SELECT
	to_char(due_date, 'YYYY-MM') AS month,
	COALESCE(SUM(total_amount), 0) AS amount
FROM invoices
WHERE status IN ('pending', 'overdue')
	AND due_date >= now()
	AND due_date <= now() + make_interval(months => $1)
GROUP BY 1
ORDER BY 1`

func (r *analyticsRepo) CashOutflow(ctx context.Context, months int) ([]domain.MonthlyOutflow, error) {
	var outflow []domain.MonthlyOutflow
	if err := r.db.SelectContext(ctx, &outflow, cashOutflowQuery, months); err != nil {
		return nil, fmt.Errorf("analyticsRepo.CashOutflow: %w", err)
	}
	return outflow, nil
}

const topVendorsQuery = `SELECT
	v.name,
	COALESCE(SUM(i.total_amount), 0) AS total_spend
FROM invoices i
JOIN vendors v ON v.id = i.vendor_id
GROUP BY v.name
ORDER BY total_spend DESC
LIMIT $1`

func (r *analyticsRepo) TopVendors(ctx context.Context, limit int) ([]domain.VendorSpend, error) {
	var vendors []domain.VendorSpend
	if err := r.db.SelectContext(ctx, &vendors, topVendorsQuery, limit); err != nil {
		return nil, fmt.Errorf("analyticsRepo.TopVendors: %w", err)
	}
	return vendors, nil
}
