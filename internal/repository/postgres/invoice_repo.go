package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"spendlens/internal/domain"
	"spendlens/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	invoice.ID = uuid.New()
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	query := `INSERT INTO invoices (id, invoice_number, vendor_id, customer_id, issue_date,
		due_date, total_amount, status, category, description, tax_amount, subtotal,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.InvoiceNumber, invoice.VendorID, invoice.CustomerID,
		invoice.IssueDate, invoice.DueDate, invoice.TotalAmount, invoice.Status,
		invoice.Category, invoice.Description, invoice.TaxAmount, invoice.Subtotal,
		invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceRow, int, error) {
	where := []string{"1=1"}
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf(
			"(i.invoice_number ILIKE $%d OR v.name ILIKE $%d)", len(args), len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("i.status = $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(
		`SELECT COUNT(*) FROM invoices i JOIN vendors v ON v.id = i.vendor_id WHERE %s`,
		whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	listQuery := fmt.Sprintf(
		`SELECT i.id, i.invoice_number, v.name AS vendor, i.issue_date, i.due_date,
			i.total_amount AS amount, i.status, i.category
		FROM invoices i
		JOIN vendors v ON v.id = i.vendor_id
		WHERE %s
		ORDER BY i.issue_date DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, len(args)-1, len(args))

	var rows []domain.InvoiceRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return rows, total, nil
}

func (r *invoiceRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM invoices"); err != nil {
		return fmt.Errorf("invoiceRepo.DeleteAll: %w", err)
	}
	return nil
}
