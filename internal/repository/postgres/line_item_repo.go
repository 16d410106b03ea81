package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"spendlens/internal/domain"
	"spendlens/internal/port"
)

type lineItemRepo struct {
	db *sqlx.DB
}

// NewLineItemRepo creates a new PostgreSQL-backed LineItemRepository.
func NewLineItemRepo(db *sqlx.DB) port.LineItemRepository {
	return &lineItemRepo{db: db}
}

func (r *lineItemRepo) CreateBatch(ctx context.Context, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range items {
		items[i].ID = uuid.New()
		items[i].CreatedAt = now
	}

	query := `INSERT INTO line_items (id, invoice_id, description, quantity, unit_price, amount, created_at)
		VALUES (:id, :invoice_id, :description, :quantity, :unit_price, :amount, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, items); err != nil {
		return fmt.Errorf("lineItemRepo.CreateBatch: %w", err)
	}
	return nil
}

func (r *lineItemRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM line_items"); err != nil {
		return fmt.Errorf("lineItemRepo.DeleteAll: %w", err)
	}
	return nil
}
