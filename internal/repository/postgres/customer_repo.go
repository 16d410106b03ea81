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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	customer.ID = uuid.New()
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `INSERT INTO customers (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.Name, customer.Address, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM customers"); err != nil {
		return fmt.Errorf("customerRepo.DeleteAll: %w", err)
	}
	return nil
}
