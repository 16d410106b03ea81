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

type vendorRepo struct {
	db *sqlx.DB
}

// NewVendorRepo creates a new PostgreSQL-backed VendorRepository.
func NewVendorRepo(db *sqlx.DB) port.VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	vendor.ID = uuid.New()
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	query := `INSERT INTO vendors (id, name, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		vendor.ID, vendor.Name, vendor.Email, vendor.Address, vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("vendorRepo.Create: %w", err)
	}
	return nil
}

func (r *vendorRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM vendors"); err != nil {
		return fmt.Errorf("vendorRepo.DeleteAll: %w", err)
	}
	return nil
}
