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

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	payment.ID = uuid.New()
	payment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO payments (id, invoice_id, amount, payment_date, method, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID, payment.InvoiceID, payment.Amount, payment.PaymentDate,
		payment.Method, payment.Reference, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM payments"); err != nil {
		return fmt.Errorf("paymentRepo.DeleteAll: %w", err)
	}
	return nil
}
