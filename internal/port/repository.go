package port

import (
	"context"

	"spendlens/internal/domain"
)

// VendorRepository defines the contract for vendor persistence.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	DeleteAll(ctx context.Context) error
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	DeleteAll(ctx context.Context) error
}

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceRow, int, error)
	DeleteAll(ctx context.Context) error
}

// LineItemRepository defines the contract for line item persistence.
// Line items are always written as one batch per invoice.
type LineItemRepository interface {
	CreateBatch(ctx context.Context, items []domain.LineItem) error
	DeleteAll(ctx context.Context) error
}

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	DeleteAll(ctx context.Context) error
}
