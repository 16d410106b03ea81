package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vendor represents a supplier that issues invoices.
// Email is synthesized during ingestion when the source carried a tax id.
type Vendor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Address   *string   `db:"address" json:"address,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Customer represents the billed party on an invoice. Invoices may have none.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   *string   `db:"address" json:"address,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Invoice is the central entity of the schema. Amounts are stored as
// non-negative magnitudes; sign information from the source is folded into
// the status during ingestion.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	VendorID      uuid.UUID       `db:"vendor_id" json:"vendor_id"`
	CustomerID    *uuid.UUID      `db:"customer_id" json:"customer_id,omitempty"`
	IssueDate     time.Time       `db:"issue_date" json:"issue_date"`
	DueDate       time.Time       `db:"due_date" json:"due_date"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	Category      string          `db:"category" json:"category"`
	Description   string          `db:"description" json:"description"`
	TaxAmount     decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Subtotal      decimal.Decimal `db:"subtotal" json:"subtotal"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// LineItem is a single position on an invoice.
type LineItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// Payment records a settlement against an invoice.
type Payment struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	PaymentDate time.Time       `db:"payment_date" json:"payment_date"`
	Method      string          `db:"method" json:"method"`
	Reference   string          `db:"reference" json:"reference"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// InvoiceRow is the flattened listing shape returned by invoice queries,
// with the vendor name joined in.
type InvoiceRow struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	Vendor        string          `db:"vendor" json:"vendor"`
	IssueDate     time.Time       `db:"issue_date" json:"issue_date"`
	DueDate       time.Time       `db:"due_date" json:"due_date"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	Category      string          `db:"category" json:"category"`
}

// InvoiceFilter narrows invoice listing queries.
type InvoiceFilter struct {
	Search string
	Status InvoiceStatus
	Page   int
	Limit  int
}

// DashboardStats holds the headline numbers for the dashboard cards.
type DashboardStats struct {
	TotalSpend        decimal.Decimal `db:"total_spend" json:"total_spend"`
	TotalInvoices     int             `db:"total_invoices" json:"total_invoices"`
	DocumentsUploaded int             `json:"documents_uploaded"`
	AvgInvoiceValue   decimal.Decimal `db:"avg_invoice_value" json:"avg_invoice_value"`
}

// MonthlyTrend is one month of invoice volume and spend.
type MonthlyTrend struct {
	Month       string          `db:"month" json:"month"`
	Count       int             `db:"count" json:"count"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
}

// CategorySpend is the total spend for one invoice category.
type CategorySpend struct {
	Category   string          `db:"category" json:"category"`
	TotalSpend decimal.Decimal `db:"total_spend" json:"total_spend"`
}

// VendorSpend is the total spend for one vendor.
type VendorSpend struct {
	Name       string          `db:"name" json:"name"`
	TotalSpend decimal.Decimal `db:"total_spend" json:"total_spend"`
}

// MonthlyOutflow is the forecast cash outflow for one month, built from
// unpaid invoices falling due in that month.
type MonthlyOutflow struct {
	Month  string          `db:"month" json:"month"`
	Amount decimal.Decimal `db:"amount" json:"amount"`
}
