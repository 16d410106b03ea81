package ingest

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"spendlens/internal/domain"
	"spendlens/internal/logger"
	"spendlens/internal/port"
)

// progressEvery controls how often a progress line is logged.
const progressEvery = 100

// Stores bundles the five create-capable collections the normalizer writes to.
type Stores struct {
	Vendors   port.VendorRepository
	Customers port.CustomerRepository
	Invoices  port.InvoiceRepository
	LineItems port.LineItemRepository
	Payments  port.PaymentRepository
}

// RandSource supplies the randomness used for demo status assignment.
// *rand.Rand satisfies it; tests inject a fixed sequence to pin outcomes.
type RandSource interface {
	Float64() float64
}

// Summary reports the outcome of one ingestion run.
type Summary struct {
	Processed int
	Skipped   int
	Vendors   int
	Customers int
	Errors    []DocumentError
}

// DocumentError records a document that failed processing, with its cause.
type DocumentError struct {
	DocumentID string
	Err        error
}

// Normalizer turns semi-structured source documents into normalized vendor,
// customer, invoice, line-item and payment records. One Run works through
// its input strictly in order; a failed document is skipped and the run
// continues. A Normalizer must not be shared across concurrent runs.
type Normalizer struct {
	stores Stores
	rng    RandSource
	now    func() time.Time
	log    zerolog.Logger
}

// Option customizes a Normalizer.
type Option func(*Normalizer)

// WithRand injects the random source used for status derivation.
func WithRand(rng RandSource) Option {
	return func(n *Normalizer) { n.rng = rng }
}

// WithClock injects the clock used as "current processing time" when
// comparing due dates.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// NewNormalizer creates a Normalizer writing to the given stores.
func NewNormalizer(stores Stores, opts ...Option) *Normalizer {
	n := &Normalizer{
		stores: stores,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		log:    logger.WithComponent("ingest"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// runState carries the dedup maps for a single run. Identity is exact
// name-string equality; the maps never survive past one Run call.
type runState struct {
	vendorIDs   map[string]uuid.UUID
	customerIDs map[string]uuid.UUID
}

// Run normalizes and persists the documents in input order.
func (n *Normalizer) Run(ctx context.Context, docs []SourceDocument) (*Summary, error) {
	state := &runState{
		vendorIDs:   make(map[string]uuid.UUID),
		customerIDs: make(map[string]uuid.UUID),
	}
	summary := &Summary{}

	for i := range docs {
		doc := &docs[i]

		ex, ok := doc.Flatten()
		if !ok {
			summary.Skipped++
			continue
		}

		if err := n.processDocument(ctx, state, doc, ex); err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, DocumentError{DocumentID: doc.ID, Err: err})
			n.log.Warn().Str("document_id", doc.ID).Err(err).Msg("document skipped")
			continue
		}

		summary.Processed++
		if summary.Processed%progressEvery == 0 {
			n.log.Info().Int("processed", summary.Processed).Msg("ingestion progress")
		}
	}

	summary.Vendors = len(state.vendorIDs)
	summary.Customers = len(state.customerIDs)
	return summary, nil
}

func (n *Normalizer) processDocument(ctx context.Context, state *runState, doc *SourceDocument, ex *Extract) error {
	invoiceNumber := ex.InvoiceID
	if invoiceNumber == "" {
		invoiceNumber = prefix(doc.ID, 8)
	}

	issueDate, err := resolveDate(ex.InvoiceDate, doc.CreatedAt.Time)
	if err != nil {
		return fmt.Errorf("issue date: %w", err)
	}
	dueDate, err := resolveDate(firstNonEmpty(ex.DueDate, ex.DeliveryDate), doc.CreatedAt.Time)
	if err != nil {
		return fmt.Errorf("due date: %w", err)
	}

	vendorName := ex.VendorName
	if vendorName == "" {
		vendorName = "Unknown Vendor"
	}

	rawTotal := floatOrZero(ex.InvoiceTotal)
	subtotal := floatOrZero(ex.SubTotal)
	taxAmount := floatOrZero(ex.TotalTax)

	vendorID, err := n.resolveVendor(ctx, state, vendorName, ex)
	if err != nil {
		return err
	}

	var customerID *uuid.UUID
	if ex.CustomerName != "" {
		id, err := n.resolveCustomer(ctx, state, ex)
		if err != nil {
			return err
		}
		customerID = &id
	}

	status := n.deriveStatus(rawTotal, dueDate)

	invoice := &domain.Invoice{
		InvoiceNumber: invoiceNumber,
		VendorID:      vendorID,
		CustomerID:    customerID,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		TotalAmount:   absDecimal(rawTotal),
		Status:        status,
		Category:      AssignCategory(vendorName),
		Description:   doc.Name,
		TaxAmount:     absDecimal(taxAmount),
		Subtotal:      absDecimal(subtotal),
	}
	if err := n.stores.Invoices.Create(ctx, invoice); err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	items := buildLineItems(invoice.ID, ex.LineItems)
	if len(items) > 0 {
		if err := n.stores.LineItems.CreateBatch(ctx, items); err != nil {
			return fmt.Errorf("creating line items: %w", err)
		}
	}

	// Payment emission keys off the stored magnitude, so paid credit notes
	// also get a settlement record.
	if status == domain.StatusPaid && invoice.TotalAmount.IsPositive() {
		payment := &domain.Payment{
			InvoiceID:   invoice.ID,
			Amount:      invoice.TotalAmount,
			PaymentDate: issueDate,
			Method:      domain.PaymentMethodBankTransfer,
			Reference:   invoiceNumber,
		}
		if err := n.stores.Payments.Create(ctx, payment); err != nil {
			return fmt.Errorf("creating payment: %w", err)
		}
	}

	return nil
}

// resolveVendor returns the run-scoped vendor ID for a name, creating the
// vendor on first encounter. Vendors are never updated within a run.
func (n *Normalizer) resolveVendor(ctx context.Context, state *runState, name string, ex *Extract) (uuid.UUID, error) {
	if id, ok := state.vendorIDs[name]; ok {
		return id, nil
	}

	vendor := &domain.Vendor{
		Name:    name,
		Address: ex.VendorAddress,
	}
	// A billing email is synthesized only when the source carried a tax id.
	if ex.VendorTaxID != nil {
		email := "billing@" + whitespaceRE.ReplaceAllString(strings.ToLower(name), "") + ".com"
		vendor.Email = &email
	}
	if err := n.stores.Vendors.Create(ctx, vendor); err != nil {
		return uuid.Nil, fmt.Errorf("creating vendor %q: %w", name, err)
	}
	state.vendorIDs[name] = vendor.ID
	return vendor.ID, nil
}

func (n *Normalizer) resolveCustomer(ctx context.Context, state *runState, ex *Extract) (uuid.UUID, error) {
	if id, ok := state.customerIDs[ex.CustomerName]; ok {
		return id, nil
	}

	customer := &domain.Customer{
		Name:    ex.CustomerName,
		Address: ex.CustomerAddress,
	}
	if err := n.stores.Customers.Create(ctx, customer); err != nil {
		return uuid.Nil, fmt.Errorf("creating customer %q: %w", ex.CustomerName, err)
	}
	state.customerIDs[ex.CustomerName] = customer.ID
	return customer.ID, nil
}

// deriveStatus assigns the demo lifecycle status. Negative totals are credit
// notes and count as settled. Otherwise overdue invoices come out paid with
// probability 0.7, future ones pending with probability 0.5.
func (n *Normalizer) deriveStatus(total float64, dueDate time.Time) domain.InvoiceStatus {
	if total < 0 {
		return domain.StatusPaid
	}
	if dueDate.Before(n.now()) {
		if n.rng.Float64() > 0.3 {
			return domain.StatusPaid
		}
		return domain.StatusOverdue
	}
	if n.rng.Float64() > 0.5 {
		return domain.StatusPending
	}
	return domain.StatusPaid
}

// buildLineItems drops entries without a description and applies the
// defaulting and absolute-value policy to the rest.
func buildLineItems(invoiceID uuid.UUID, items []ExtractLineItem) []domain.LineItem {
	var out []domain.LineItem
	for _, item := range items {
		if item.Description == "" {
			continue
		}
		quantity := 1.0
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		out = append(out, domain.LineItem{
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    decimal.NewFromFloat(quantity),
			UnitPrice:   absDecimal(floatOrZero(item.UnitPrice)),
			Amount:      absDecimal(floatOrZero(item.TotalPrice)),
		})
	}
	return out
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// resolveDate parses the extracted date string, falling back to the
// document timestamp when the string is absent.
func resolveDate(extracted string, fallback time.Time) (time.Time, error) {
	if extracted != "" {
		return parseTimestamp(extracted)
	}
	if fallback.IsZero() {
		return time.Time{}, fmt.Errorf("document has no usable timestamp")
	}
	return fallback, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func absDecimal(v float64) decimal.Decimal {
	return decimal.NewFromFloat(math.Abs(v))
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
