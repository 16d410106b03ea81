package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendlens/internal/domain"
	"spendlens/internal/export"
)

func sampleRows() []domain.InvoiceRow {
	return []domain.InvoiceRow{
		{
			InvoiceNumber: "INV-1001",
			Vendor:        "Acme Hardware Co",
			IssueDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			Amount:        decimal.NewFromFloat(199.9),
			Status:        domain.StatusPaid,
			Category:      domain.CategoryHardware,
		},
		{
			InvoiceNumber: "INV-1002",
			Vendor:        "Global Tech Partners",
			IssueDate:     time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Amount:        decimal.NewFromInt(50),
			Status:        domain.StatusPending,
			Category:      domain.CategorySoftware,
		},
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewCSVWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteInvoices(sampleRows()))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Invoice Number", "Vendor", "Issue Date", "Due Date", "Amount", "Status", "Category"}, records[0])
	assert.Equal(t, []string{"INV-1001", "Acme Hardware Co", "2024-03-01", "2024-03-31", "199.90", "paid", "Hardware"}, records[1])
	assert.Equal(t, "50.00", records[2][4], "amounts rendered with two decimals")
}

func TestWriteXLSX(t *testing.T) {
	f, err := export.WriteXLSX(sampleRows())
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	require.Equal(t, []string{"Invoices"}, sheets)

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-1001", rows[1][0])
	assert.Equal(t, "Global Tech Partners", rows[2][1])
	assert.Equal(t, "pending", rows[2][5])
}

func TestWriteXLSXEmpty(t *testing.T) {
	f, err := export.WriteXLSX(nil)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
