package export

import (
	"encoding/csv"
	"io"
	"time"

	"spendlens/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the export header row.
var columns = []string{
	"Invoice Number",
	"Vendor",
	"Issue Date",
	"Due Date",
	"Amount",
	"Status",
	"Category",
}

// CSVWriter wraps csv.Writer for exporting invoice listings as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of invoice rows to CSV and writes them.
func (w *CSVWriter) WriteInvoices(rows []domain.InvoiceRow) error {
	for i := range rows {
		if err := w.csv.Write(invoiceToRecord(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func invoiceToRecord(row *domain.InvoiceRow) []string {
	return []string{
		row.InvoiceNumber,
		row.Vendor,
		row.IssueDate.Format(time.DateOnly),
		row.DueDate.Format(time.DateOnly),
		row.Amount.StringFixed(2),
		string(row.Status),
		row.Category,
	}
}
