package service

import (
	"bytes"
	"context"
	"fmt"

	"spendlens/internal/domain"
	"spendlens/internal/export"
	"spendlens/internal/port"
)

// ExportResult carries a rendered invoice export.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// InvoiceService provides invoice listing and export.
type InvoiceService interface {
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceRow, int, error)
	Export(ctx context.Context, filter domain.InvoiceFilter, format string) (*ExportResult, error)
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(invoiceRepo port.InvoiceRepository) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

func (s *invoiceService) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceRow, int, error) {
	if filter.Status != "" && !domain.ValidStatuses[filter.Status] {
		return nil, 0, domain.ErrInvalidStatus
	}
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	return s.invoiceRepo.List(ctx, filter)
}

// exportLimit caps how many rows one export fetches.
const exportLimit = 10000

func (s *invoiceService) Export(ctx context.Context, filter domain.InvoiceFilter, format string) (*ExportResult, error) {
	if filter.Status != "" && !domain.ValidStatuses[filter.Status] {
		return nil, domain.ErrInvalidStatus
	}
	filter.Page = 1
	filter.Limit = exportLimit

	rows, _, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	switch format {
	case "csv", "":
		var buf bytes.Buffer
		buf.Write(export.BOM)
		w := export.NewCSVWriter(&buf)
		if err := w.WriteHeader(); err != nil {
			return nil, fmt.Errorf("writing csv header: %w", err)
		}
		if err := w.WriteInvoices(rows); err != nil {
			return nil, fmt.Errorf("writing csv rows: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("flushing csv: %w", err)
		}
		return &ExportResult{
			Data:        buf.Bytes(),
			ContentType: "text/csv",
			Filename:    "invoices.csv",
		}, nil

	case "xlsx":
		f, err := export.WriteXLSX(rows)
		if err != nil {
			return nil, fmt.Errorf("building workbook: %w", err)
		}
		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return nil, fmt.Errorf("writing workbook: %w", err)
		}
		return &ExportResult{
			Data:        buf.Bytes(),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    "invoices.xlsx",
		}, nil

	default:
		return nil, domain.ErrUnknownExportFormat
	}
}
