package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendlens/internal/domain"
	"spendlens/internal/service"
	"spendlens/mocks"
)

func listingRows() []domain.InvoiceRow {
	return []domain.InvoiceRow{
		{
			InvoiceNumber: "INV-1",
			Vendor:        "Acme Hardware Co",
			IssueDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			Amount:        decimal.NewFromInt(100),
			Status:        domain.StatusPaid,
			Category:      domain.CategoryHardware,
		},
	}
}

func TestListRejectsInvalidStatus(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewInvoiceService(repo)

	_, _, err := svc.List(context.Background(), domain.InvoiceFilter{Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListClampsPagination(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything, domain.InvoiceFilter{Page: 1, Limit: 50}).
		Return(listingRows(), 1, nil)

	svc := service.NewInvoiceService(repo)
	rows, total, err := svc.List(context.Background(), domain.InvoiceFilter{Page: -3, Limit: 9999})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, rows, 1)
	repo.AssertExpectations(t)
}

func TestListPassesFilterThrough(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	want := domain.InvoiceFilter{Search: "acme", Status: domain.StatusOverdue, Page: 2, Limit: 25}
	repo.On("List", mock.Anything, want).Return([]domain.InvoiceRow{}, 0, nil)

	svc := service.NewInvoiceService(repo)
	_, _, err := svc.List(context.Background(), want)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestExportCSV(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.InvoiceFilter) bool {
		return f.Limit == 10000 && f.Page == 1
	})).Return(listingRows(), 1, nil)

	svc := service.NewInvoiceService(repo)
	result, err := svc.Export(context.Background(), domain.InvoiceFilter{}, "csv")
	require.NoError(t, err)

	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "invoices.csv", result.Filename)
	assert.True(t, bytes.HasPrefix(result.Data, []byte{0xEF, 0xBB, 0xBF}), "starts with a BOM")
	assert.Contains(t, string(result.Data), "INV-1")
	assert.Contains(t, string(result.Data), "Acme Hardware Co")
}

func TestExportXLSX(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything, mock.Anything).Return(listingRows(), 1, nil)

	svc := service.NewInvoiceService(repo)
	result, err := svc.Export(context.Background(), domain.InvoiceFilter{}, "xlsx")
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.ContentType)
	assert.Equal(t, "invoices.xlsx", result.Filename)
	assert.True(t, bytes.HasPrefix(result.Data, []byte("PK")), "xlsx is a zip archive")
}

func TestExportUnknownFormat(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything, mock.Anything).Return(listingRows(), 1, nil)

	svc := service.NewInvoiceService(repo)
	_, err := svc.Export(context.Background(), domain.InvoiceFilter{}, "pdf")
	assert.ErrorIs(t, err, domain.ErrUnknownExportFormat)
}

func TestExportRepoError(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, 0, errors.New("db down"))

	svc := service.NewInvoiceService(repo)
	_, err := svc.Export(context.Background(), domain.InvoiceFilter{}, "csv")
	assert.Error(t, err)
}
