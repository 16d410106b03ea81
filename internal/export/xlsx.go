package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"spendlens/internal/domain"
)

const sheetName = "Invoices"

// WriteXLSX renders invoice rows as an Excel workbook with one sheet.
func WriteXLSX(rows []domain.InvoiceRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for r := range rows {
		row := &rows[r]
		values := []interface{}{
			row.InvoiceNumber,
			row.Vendor,
			row.IssueDate.Format(time.DateOnly),
			row.DueDate.Format(time.DateOnly),
			row.Amount.InexactFloat64(),
			string(row.Status),
			row.Category,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", r+1, err)
			}
		}
	}

	return f, nil
}
