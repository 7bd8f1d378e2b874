package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/models"
)

const exportTimeLayout = "2006-01-02 15:04"

// exportService renders ledger records into downloadable documents.
type exportService struct{}

// NewExportService creates a new ExportServicer.
func NewExportService() ExportServicer {
	return &exportService{}
}

// LedgerCSV renders the records as CSV. The output starts with a UTF-8 BOM
// so spreadsheet applications detect the encoding.
func (s *exportService) LedgerCSV(records []models.FinanceRecord) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write([]string{"ID", "Type", "Category", "Amount", "Description", "Date"}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, r := range records {
		row := []string{
			fmt.Sprintf("%d", r.ID),
			string(r.Type),
			r.Category,
			fmt.Sprintf("%.2f", r.Amount),
			r.Description,
			r.Date.Format(exportTimeLayout),
		}
		if err := writer.Write(row); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// LedgerXLSX renders the records as an Excel workbook with a summary block
// (income, expense, balance) under the record table.
func (s *exportService) LedgerXLSX(records []models.FinanceRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Ledger"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	headers := []string{"ID", "Type", "Category", "Amount", "Description", "Date"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	var totals LedgerTotals
	for i, r := range records {
		row := i + 2
		values := []interface{}{r.ID, string(r.Type), r.Category, r.Amount, r.Description, r.Date.Format(exportTimeLayout)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		switch r.Type {
		case models.RecordTypeIncome:
			totals.TotalIncome += r.Amount
		case models.RecordTypeExpense:
			totals.TotalExpense += r.Amount
		}
	}
	totals.Balance = totals.TotalIncome - totals.TotalExpense

	summaryRow := len(records) + 3
	summary := []struct {
		label string
		value float64
	}{
		{"Total Income", totals.TotalIncome},
		{"Total Expense", totals.TotalExpense},
		{"Balance", totals.Balance},
	}
	for i, line := range summary {
		labelCell, err := excelize.CoordinatesToCellName(1, summaryRow+i)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, summaryRow+i)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := f.SetCellValue(sheet, labelCell, line.label); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := f.SetCellValue(sheet, valueCell, line.value); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// RecordsInRange returns the records whose date falls within [from, to].
// Zero bounds are open.
func RecordsInRange(records []models.FinanceRecord, from, to time.Time) []models.FinanceRecord {
	out := make([]models.FinanceRecord, 0, len(records))
	for _, r := range records {
		if !from.IsZero() && r.Date.Before(from) {
			continue
		}
		if !to.IsZero() && r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}
