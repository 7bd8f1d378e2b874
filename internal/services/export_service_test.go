package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"siteledger/internal/models"
	"siteledger/internal/testutil"
)

func exportRecords() []models.FinanceRecord {
	date := time.Date(2025, 6, 16, 9, 30, 0, 0, time.UTC)
	return []models.FinanceRecord{
		{ID: 2, Type: models.RecordTypeExpense, Category: models.CategoryGroceries, Amount: 400, Description: "Market", Date: date.Add(time.Hour)},
		{ID: 1, Type: models.RecordTypeIncome, Category: models.CategorySalary, Amount: 1000, Description: "Pay", Date: date},
	}
}

func TestLedgerCSV(t *testing.T) {
	svc := NewExportService()

	out, err := svc.LedgerCSV(exportRecords())
	testutil.AssertNoError(t, err)

	if !bytes.HasPrefix(out, []byte("\xEF\xBB\xBF")) {
		t.Error("expected UTF-8 BOM prefix")
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, []byte("\xEF\xBB\xBF")))).ReadAll()
	testutil.AssertNoError(t, err)

	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "ID,Type,Category,Amount,Description,Date" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][3] != "400.00" || rows[2][3] != "1000.00" {
		t.Errorf("unexpected amounts: %v / %v", rows[1], rows[2])
	}
	if rows[2][5] != "2025-06-16 09:30" {
		t.Errorf("unexpected date format: %q", rows[2][5])
	}
}

func TestLedgerXLSX(t *testing.T) {
	svc := NewExportService()

	out, err := svc.LedgerXLSX(exportRecords())
	testutil.AssertNoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	testutil.AssertNoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue("Ledger", "A1")
	testutil.AssertNoError(t, err)
	if header != "ID" {
		t.Errorf("expected header cell ID, got %q", header)
	}

	// Summary block sits under the record table: 2 records + header + blank.
	label, err := f.GetCellValue("Ledger", "A5")
	testutil.AssertNoError(t, err)
	if label != "Total Income" {
		t.Errorf("expected summary label at A5, got %q", label)
	}
	balance, err := f.GetCellValue("Ledger", "B7")
	testutil.AssertNoError(t, err)
	if balance != "600" {
		t.Errorf("expected balance 600 at B7, got %q", balance)
	}
}

func TestRecordsInRange(t *testing.T) {
	records := exportRecords()
	mid := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	t.Run("open_bounds_keep_everything", func(t *testing.T) {
		got := RecordsInRange(records, time.Time{}, time.Time{})
		if len(got) != 2 {
			t.Errorf("expected 2 records, got %d", len(got))
		}
	})

	t.Run("from_bound", func(t *testing.T) {
		got := RecordsInRange(records, mid, time.Time{})
		if len(got) != 1 || got[0].ID != 2 {
			t.Errorf("expected only record 2, got %+v", got)
		}
	})

	t.Run("to_bound", func(t *testing.T) {
		got := RecordsInRange(records, time.Time{}, mid)
		if len(got) != 1 || got[0].ID != 1 {
			t.Errorf("expected only record 1, got %+v", got)
		}
	})
}
