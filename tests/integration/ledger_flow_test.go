package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func createRecord(t *testing.T, app *testApp, recordType, category string, amount float64, description string) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"type":%q,"category":%q,"amount":%v,"description":%q}`,
		recordType, category, amount, description)
	rec := app.request("POST", "/api/v1/ledger/records", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create record failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["record"].(map[string]interface{})
}

func TestLedgerFlow(t *testing.T) {
	app := setupApp(t)

	// Record a payment and a purchase.
	income := createRecord(t, app, "income", "Salary", 1000, "Pay")
	expense := createRecord(t, app, "expense", "Groceries", 400, "Market")

	// Both show up newest first.
	rec := app.request("GET", "/api/v1/ledger/records", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	records := parseJSON(t, rec)["records"].([]interface{})
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	first := records[0].(map[string]interface{})
	if first["id"].(float64) != expense["id"].(float64) {
		t.Error("expected the expense (newest) first")
	}

	// Summary reflects both.
	summary := parseJSON(t, app.request("GET", "/api/v1/ledger/summary", ""))
	if summary["balance"].(float64) != 600 {
		t.Errorf("expected balance 600, got %v", summary["balance"])
	}

	// Category filter narrows the list.
	records = parseJSON(t, app.request("GET", "/api/v1/ledger/records?category=Salary", ""))["records"].([]interface{})
	if len(records) != 1 {
		t.Errorf("expected 1 salary record, got %d", len(records))
	}

	// Fresh records fall inside the today window.
	records = parseJSON(t, app.request("GET", "/api/v1/ledger/records?window=today", ""))["records"].([]interface{})
	if len(records) != 2 {
		t.Errorf("expected 2 records today, got %d", len(records))
	}

	// Delete the income; the balance flips negative.
	incomeID := int64(income["id"].(float64))
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/ledger/records/%d", incomeID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	summary = parseJSON(t, app.request("GET", "/api/v1/ledger/summary", ""))
	if summary["balance"].(float64) != -400 {
		t.Errorf("expected balance -400, got %v", summary["balance"])
	}

	// Deleting the same ID again is a quiet no-op.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/ledger/records/%d", incomeID), "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected idempotent delete, got %d", rec.Code)
	}
}

func TestLedgerEditSessionFlow(t *testing.T) {
	app := setupApp(t)

	record := createRecord(t, app, "income", "Salary", 1000, "Pay")
	id := int64(record["id"].(float64))

	// Start editing; draft carries the record's fields.
	rec := app.request("POST", fmt.Sprintf("/api/v1/ledger/edit/%d", id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("start edit failed: %d %s", rec.Code, rec.Body.String())
	}
	draft := parseJSON(t, rec)["draft"].(map[string]interface{})
	if draft["amount"].(float64) != 1000 {
		t.Errorf("expected draft amount 1000, got %v", draft["amount"])
	}

	// Save routes to an update of the same record.
	rec = app.request("POST", "/api/v1/ledger/save",
		`{"type":"income","category":"Salary","amount":1250,"description":"Pay raise"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save failed: %d %s", rec.Code, rec.Body.String())
	}
	saved := parseJSON(t, rec)["record"].(map[string]interface{})
	if int64(saved["id"].(float64)) != id {
		t.Errorf("expected update of record %d, got %v", id, saved["id"])
	}
	if saved["amount"].(float64) != 1250 {
		t.Errorf("expected amount 1250, got %v", saved["amount"])
	}

	// Session is idle again; the next save creates.
	state := parseJSON(t, app.request("GET", "/api/v1/ledger/edit", ""))
	if state["editing_id"] != nil {
		t.Errorf("expected idle session, got %v", state["editing_id"])
	}

	rec = app.request("POST", "/api/v1/ledger/save",
		`{"type":"expense","category":"Transport","amount":50,"description":"Fuel"}`)
	created := parseJSON(t, rec)["record"].(map[string]interface{})
	if int64(created["id"].(float64)) == id {
		t.Error("expected a new record, got an update")
	}

	// Only one record plus the new one exist.
	records := parseJSON(t, app.request("GET", "/api/v1/ledger/records", ""))["records"].([]interface{})
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestLedgerValidationFlow(t *testing.T) {
	app := setupApp(t)

	// Zero amount never reaches the ledger.
	rec := app.request("POST", "/api/v1/ledger/records",
		`{"type":"income","category":"Salary","amount":0,"description":"Pay"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on zero amount, got %d", rec.Code)
	}

	// Blank description is rejected by the service after trimming.
	rec = app.request("POST", "/api/v1/ledger/records",
		`{"type":"income","category":"Salary","amount":10,"description":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on blank description, got %d", rec.Code)
	}

	records := parseJSON(t, app.request("GET", "/api/v1/ledger/records", ""))["records"].([]interface{})
	if len(records) != 0 {
		t.Errorf("expected empty ledger after rejected creates, got %d records", len(records))
	}
}

func TestLedgerExportFlow(t *testing.T) {
	app := setupApp(t)

	createRecord(t, app, "income", "Salary", 1000, "Pay")
	createRecord(t, app, "expense", "Groceries", 400, "Market")

	rec := app.request("GET", "/api/v1/ledger/export/csv", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("csv export failed: %d %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Pay") || !strings.Contains(body, "Market") {
		t.Error("expected both records in CSV export")
	}

	rec = app.request("GET", "/api/v1/ledger/export/xlsx", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("xlsx export failed: %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty xlsx body")
	}
}
