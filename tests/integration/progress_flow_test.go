package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func addProgressItem(t *testing.T, app *testApp, description string, quantity, unitPrice float64) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"description":%q,"quantity":%v,"unit_price":%v}`, description, quantity, unitPrice)
	rec := app.request("POST", "/api/v1/progress/items", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add item failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["item"].(map[string]interface{})
}

func TestProgressFlow(t *testing.T) {
	app := setupApp(t)

	formwork := addProgressItem(t, app, "Formwork", 150, 300)
	if formwork["total"].(float64) != 45000 {
		t.Errorf("expected total 45000, got %v", formwork["total"])
	}
	addProgressItem(t, app, "Rebar", 10, 500)

	// Nothing paid yet.
	summary := parseJSON(t, app.request("GET", "/api/v1/progress/summary", ""))
	if summary["total"].(float64) != 50000 || summary["total_paid"].(float64) != 0 {
		t.Errorf("unexpected initial summary: %v", summary)
	}

	// Mark the formwork line paid.
	formworkID := int64(formwork["id"].(float64))
	rec := app.request("POST", fmt.Sprintf("/api/v1/progress/items/%d/toggle", formworkID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle failed: %d %s", rec.Code, rec.Body.String())
	}

	summary = parseJSON(t, app.request("GET", "/api/v1/progress/summary", ""))
	if summary["total_paid"].(float64) != 45000 || summary["total_unpaid"].(float64) != 5000 {
		t.Errorf("unexpected summary after toggle: %v", summary)
	}

	// Items report their share of the grand total.
	items := parseJSON(t, app.request("GET", "/api/v1/progress/items", ""))["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, raw := range items {
		item := raw.(map[string]interface{})
		if item["id"].(float64) == float64(formworkID) && item["percent_of_total"].(float64) != 90 {
			t.Errorf("expected formwork at 90%%, got %v", item["percent_of_total"])
		}
	}

	// Delete the formwork line; the summary shrinks.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/progress/items/%d", formworkID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", rec.Code)
	}
	summary = parseJSON(t, app.request("GET", "/api/v1/progress/summary", ""))
	if summary["total"].(float64) != 5000 || summary["total_paid"].(float64) != 0 {
		t.Errorf("unexpected summary after delete: %v", summary)
	}
}

func TestProgressToggleMissing(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/progress/items/999/toggle", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
