package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestSubcontractorFlow(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/subcontractors",
		`{"name":"Yilmaz Electrical","specialty":"Electrical","contact":"Ahmet Yilmaz"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	sub := parseJSON(t, rec)["subcontractor"].(map[string]interface{})
	id := int64(sub["id"].(float64))

	// Missing specialty is rejected up front.
	rec = app.request("POST", "/api/v1/subcontractors", `{"name":"Kaya Plumbing","contact":"Mehmet"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Listing returns the one valid entry.
	result := parseJSON(t, app.request("GET", "/api/v1/subcontractors", ""))
	if len(result["data"].([]interface{})) != 1 {
		t.Fatalf("expected 1 subcontractor, got %d", len(result["data"].([]interface{})))
	}

	// Swap the contact person.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/subcontractors/%d", id), `{"contact":"Mehmet Kaya"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["subcontractor"].(map[string]interface{})
	if updated["contact"] != "Mehmet Kaya" {
		t.Errorf("expected Mehmet Kaya, got %v", updated["contact"])
	}

	// Delete twice; both succeed.
	for i := 0; i < 2; i++ {
		rec = app.request("DELETE", fmt.Sprintf("/api/v1/subcontractors/%d", id), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("delete attempt %d failed: %d", i+1, rec.Code)
		}
	}
	result = parseJSON(t, app.request("GET", "/api/v1/subcontractors", ""))
	if len(result["data"].([]interface{})) != 0 {
		t.Errorf("expected empty directory, got %v", result["data"])
	}
}
