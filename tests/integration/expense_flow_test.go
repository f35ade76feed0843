package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestExpenseFlow_RecordAndList(t *testing.T) {
	app := setupApp(t)

	// Step 1: Create a cost center
	rec := app.request("POST", "/api/v1/cost-centers",
		`{"name":"Supplies","code":"SUP"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create cost center failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	costCenterID := result["costCenter"].(map[string]interface{})["id"].(string)

	// Step 2: Record an expense with two line items
	body := fmt.Sprintf(`{"items":[{"name":"Chalk","amount":25.5,"costCenterId":%q},{"name":"Projector","amount":300}],"loggedUser":"admin"}`,
		costCenterID)
	rec = app.request("POST", "/api/v1/transactions/expense", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	tx := result["transaction"].(map[string]interface{})
	txID := tx["id"].(string)
	if tx["total"].(float64) != 325.5 {
		t.Errorf("expected computed total 325.5, got %v", tx["total"])
	}

	// Step 3: Fetch it back by ID
	rec = app.request("GET", "/api/v1/transactions/expense/"+txID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 4: Search by line item name
	rec = app.request("GET", "/api/v1/transactions/expense?search=chalk", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	listResult := parseJSON(t, rec)
	if listResult["total_items"].(float64) != 1 {
		t.Errorf("expected 1 match for 'chalk', got %v", listResult["total_items"])
	}

	rec = app.request("GET", "/api/v1/transactions/expense?search=nonexistent", "")
	listResult = parseJSON(t, rec)
	if listResult["total_items"].(float64) != 0 {
		t.Errorf("expected no matches, got %v", listResult["total_items"])
	}
}

func TestExpenseFlow_EmptyItemsRejected(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/transactions/expense",
		`{"items":[],"loggedUser":"admin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
