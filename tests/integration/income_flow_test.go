package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestIncomeFlow_RecordAndMarkPaid(t *testing.T) {
	app := setupApp(t)

	// Step 1: Set up master data
	parentID := app.createParent(t, "John", "Smith")
	studentA := app.createStudent(t, "Emma", "Smith", parentID)
	studentB := app.createStudent(t, "Liam", "Smith", parentID)
	tuitionID := app.createIncomeItem(t, "Tuition", 500, "per_student")
	busID := app.createIncomeItem(t, "Bus Fee", 100, "per_parent")

	// Step 2: Record income for both students and both items.
	// per_student 500 x 2 + per_parent 100 = 1100
	body := fmt.Sprintf(`{"parentId":%q,"studentIds":[%q,%q],"itemIds":[%q,%q],"loggedUser":"admin"}`,
		parentID, studentA, studentB, tuitionID, busID)
	rec := app.request("POST", "/api/v1/transactions/income", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	tx := result["transaction"].(map[string]interface{})
	txID := tx["id"].(string)
	if tx["total"].(float64) != 1100 {
		t.Errorf("expected computed total 1100, got %v", tx["total"])
	}
	if tx["status"] != "pending" {
		t.Errorf("expected default status pending, got %v", tx["status"])
	}

	// Step 3: Fetch it back by ID
	rec = app.request("GET", "/api/v1/transactions/income/"+txID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 4: Mark it paid
	rec = app.request("PUT", "/api/v1/transactions/income/"+txID+"/status", `{"status":"paid"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	tx = result["transaction"].(map[string]interface{})
	if tx["status"] != "paid" {
		t.Errorf("expected status paid, got %v", tx["status"])
	}

	// Step 5: The paid filter now returns it, the pending filter does not
	rec = app.request("GET", "/api/v1/transactions/income?status=paid", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	listResult := parseJSON(t, rec)
	if listResult["total_items"].(float64) != 1 {
		t.Errorf("expected 1 paid transaction, got %v", listResult["total_items"])
	}

	rec = app.request("GET", "/api/v1/transactions/income?status=pending", "")
	listResult = parseJSON(t, rec)
	if listResult["total_items"].(float64) != 0 {
		t.Errorf("expected no pending transactions, got %v", listResult["total_items"])
	}

	// Step 6: A second transition is rejected
	rec = app.request("PUT", "/api/v1/transactions/income/"+txID+"/status", `{"status":"paid"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on repeated transition, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestIncomeFlow_SnapshotSurvivesPriceChange(t *testing.T) {
	app := setupApp(t)

	parentID := app.createParent(t, "Jane", "Doe")
	studentID := app.createStudent(t, "Ava", "Doe", parentID)
	itemID := app.createIncomeItem(t, "Tuition", 500, "per_student")

	body := fmt.Sprintf(`{"parentId":%q,"studentIds":[%q],"itemIds":[%q],"loggedUser":"admin"}`,
		parentID, studentID, itemID)
	rec := app.request("POST", "/api/v1/transactions/income", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	txID := result["transaction"].(map[string]interface{})["id"].(string)

	// Raise the fee item price after the fact
	rec = app.request("PUT", "/api/v1/income-items/"+itemID,
		`{"name":"Tuition","price":900,"type":"per_student"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// The recorded transaction keeps the price it was billed at
	rec = app.request("GET", "/api/v1/transactions/income/"+txID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	tx := result["transaction"].(map[string]interface{})
	if tx["total"].(float64) != 500 {
		t.Errorf("expected historical total 500, got %v", tx["total"])
	}
}

func TestIncomeFlow_MissingFieldsRejected(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/transactions/income",
		`{"parentId":"p1","loggedUser":"admin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// Nothing was recorded
	rec = app.request("GET", "/api/v1/transactions/income", "")
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 0 {
		t.Errorf("expected empty ledger, got %v", result["total_items"])
	}
}
