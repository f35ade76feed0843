package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestReportFlow_SummaryAndKPIs(t *testing.T) {
	app := setupApp(t)

	// Step 1: Master data and one paid income of 750
	parentID := app.createParent(t, "John", "Smith")
	studentID := app.createStudent(t, "Emma", "Smith", parentID)
	itemID := app.createIncomeItem(t, "Tuition", 750, "per_student")

	body := fmt.Sprintf(`{"parentId":%q,"studentIds":[%q],"itemIds":[%q],"status":"paid","loggedUser":"admin"}`,
		parentID, studentID, itemID)
	rec := app.request("POST", "/api/v1/transactions/income", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record income failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 2: One expense of 250
	rec = app.request("POST", "/api/v1/transactions/expense",
		`{"items":[{"name":"Chalk","amount":250}],"loggedUser":"admin"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record expense failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 3: Summary totals span both ledgers
	rec = app.request("GET", "/api/v1/reports/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)
	if report["totalIncome"].(float64) != 750 {
		t.Errorf("expected total income 750, got %v", report["totalIncome"])
	}
	if report["totalExpenses"].(float64) != 250 {
		t.Errorf("expected total expenses 250, got %v", report["totalExpenses"])
	}
	if report["netIncome"].(float64) != 500 {
		t.Errorf("expected net income 500, got %v", report["netIncome"])
	}

	// Step 4: KPI snapshot reflects the roll and the month
	rec = app.request("GET", "/api/v1/reports/kpi", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	snapshot := parseJSON(t, rec)
	if snapshot["monthlyIncome"].(float64) != 750 {
		t.Errorf("expected monthly income 750, got %v", snapshot["monthlyIncome"])
	}
	if snapshot["totalStudents"].(float64) != 1 {
		t.Errorf("expected 1 student, got %v", snapshot["totalStudents"])
	}
	if snapshot["paidStudents"].(float64) != 1 {
		t.Errorf("expected 1 paid student, got %v", snapshot["paidStudents"])
	}
	if snapshot["paymentRate"].(float64) != 100 {
		t.Errorf("expected payment rate 100, got %v", snapshot["paymentRate"])
	}
}

func TestReportFlow_Export(t *testing.T) {
	app := setupApp(t)

	parentID := app.createParent(t, "John", "Smith")
	studentID := app.createStudent(t, "Emma", "Smith", parentID)
	itemID := app.createIncomeItem(t, "Tuition", 500, "per_student")

	body := fmt.Sprintf(`{"parentId":%q,"studentIds":[%q],"itemIds":[%q],"loggedUser":"admin"}`,
		parentID, studentID, itemID)
	rec := app.request("POST", "/api/v1/transactions/income", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record income failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/reports/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", got)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "financial-report-") {
		t.Errorf("unexpected content disposition %q", rec.Header().Get("Content-Disposition"))
	}
	// xlsx files are zip archives
	if body := rec.Body.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Error("expected a zip-format workbook body")
	}
}
