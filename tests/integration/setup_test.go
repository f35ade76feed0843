package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"schoolledger/internal/handlers"
	"schoolledger/internal/ledger"
	"schoolledger/internal/logger"
	"schoolledger/internal/middleware"
	"schoolledger/internal/store"
	"schoolledger/internal/testutil"
	"schoolledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Store  *store.Store
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory store.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	entityStore, _ := testutil.SetupTestStore(t)
	ledgerService := ledger.NewService(entityStore)

	parentHandler := handlers.NewParentHandler(entityStore.Parents)
	studentHandler := handlers.NewStudentHandler(entityStore.Students)
	incomeItemHandler := handlers.NewIncomeItemHandler(entityStore.IncomeItems)
	teacherHandler := handlers.NewTeacherHandler(entityStore.Teachers)
	sectionHandler := handlers.NewSectionHandler(entityStore.Sections)
	costCenterHandler := handlers.NewCostCenterHandler(entityStore.CostCenters)
	userHandler := handlers.NewUserHandler(entityStore.Users)
	roleHandler := handlers.NewRoleHandler(entityStore.Roles)
	transactionHandler := handlers.NewTransactionHandler(ledgerService, entityStore)
	reportHandler := handlers.NewReportHandler(entityStore, 50000)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	parents := v1.Group("/parents")
	parents.POST("", parentHandler.CreateParent)
	parents.GET("", parentHandler.GetParents)
	parents.GET("/:id", parentHandler.GetParentByID)
	parents.PUT("/:id", parentHandler.UpdateParent)
	parents.DELETE("/:id", parentHandler.DeleteParent)

	students := v1.Group("/students")
	students.POST("", studentHandler.CreateStudent)
	students.GET("", studentHandler.GetStudents)
	students.GET("/:id", studentHandler.GetStudentByID)
	students.PUT("/:id", studentHandler.UpdateStudent)
	students.DELETE("/:id", studentHandler.DeleteStudent)

	incomeItems := v1.Group("/income-items")
	incomeItems.POST("", incomeItemHandler.CreateIncomeItem)
	incomeItems.GET("", incomeItemHandler.GetIncomeItems)
	incomeItems.GET("/:id", incomeItemHandler.GetIncomeItemByID)
	incomeItems.PUT("/:id", incomeItemHandler.UpdateIncomeItem)
	incomeItems.DELETE("/:id", incomeItemHandler.DeleteIncomeItem)

	teachers := v1.Group("/teachers")
	teachers.POST("", teacherHandler.CreateTeacher)
	teachers.GET("", teacherHandler.GetTeachers)
	teachers.GET("/:id", teacherHandler.GetTeacherByID)
	teachers.PUT("/:id", teacherHandler.UpdateTeacher)
	teachers.DELETE("/:id", teacherHandler.DeleteTeacher)

	sections := v1.Group("/sections")
	sections.POST("", sectionHandler.CreateSection)
	sections.GET("", sectionHandler.GetSections)
	sections.GET("/:id", sectionHandler.GetSectionByID)
	sections.PUT("/:id", sectionHandler.UpdateSection)
	sections.DELETE("/:id", sectionHandler.DeleteSection)

	costCenters := v1.Group("/cost-centers")
	costCenters.POST("", costCenterHandler.CreateCostCenter)
	costCenters.GET("", costCenterHandler.GetCostCenters)
	costCenters.GET("/:id", costCenterHandler.GetCostCenterByID)
	costCenters.PUT("/:id", costCenterHandler.UpdateCostCenter)
	costCenters.DELETE("/:id", costCenterHandler.DeleteCostCenter)

	users := v1.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.GetUsers)
	users.GET("/:id", userHandler.GetUserByID)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	roles := v1.Group("/roles")
	roles.POST("", roleHandler.CreateRole)
	roles.GET("", roleHandler.GetRoles)
	roles.GET("/:id", roleHandler.GetRoleByID)
	roles.PUT("/:id", roleHandler.UpdateRole)
	roles.DELETE("/:id", roleHandler.DeleteRole)

	transactions := v1.Group("/transactions")
	transactions.POST("/income", transactionHandler.CreateIncomeTransaction)
	transactions.GET("/income", transactionHandler.GetIncomeTransactions)
	transactions.GET("/income/:id", transactionHandler.GetIncomeTransactionByID)
	transactions.PUT("/income/:id/status", transactionHandler.UpdateIncomeStatus)
	transactions.POST("/expense", transactionHandler.CreateExpenseTransaction)
	transactions.GET("/expense", transactionHandler.GetExpenseTransactions)
	transactions.GET("/expense/:id", transactionHandler.GetExpenseTransactionByID)

	reportRoutes := v1.Group("/reports")
	reportRoutes.GET("/summary", reportHandler.GetSummary)
	reportRoutes.GET("/kpi", reportHandler.GetKPIs)
	reportRoutes.GET("/export", reportHandler.ExportReport)

	return &testApp{Store: entityStore, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createParent creates a parent and returns its ID.
func (app *testApp) createParent(t *testing.T, firstName, lastName string) string {
	t.Helper()
	body := `{"firstName":"` + firstName + `","lastName":"` + lastName + `"}`
	rec := app.request("POST", "/api/v1/parents", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create parent failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	parent := result["parent"].(map[string]interface{})
	return parent["id"].(string)
}

// createStudent creates a student linked to the given parent and returns its ID.
func (app *testApp) createStudent(t *testing.T, firstName, lastName, parentID string) string {
	t.Helper()
	body := `{"firstName":"` + firstName + `","lastName":"` + lastName + `","parentId":"` + parentID + `"}`
	rec := app.request("POST", "/api/v1/students", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create student failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	student := result["student"].(map[string]interface{})
	return student["id"].(string)
}

// createIncomeItem creates a fee item and returns its ID.
func (app *testApp) createIncomeItem(t *testing.T, name string, price float64, itemType string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{
		"name":  name,
		"price": price,
		"type":  itemType,
	})
	rec := app.request("POST", "/api/v1/income-items", string(body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create income item failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	item := result["incomeItem"].(map[string]interface{})
	return item["id"].(string)
}
