package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"schoolledger/internal/config"
	"schoolledger/internal/handlers"
	"schoolledger/internal/ledger"
	"schoolledger/internal/logger"
	"schoolledger/internal/middleware"
	"schoolledger/internal/storage"
	"schoolledger/internal/store"
	"schoolledger/internal/validator"

	_ "schoolledger/internal/docs" // Import swagger docs
)

// @title           School Ledger API
// @version         1.0
// @description     School Ledger is a school administration backend for recording income and expense transactions, managing master data, and computing financial reports and KPIs.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Open the persistence backend chosen by configuration
	backend, err := openBackend(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open persistence backend: %w", err)
	}

	// Hydrate the entity store
	entityStore, err := store.Open(backend)
	if err != nil {
		return fmt.Errorf("failed to hydrate entity store: %w", err)
	}

	if appConfig.SeedSampleData {
		if err := store.Seed(entityStore); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	// Initialize services
	ledgerService := ledger.NewService(entityStore)

	// Initialize handlers
	parentHandler := handlers.NewParentHandler(entityStore.Parents)
	studentHandler := handlers.NewStudentHandler(entityStore.Students)
	incomeItemHandler := handlers.NewIncomeItemHandler(entityStore.IncomeItems)
	teacherHandler := handlers.NewTeacherHandler(entityStore.Teachers)
	sectionHandler := handlers.NewSectionHandler(entityStore.Sections)
	costCenterHandler := handlers.NewCostCenterHandler(entityStore.CostCenters)
	userHandler := handlers.NewUserHandler(entityStore.Users)
	roleHandler := handlers.NewRoleHandler(entityStore.Roles)
	transactionHandler := handlers.NewTransactionHandler(ledgerService, entityStore)
	reportHandler := handlers.NewReportHandler(entityStore, appConfig.MonthlyTarget)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Master data routes
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

	// Ledger routes
	transactions := v1.Group("/transactions")
	transactions.POST("/income", transactionHandler.CreateIncomeTransaction)
	transactions.GET("/income", transactionHandler.GetIncomeTransactions)
	transactions.GET("/income/:id", transactionHandler.GetIncomeTransactionByID)
	transactions.PUT("/income/:id/status", transactionHandler.UpdateIncomeStatus)
	transactions.POST("/expense", transactionHandler.CreateExpenseTransaction)
	transactions.GET("/expense", transactionHandler.GetExpenseTransactions)
	transactions.GET("/expense/:id", transactionHandler.GetExpenseTransactionByID)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/kpi", reportHandler.GetKPIs)
	reports.GET("/export", reportHandler.ExportReport)

	log.Infof("Starting School Ledger backend server on port %s (persistence: %s)", appConfig.Port, appConfig.Persistence)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// openBackend constructs the persistence backend named by the configuration.
func openBackend(appConfig *config.Config) (storage.Store, error) {
	switch appConfig.Persistence {
	case config.PersistenceSQLite:
		return storage.OpenSQLite(appConfig.SQLitePath)
	case config.PersistencePostgres:
		backend, err := storage.OpenPostgres(appConfig.PostgresDSN(), appConfig.PostgresURL())
		if err != nil {
			return nil, err
		}
		if err := backend.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		return backend, nil
	default:
		return storage.NewFileStore(appConfig.DataDir)
	}
}
