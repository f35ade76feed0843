package storage

import (
	"fmt"
	"reflect"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"schoolledger/internal/logger"
	"schoolledger/internal/models"
)

// tableModels maps collection keys to the GORM model backing each table.
var tableModels = map[string]any{
	KeyParents:             &models.Parent{},
	KeyStudents:            &models.Student{},
	KeyIncomeItems:         &models.IncomeItem{},
	KeyIncomeTransactions:  &models.IncomeTransaction{},
	KeyExpenseTransactions: &models.ExpenseTransaction{},
	KeyCostCenters:         &models.CostCenter{},
	KeyTeachers:            &models.Teacher{},
	KeySections:            &models.Section{},
	KeyUsers:               &models.User{},
	KeyRoles:               &models.Role{},
}

// RelationalStore backs the persistence contract with a relational
// database through GORM. To honor the overwrite-whole-collection
// contract, Set replaces the table contents inside a single database
// transaction; Get selects all rows.
type RelationalStore struct {
	db  *gorm.DB
	url string // postgres URL for golang-migrate; empty for sqlite
}

// OpenSQLite opens (or creates) a sqlite-backed store at path and
// migrates the schema in place.
func OpenSQLite(path string) (*RelationalStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	migrateTargets := make([]any, 0, len(tableModels))
	for _, m := range tableModels {
		migrateTargets = append(migrateTargets, m)
	}
	if err := db.AutoMigrate(migrateTargets...); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	return &RelationalStore{db: db}, nil
}

// OpenPostgres connects to a postgres-backed store. The schema is
// managed by SQL migrations (see Migrate and cmd/migrate), not by
// AutoMigrate.
func OpenPostgres(dsn, url string) (*RelationalStore, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &RelationalStore{db: db, url: url}, nil
}

// Migrate applies pending SQL migrations from the migrations/ directory.
// Only meaningful for the postgres backend.
func (r *RelationalStore) Migrate() error {
	if r.url == "" {
		return nil
	}
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", r.url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Get loads every row of the collection's table into dest. Presence
// means at least one row exists; an empty table is indistinguishable
// from a never-written collection, which callers treat the same way.
func (r *RelationalStore) Get(key string, dest any) (bool, error) {
	if _, ok := tableModels[key]; !ok {
		return false, fmt.Errorf("unknown collection %q", key)
	}
	if err := r.db.Find(dest).Error; err != nil {
		return false, fmt.Errorf("failed to load collection %s: %w", key, err)
	}
	return reflect.ValueOf(dest).Elem().Len() > 0, nil
}

// Set replaces the collection's table contents with value.
func (r *RelationalStore) Set(key string, value any) error {
	model, ok := tableModels[key]
	if !ok {
		return fmt.Errorf("unknown collection %q", key)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear collection %s: %w", key, err)
		}
		if reflect.ValueOf(value).Len() == 0 {
			return nil
		}
		if err := tx.Create(value).Error; err != nil {
			return fmt.Errorf("failed to write collection %s: %w", key, err)
		}
		return nil
	})
}

// DB exposes the underlying GORM handle for test teardown.
func (r *RelationalStore) DB() *gorm.DB {
	return r.db
}
