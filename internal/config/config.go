package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Persistence backend identifiers. The backend is chosen at construction
// time from configuration, never by sniffing the runtime environment.
const (
	PersistenceFile     = "file"
	PersistenceSQLite   = "sqlite"
	PersistencePostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Persistence
	Persistence string // file | sqlite | postgres
	DataDir     string // file backend: directory of per-collection JSON documents
	SQLitePath  string // sqlite backend: database file path

	// Postgres backend
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Reporting
	MonthlyTarget float64

	// Seed sample master data into empty collections at startup
	SeedSampleData bool
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Persistence
		Persistence: getEnv("PERSISTENCE", PersistenceFile),
		DataDir:     getEnv("DATA_DIR", "data"),
		SQLitePath:  getEnv("SQLITE_PATH", "schoolledger.db"),

		// Postgres backend
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "schoolledger"),
		DBPassword: getEnv("DB_PASSWORD", "schoolledger"),
		DBName:     getEnv("DB_NAME", "schoolledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	switch config.Persistence {
	case PersistenceFile, PersistenceSQLite, PersistencePostgres:
	default:
		return nil, fmt.Errorf("unknown PERSISTENCE backend %q (use file, sqlite, or postgres)", config.Persistence)
	}

	// Monthly income target used by the KPI dashboard.
	targetStr := getEnv("MONTHLY_TARGET", "50000")
	target, err := strconv.ParseFloat(targetStr, 64)
	if err != nil || target <= 0 {
		log.Printf("Warning: invalid MONTHLY_TARGET value '%s', falling back to 50000\n", targetStr)
		target = 50000
	}
	config.MonthlyTarget = target

	config.SeedSampleData = getEnv("SEED_SAMPLE_DATA", "false") == "true"

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresURL returns the migrate/pgx style connection URL for the postgres backend.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// PostgresDSN returns the keyword/value connection string for GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
