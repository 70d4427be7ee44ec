package cmd

import (
	"database/sql"
	"fmt"

	postgres_adapter "logistics/internal/adapters/out/postgres"

	"github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CreateDBIfNotExists connects to the maintenance database and creates the
// configured database when it is missing.
func CreateDBIfNotExists(config Config) error {
	db, err := sql.Open("postgres", config.MaintenanceDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow(`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, config.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database %s: %w", config.DBName, err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE does not take bind parameters.
	if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(config.DBName))); err != nil {
		return fmt.Errorf("failed to create database %s: %w", config.DBName, err)
	}
	return nil
}

// OpenDatabase opens the gorm connection and migrates the schema.
func OpenDatabase(config Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = postgres_adapter.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return gormDB, nil
}
