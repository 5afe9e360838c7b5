package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/zentime/internal/models"
)

// MemoryDSN keeps the journal for the lifetime of the process only
const MemoryDSN = ":memory:"

// Journal records completed intervals for the current run
type Journal struct {
	db *gorm.DB
}

// Open sets up the database connection and runs migrations.
// An empty dsn opens the in-memory journal.
func Open(dsn string) (*Journal, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// Every pooled connection to an in-memory database is a fresh, empty database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access journal pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Journal{db: db}, nil
}

// runMigrations creates/updates the database schema
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Interval{},
	)
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
