package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig(verbose bool) *gorm.Config {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}
	return &gorm.Config{Logger: logger.Default.LogMode(level)}
}

// InitPostgresORM opens GORM on the pool already held by raw, so both
// handles share connections.
func InitPostgresORM(raw *sqlx.DB, verbose bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: raw.DB}), gormConfig(verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm on postgres: %w", err)
	}
	return db, nil
}

// InitSQLiteORM opens a SQLite database file, or a private in-memory one for
// ":memory:".
func InitSQLiteORM(path string, verbose bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig(verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; one connection avoids "database is locked".
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
