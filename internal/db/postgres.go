package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"flightops360/hangar/internal/config"
	"flightops360/hangar/internal/logging"
)

const connectAttempts = 10

// PostgresDSN builds the lib/pq connection URL from the PG_* settings.
func PostgresDSN(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
}

// ConnectPostgres opens a sqlx pool, retrying while the database starts up.
func ConnectPostgres(cfg *config.Config) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)
	for i := 0; i < connectAttempts; i++ {
		db, err = sqlx.Connect("postgres", PostgresDSN(cfg))
		if err == nil {
			logging.Info("connected to postgres", "host", cfg.PgHost, "db", cfg.PgDB)
			return db, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", connectAttempts, err)
}
