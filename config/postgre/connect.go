package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"member-admin/config"
	"member-admin/pkg/log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	defaultConnectTimeout  = 5 * time.Second
	defaultMaxIdleConns    = 2
	defaultMaxOpenConns    = 10
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

// DSN builds the lib/pq connection string. An empty SSL mode means disable.
func DSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode)
}

// Connect opens a pooled connection and pings it.
// The member source only runs one query per mount, so the pool is kept small.
func Connect(ctx context.Context, l log.Logger, cfg config.PostgresConfig) (*sql.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	l.Infof(ctx, "config.postgre.Connect: connecting to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)

	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		l.Errorf(ctx, "config.postgre.Connect: failed to open connection: %v", err)
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		l.Errorf(ctx, "config.postgre.Connect: failed to ping database: %v", err)
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	l.Infof(ctx, "config.postgre.Connect: connected to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
	return db, nil
}

// HealthCheck pings the database.
func HealthCheck(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("PostgreSQL client not initialized")
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %w", err)
	}
	return nil
}

// Disconnect closes the pool.
func Disconnect(ctx context.Context, l log.Logger, db *sql.DB) error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		l.Errorf(ctx, "config.postgre.Disconnect: failed to close connection: %v", err)
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	return nil
}
