package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to establish a Postgres connection.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Timeout  time.Duration
}

// Connect opens a pooled *sql.DB and verifies connectivity with a ping.
// The pool is shared for the lifetime of the process; every operation checks
// a connection out and returns it when its statement completes.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the alumno table when it does not exist yet.
// fecha_nacimiento is kept as text so the value round-trips exactly as the
// client submitted it.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS alumno (
		id_alumno        SERIAL PRIMARY KEY,
		nombre           TEXT NOT NULL,
		apellido         TEXT NOT NULL,
		email            TEXT NOT NULL,
		password         TEXT NOT NULL,
		sexo             TEXT NOT NULL,
		fecha_nacimiento TEXT,
		peso             DOUBLE PRECISION,
		altura           DOUBLE PRECISION,
		descuento        DOUBLE PRECISION NOT NULL,
		comida_favorita  TEXT NOT NULL
	);`

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres ensure schema: %w", err)
	}
	return nil
}
