package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// schema es idempotente; se aplica al arrancar.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL,
		weight      DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS meal_records (
		id      TEXT PRIMARY KEY,
		animal  TEXT NOT NULL,
		hour    INTEGER NOT NULL,
		minute  INTEGER NOT NULL,
		amount  INTEGER NOT NULL,
		days    TEXT NOT NULL DEFAULT 'all'
	)`,
	// una sola fila (id = 1)
	`CREATE TABLE IF NOT EXISTS feeding_meta (
		id                 SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		cat_kcal_per_gram  DOUBLE PRECISION,
		dog_kcal_per_gram  DOUBLE PRECISION
	)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres migrate: %w", err)
		}
	}
	return nil
}
