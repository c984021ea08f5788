package kv

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dkurbatov/filevault/internal/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open connects to the snapshot database named by dsn, runs the embedded
// migrations, and returns the matching Repository. A postgres:// or
// postgresql:// DSN selects PostgreSQL; anything else is treated as a
// sqlite file path (or sqlite URI).
func Open(ctx context.Context, dsn string) (*sql.DB, Repository, error) {
	driver, dialect := selectDriver(dsn)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if err := runMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}

	if driver == "pgx" {
		return db, NewPostgresRepository(db), nil
	}
	return db, NewSQLiteRepository(db), nil
}

func selectDriver(dsn string) (driver, dialect string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", "postgres"
	}
	return "sqlite", "sqlite3"
}

func runMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
