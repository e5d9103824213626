package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/sharefile/internal/client/migrations"
	"github.com/dmitrijs2005/sharefile/internal/dbx"
	"github.com/dmitrijs2005/sharefile/internal/filex"
)

// RunMigrations brings the schema of db up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens the history database at dsn, applies migrations and returns
// the repository with a function that closes the database.
func Open(ctx context.Context, dsn string) (*SQLiteRepository, func() error, error) {
	dsn, err := filex.LocalDBPath(dsn)
	if err != nil {
		return nil, nil, err
	}

	db, err := dbx.OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate history database: %w", err)
	}

	return NewSQLiteRepository(db), db.Close, nil
}
