package session

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// InitDatabase opens the local sqlite database at dsn and brings its schema
// up to date with the embedded migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
