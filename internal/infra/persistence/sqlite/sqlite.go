// Package sqlite implements the key-value store on an embedded SQLite database,
// so that the API process and the geo worker on one host share a single file.
package sqlite

import (
	"database/sql"
	"embed"
	"net/url"

	"venuealert/internal/errors"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens a SQLite database at the given path and runs migrations.
func Open(dbPath string) (*sql.DB, error) {
	query := url.Values{}
	query.Add("_pragma", "busy_timeout(5000)")
	query.Add("_pragma", "journal_mode(WAL)")
	query.Add("_pragma", "synchronous(NORMAL)")

	db, err := sql.Open("sqlite", "file:"+dbPath+"?"+query.Encode())
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "ping sqlite")
	}

	if err := runMigrations(db); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "run migrations")
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Wrap(err, "set dialect")
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "goose up")
	}

	return nil
}
