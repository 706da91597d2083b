package database

import (
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know the
	// bindvar style for out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the database named by the DSN. A postgres:// or
// postgresql:// DSN selects the pgx driver; anything else is treated as a
// SQLite path or URI.
func Open(dsn string) (*sqlx.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = "pgx"
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// SQLite handles one writer at a time; a second pooled connection
		// to a :memory: DSN would also see a different database entirely.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
	}
	return db, nil
}
