package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the four-relation schema used by the pharmacy service.
// Dates are stored as ISO text (YYYY-MM-DD); prices as doubles; stock and
// quantities as integers. Ledger rows deliberately carry no foreign-key
// constraint so that deleting a medicine or employee orphans history
// instead of failing.
func Run(db *sqlx.DB) error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "pgx" {
		serial = "BIGSERIAL PRIMARY KEY"
	}

	schema := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS medicines (
			id %s,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			cost_price DOUBLE PRECISION NOT NULL,
			sale_price DOUBLE PRECISION NOT NULL,
			stock INTEGER NOT NULL,
			expiry_date TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`, serial),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS employees (
			id %s,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			address TEXT NOT NULL,
			phone TEXT NOT NULL,
			salary DOUBLE PRECISION NOT NULL,
			hire_date TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`, serial),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS purchases (
			id %s,
			medicine_id INTEGER NOT NULL,
			supplier TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price DOUBLE PRECISION NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			purchase_date TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`, serial),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sales (
			id %s,
			medicine_id INTEGER NOT NULL,
			employee_id INTEGER NOT NULL,
			buyer TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price DOUBLE PRECISION NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			sale_date TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`, serial),
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
