package seed

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// LoadMedicines ingests a CSV catalog into the medicines table, skipping
// rows whose name is already present. Columns:
// name,category,cost_price,sale_price,stock,expiry_date. A missing file is
// not an error; the seed is optional.
func LoadMedicines(db *sqlx.DB, csvPath string) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("unable to read seed header: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("unable to read seed row: %w", err)
		}
		if len(record) < 6 {
			continue
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		category := strings.TrimSpace(record[1])
		costPrice, err1 := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		salePrice, err2 := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		stock, err3 := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
		expiry := strings.TrimSpace(record[5])
		if err1 != nil || err2 != nil || err3 != nil || stock < 0 {
			continue
		}

		var existing int64
		err = tx.Get(&existing, tx.Rebind(`SELECT id FROM medicines WHERE name = ?`), name)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return rows, err
		}

		if _, err := tx.Exec(tx.Rebind(`INSERT INTO medicines (name, category, cost_price, sale_price, stock, expiry_date)
			VALUES (?, ?, ?, ?, ?, ?)`), name, category, costPrice, salePrice, stock, expiry); err != nil {
			return rows, fmt.Errorf("unable to insert medicine %s: %w", name, err)
		}
		rows++
	}

	if err := tx.Commit(); err != nil {
		return rows, err
	}
	return rows, nil
}
