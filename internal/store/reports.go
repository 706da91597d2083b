package store

import (
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Reports aggregates the ledgers for the dashboard.
type Reports struct {
	db *sqlx.DB
}

func NewReports(db *sqlx.DB) *Reports {
	return &Reports{db: db}
}

// Stats carries the dashboard counters.
type Stats struct {
	Medicines          int64 `json:"medicines"`
	Employees          int64 `json:"employees"`
	PurchasesThisMonth int64 `json:"purchases_this_month"`
	SalesThisMonth     int64 `json:"sales_this_month"`
}

func (r *Reports) Stats() (Stats, error) {
	var stats Stats
	if err := r.db.Get(&stats.Medicines, `SELECT COUNT(*) FROM medicines`); err != nil {
		return stats, err
	}
	if err := r.db.Get(&stats.Employees, `SELECT COUNT(*) FROM employees`); err != nil {
		return stats, err
	}

	monthPrefix := time.Now().Format("2006-01") + "%"
	if err := r.db.Get(&stats.PurchasesThisMonth, r.db.Rebind(`SELECT COUNT(*) FROM purchases WHERE purchase_date LIKE ?`), monthPrefix); err != nil {
		return stats, err
	}
	if err := r.db.Get(&stats.SalesThisMonth, r.db.Rebind(`SELECT COUNT(*) FROM sales WHERE sale_date LIKE ?`), monthPrefix); err != nil {
		return stats, err
	}
	return stats, nil
}

// Transaction is one row of the recent-activity feed, drawn from either
// ledger.
type Transaction struct {
	Kind         string  `db:"kind" json:"kind"`
	Date         string  `db:"date" json:"date"`
	MedicineName string  `db:"medicine_name" json:"medicine_name"`
	Quantity     int64   `db:"quantity" json:"quantity"`
	Total        float64 `db:"total" json:"total"`
}

// Recent merges the latest purchases and sales into one feed, newest date
// first.
func (r *Reports) Recent(limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	half := (limit + 1) / 2

	purchases := []Transaction{}
	err := r.db.Select(&purchases, r.db.Rebind(`SELECT 'purchase' AS kind, p.purchase_date AS date,
		COALESCE(m.name, '') AS medicine_name, p.quantity, p.total
		FROM purchases p LEFT JOIN medicines m ON m.id = p.medicine_id
		ORDER BY p.id DESC LIMIT ?`), half)
	if err != nil {
		return nil, err
	}

	sales := []Transaction{}
	err = r.db.Select(&sales, r.db.Rebind(`SELECT 'sale' AS kind, s.sale_date AS date,
		COALESCE(m.name, '') AS medicine_name, s.quantity, s.total
		FROM sales s LEFT JOIN medicines m ON m.id = s.medicine_id
		ORDER BY s.id DESC LIMIT ?`), half)
	if err != nil {
		return nil, err
	}

	feed := append(purchases, sales...)
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date > feed[j].Date
	})
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}

// SalesSummary totals sale revenue between the optional start and end
// dates (inclusive, YYYY-MM-DD).
type SalesSummary struct {
	Revenue float64 `db:"revenue" json:"revenue"`
	Count   int64   `db:"count" json:"sales_count"`
}

func (r *Reports) SalesBetween(startDate, endDate string) (SalesSummary, error) {
	var (
		args    []any
		clauses []string
	)
	if strings.TrimSpace(startDate) != "" {
		parsed, err := parseDate("start_date", startDate)
		if err != nil {
			return SalesSummary{}, err
		}
		clauses = append(clauses, "sale_date >= ?")
		args = append(args, parsed)
	}
	if strings.TrimSpace(endDate) != "" {
		parsed, err := parseDate("end_date", endDate)
		if err != nil {
			return SalesSummary{}, err
		}
		clauses = append(clauses, "sale_date <= ?")
		args = append(args, parsed)
	}

	query := `SELECT COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS count FROM sales`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	var summary SalesSummary
	err := r.db.Get(&summary, r.db.Rebind(query), args...)
	return summary, err
}
