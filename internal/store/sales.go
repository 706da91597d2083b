package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"apotek/m/domain"
)

// Sales records outgoing stock events. The unit price is always the
// medicine's current sale price, read inside the transaction, and a sale
// whose quantity exceeds the stock on hand is rejected without mutating
// anything.
type Sales struct {
	db *sqlx.DB
}

func NewSales(db *sqlx.DB) *Sales {
	return &Sales{db: db}
}

const saleColumns = `s.id, s.medicine_id, COALESCE(m.name, '') AS medicine_name,
	s.employee_id, COALESCE(e.name, '') AS employee_name, s.buyer,
	s.quantity, s.unit_price, s.total, s.sale_date, s.created_at`

// Record validates the form, prices the sale off the medicine's current
// sale price, and inserts the sale row together with the stock decrement in
// one transaction. Insufficient stock aborts the whole transaction and the
// returned error carries the available quantity.
func (s *Sales) Record(form SaleForm) (domain.Sale, error) {
	fields, err := form.parse()
	if err != nil {
		return domain.Sale{}, err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return domain.Sale{}, err
	}
	defer tx.Rollback()

	var med domain.Medicine
	err = tx.Get(&med, tx.Rebind(`SELECT `+medicineColumns+` FROM medicines WHERE id = ?`), fields.medicineID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sale{}, &NotFoundError{Entity: "medicine", ID: fields.medicineID}
	}
	if err != nil {
		return domain.Sale{}, err
	}
	if err := employeeExists(tx, fields.employeeID); err != nil {
		return domain.Sale{}, err
	}

	if err := adjustStock(tx, fields.medicineID, -fields.quantity); err != nil {
		return domain.Sale{}, err
	}

	total := float64(fields.quantity) * med.SalePrice
	var id int64
	err = tx.QueryRowx(tx.Rebind(`INSERT INTO sales (medicine_id, employee_id, buyer, quantity, unit_price, total, sale_date)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`),
		fields.medicineID, fields.employeeID, fields.buyer, fields.quantity, med.SalePrice, total, fields.saleDate).Scan(&id)
	if err != nil {
		return domain.Sale{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Sale{}, err
	}
	return s.Get(id)
}

func (s *Sales) Get(id int64) (domain.Sale, error) {
	var sale domain.Sale
	err := s.db.Get(&sale, s.db.Rebind(`SELECT `+saleColumns+` FROM sales s
		LEFT JOIN medicines m ON m.id = s.medicine_id
		LEFT JOIN employees e ON e.id = s.employee_id WHERE s.id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sale{}, &NotFoundError{Entity: "sale", ID: id}
	}
	return sale, err
}

// Edit overwrites the stored fields, repricing off the referenced
// medicine's current sale price. No stock-sufficiency check is performed
// and no stock delta is applied; see DESIGN.md.
func (s *Sales) Edit(id int64, form SaleForm) (domain.Sale, error) {
	fields, err := form.parse()
	if err != nil {
		return domain.Sale{}, err
	}

	var med domain.Medicine
	err = s.db.Get(&med, s.db.Rebind(`SELECT `+medicineColumns+` FROM medicines WHERE id = ?`), fields.medicineID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sale{}, &NotFoundError{Entity: "medicine", ID: fields.medicineID}
	}
	if err != nil {
		return domain.Sale{}, err
	}
	if err := employeeExists(s.db, fields.employeeID); err != nil {
		return domain.Sale{}, err
	}

	total := float64(fields.quantity) * med.SalePrice
	res, err := s.db.Exec(s.db.Rebind(`UPDATE sales SET medicine_id = ?, employee_id = ?, buyer = ?, quantity = ?, unit_price = ?, total = ?, sale_date = ?
		WHERE id = ?`),
		fields.medicineID, fields.employeeID, fields.buyer, fields.quantity, med.SalePrice, total, fields.saleDate, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Sale{}, &NotFoundError{Entity: "sale", ID: id}
	}
	return s.Get(id)
}

// Delete removes the row without restoring the sold stock.
func (s *Sales) Delete(id int64) error {
	res, err := s.db.Exec(s.db.Rebind(`DELETE FROM sales WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "sale", ID: id}
	}
	return nil
}

func (s *Sales) List() ([]domain.Sale, error) {
	sales := []domain.Sale{}
	err := s.db.Select(&sales, `SELECT `+saleColumns+` FROM sales s
		LEFT JOIN medicines m ON m.id = s.medicine_id
		LEFT JOIN employees e ON e.id = s.employee_id ORDER BY s.id DESC`)
	return sales, err
}

func employeeExists(e sqlx.Ext, id int64) error {
	var found int64
	err := sqlx.Get(e, &found, e.Rebind(`SELECT id FROM employees WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: "employee", ID: id}
	}
	return err
}
