package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"apotek/m/domain"
)

// Procurement records incoming stock events. A committed purchase and its
// stock increment persist together or not at all.
type Procurement struct {
	db *sqlx.DB
}

func NewProcurement(db *sqlx.DB) *Procurement {
	return &Procurement{db: db}
}

const purchaseColumns = `p.id, p.medicine_id, COALESCE(m.name, '') AS medicine_name, p.supplier,
	p.quantity, p.unit_price, p.total, p.purchase_date, p.created_at`

// Record validates the form, computes the total, and inserts the purchase
// row together with the stock increment in one transaction.
func (p *Procurement) Record(form PurchaseForm) (domain.Purchase, error) {
	fields, err := form.parse()
	if err != nil {
		return domain.Purchase{}, err
	}

	tx, err := p.db.Beginx()
	if err != nil {
		return domain.Purchase{}, err
	}
	defer tx.Rollback()

	if err := medicineExists(tx, fields.medicineID); err != nil {
		return domain.Purchase{}, err
	}

	total := float64(fields.quantity) * fields.unitPrice
	var id int64
	err = tx.QueryRowx(tx.Rebind(`INSERT INTO purchases (medicine_id, supplier, quantity, unit_price, total, purchase_date)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		fields.medicineID, fields.supplier, fields.quantity, fields.unitPrice, total, fields.purchaseDate).Scan(&id)
	if err != nil {
		return domain.Purchase{}, err
	}

	if err := adjustStock(tx, fields.medicineID, fields.quantity); err != nil {
		return domain.Purchase{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Purchase{}, err
	}
	return p.Get(id)
}

func (p *Procurement) Get(id int64) (domain.Purchase, error) {
	var purchase domain.Purchase
	err := p.db.Get(&purchase, p.db.Rebind(`SELECT `+purchaseColumns+` FROM purchases p
		LEFT JOIN medicines m ON m.id = p.medicine_id WHERE p.id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Purchase{}, &NotFoundError{Entity: "purchase", ID: id}
	}
	return purchase, err
}

// Edit overwrites the stored fields and recomputes the total. The stock
// delta between the old and new quantity is deliberately not applied; see
// DESIGN.md.
func (p *Procurement) Edit(id int64, form PurchaseForm) (domain.Purchase, error) {
	fields, err := form.parse()
	if err != nil {
		return domain.Purchase{}, err
	}
	if err := medicineExists(p.db, fields.medicineID); err != nil {
		return domain.Purchase{}, err
	}

	total := float64(fields.quantity) * fields.unitPrice
	res, err := p.db.Exec(p.db.Rebind(`UPDATE purchases SET medicine_id = ?, supplier = ?, quantity = ?, unit_price = ?, total = ?, purchase_date = ?
		WHERE id = ?`),
		fields.medicineID, fields.supplier, fields.quantity, fields.unitPrice, total, fields.purchaseDate, id)
	if err != nil {
		return domain.Purchase{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Purchase{}, &NotFoundError{Entity: "purchase", ID: id}
	}
	return p.Get(id)
}

// Delete removes the row without reversing the stock increment.
func (p *Procurement) Delete(id int64) error {
	res, err := p.db.Exec(p.db.Rebind(`DELETE FROM purchases WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "purchase", ID: id}
	}
	return nil
}

func (p *Procurement) List() ([]domain.Purchase, error) {
	purchases := []domain.Purchase{}
	err := p.db.Select(&purchases, `SELECT `+purchaseColumns+` FROM purchases p
		LEFT JOIN medicines m ON m.id = p.medicine_id ORDER BY p.id DESC`)
	return purchases, err
}

func medicineExists(e sqlx.Ext, id int64) error {
	var found int64
	err := sqlx.Get(e, &found, e.Rebind(`SELECT id FROM medicines WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: "medicine", ID: id}
	}
	return err
}
