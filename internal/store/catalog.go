package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"apotek/m/domain"
)

// Catalog owns the medicine records. Its stock column is the single source
// of truth for availability, and adjustStock is the only code path that
// mutates it.
type Catalog struct {
	db *sqlx.DB
}

func NewCatalog(db *sqlx.DB) *Catalog {
	return &Catalog{db: db}
}

const medicineColumns = `id, name, category, cost_price, sale_price, stock, expiry_date, created_at`

func (c *Catalog) Create(form MedicineForm) (domain.Medicine, error) {
	fields, err := form.parse()
	if err != nil {
		return domain.Medicine{}, err
	}

	var id int64
	err = c.db.QueryRowx(c.db.Rebind(`INSERT INTO medicines (name, category, cost_price, sale_price, stock, expiry_date)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		fields.name, fields.category, fields.costPrice, fields.salePrice, fields.stock, fields.expiryDate).Scan(&id)
	if err != nil {
		return domain.Medicine{}, err
	}
	return c.Get(id)
}

func (c *Catalog) Get(id int64) (domain.Medicine, error) {
	var med domain.Medicine
	err := c.db.Get(&med, c.db.Rebind(`SELECT `+medicineColumns+` FROM medicines WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Medicine{}, &NotFoundError{Entity: "medicine", ID: id}
	}
	return med, err
}

// Update overwrites every field except the id.
func (c *Catalog) Update(id int64, form MedicineForm) (domain.Medicine, error) {
	fields, err := form.parse()
	if err != nil {
		return domain.Medicine{}, err
	}

	res, err := c.db.Exec(c.db.Rebind(`UPDATE medicines SET name = ?, category = ?, cost_price = ?, sale_price = ?, stock = ?, expiry_date = ?
		WHERE id = ?`),
		fields.name, fields.category, fields.costPrice, fields.salePrice, fields.stock, fields.expiryDate, id)
	if err != nil {
		return domain.Medicine{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Medicine{}, &NotFoundError{Entity: "medicine", ID: id}
	}
	return c.Get(id)
}

// Delete removes the medicine. Ledger rows that reference it are left in
// place and render with a blank medicine name.
func (c *Catalog) Delete(id int64) error {
	res, err := c.db.Exec(c.db.Rebind(`DELETE FROM medicines WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "medicine", ID: id}
	}
	return nil
}

// List returns all medicines, most recently created first.
func (c *Catalog) List() ([]domain.Medicine, error) {
	medicines := []domain.Medicine{}
	err := c.db.Select(&medicines, `SELECT `+medicineColumns+` FROM medicines ORDER BY id DESC`)
	return medicines, err
}

// Expiring returns in-stock medicines whose expiry date falls within the
// given number of days, soonest first.
func (c *Catalog) Expiring(days int) ([]domain.Medicine, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, days).Format(dateLayout)
	medicines := []domain.Medicine{}
	err := c.db.Select(&medicines, c.db.Rebind(`SELECT `+medicineColumns+` FROM medicines
		WHERE stock > 0 AND expiry_date <= ? ORDER BY expiry_date ASC`), cutoff)
	return medicines, err
}

// AdjustStock atomically adds delta to the medicine's stock, positive for a
// purchase and negative for a sale. The conditional update plus the
// rows-affected check makes the sufficiency test race-free: no two callers
// can both pass it against the same stale stock value.
func (c *Catalog) AdjustStock(id, delta int64) error {
	return adjustStock(c.db, id, delta)
}

func adjustStock(e sqlx.Ext, id, delta int64) error {
	res, err := e.Exec(e.Rebind(`UPDATE medicines SET stock = stock + ? WHERE id = ? AND stock + ? >= 0`), delta, id, delta)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var stock int64
	err = sqlx.Get(e, &stock, e.Rebind(`SELECT stock FROM medicines WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: "medicine", ID: id}
	}
	if err != nil {
		return err
	}
	return &InsufficientStockError{MedicineID: id, Available: stock}
}
