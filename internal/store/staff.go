package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"apotek/m/domain"
)

// Directory owns the employee records referenced by sales.
type Directory struct {
	db *sqlx.DB
}

func NewDirectory(db *sqlx.DB) *Directory {
	return &Directory{db: db}
}

const employeeColumns = `id, name, role, address, phone, salary, hire_date, created_at`

func (d *Directory) Create(form EmployeeForm) (domain.Employee, error) {
	fields, err := form.parse()
	if err != nil {
		return domain.Employee{}, err
	}

	var id int64
	err = d.db.QueryRowx(d.db.Rebind(`INSERT INTO employees (name, role, address, phone, salary, hire_date)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		fields.name, fields.role, fields.address, fields.phone, fields.salary, fields.hireDate).Scan(&id)
	if err != nil {
		return domain.Employee{}, err
	}
	return d.Get(id)
}

func (d *Directory) Get(id int64) (domain.Employee, error) {
	var emp domain.Employee
	err := d.db.Get(&emp, d.db.Rebind(`SELECT `+employeeColumns+` FROM employees WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Employee{}, &NotFoundError{Entity: "employee", ID: id}
	}
	return emp, err
}

func (d *Directory) Update(id int64, form EmployeeForm) (domain.Employee, error) {
	fields, err := form.parse()
	if err != nil {
		return domain.Employee{}, err
	}

	res, err := d.db.Exec(d.db.Rebind(`UPDATE employees SET name = ?, role = ?, address = ?, phone = ?, salary = ?, hire_date = ?
		WHERE id = ?`),
		fields.name, fields.role, fields.address, fields.phone, fields.salary, fields.hireDate, id)
	if err != nil {
		return domain.Employee{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Employee{}, &NotFoundError{Entity: "employee", ID: id}
	}
	return d.Get(id)
}

func (d *Directory) Delete(id int64) error {
	res, err := d.db.Exec(d.db.Rebind(`DELETE FROM employees WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "employee", ID: id}
	}
	return nil
}

func (d *Directory) List() ([]domain.Employee, error) {
	employees := []domain.Employee{}
	err := d.db.Select(&employees, `SELECT `+employeeColumns+` FROM employees ORDER BY id DESC`)
	return employees, err
}
