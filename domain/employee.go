package domain

type Employee struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Role      string  `db:"role" json:"role"`
	Address   string  `db:"address" json:"address"`
	Phone     string  `db:"phone" json:"phone"`
	Salary    float64 `db:"salary" json:"salary"`
	HireDate  string  `db:"hire_date" json:"hire_date"`
	CreatedAt string  `db:"created_at" json:"created_at,omitempty"`
}
