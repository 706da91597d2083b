package domain

type Sale struct {
	ID           int64   `db:"id" json:"id"`
	MedicineID   int64   `db:"medicine_id" json:"medicine_id"`
	MedicineName string  `db:"medicine_name" json:"medicine_name"`
	EmployeeID   int64   `db:"employee_id" json:"employee_id"`
	EmployeeName string  `db:"employee_name" json:"employee_name"`
	Buyer        string  `db:"buyer" json:"buyer"`
	Quantity     int64   `db:"quantity" json:"quantity"`
	UnitPrice    float64 `db:"unit_price" json:"unit_price"`
	Total        float64 `db:"total" json:"total"`
	SaleDate     string  `db:"sale_date" json:"sale_date"`
	CreatedAt    string  `db:"created_at" json:"created_at,omitempty"`
}
