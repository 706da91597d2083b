package domain

type Purchase struct {
	ID           int64   `db:"id" json:"id"`
	MedicineID   int64   `db:"medicine_id" json:"medicine_id"`
	MedicineName string  `db:"medicine_name" json:"medicine_name"`
	Supplier     string  `db:"supplier" json:"supplier"`
	Quantity     int64   `db:"quantity" json:"quantity"`
	UnitPrice    float64 `db:"unit_price" json:"unit_price"`
	Total        float64 `db:"total" json:"total"`
	PurchaseDate string  `db:"purchase_date" json:"purchase_date"`
	CreatedAt    string  `db:"created_at" json:"created_at,omitempty"`
}
