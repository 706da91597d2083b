package domain

type Medicine struct {
	ID         int64   `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	Category   string  `db:"category" json:"category"`
	CostPrice  float64 `db:"cost_price" json:"cost_price"`
	SalePrice  float64 `db:"sale_price" json:"sale_price"`
	Stock      int64   `db:"stock" json:"stock"`
	ExpiryDate string  `db:"expiry_date" json:"expiry_date"`
	CreatedAt  string  `db:"created_at" json:"created_at,omitempty"`
}
