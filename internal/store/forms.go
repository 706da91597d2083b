package store

import (
	"strconv"
	"strings"
	"time"
)

// The presentation layer submits raw string form fields. Each form parses
// and validates exactly once, here, before any value reaches a query.

const dateLayout = "2006-01-02"

// MedicineForm carries the add/edit medicine fields as entered.
type MedicineForm struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	CostPrice  string `json:"cost_price"`
	SalePrice  string `json:"sale_price"`
	Stock      string `json:"stock"`
	ExpiryDate string `json:"expiry_date"`
}

type medicineFields struct {
	name       string
	category   string
	costPrice  float64
	salePrice  float64
	stock      int64
	expiryDate string
}

func (f MedicineForm) parse() (medicineFields, error) {
	var out medicineFields
	var err error
	if out.name, err = requireText("name", f.Name); err != nil {
		return out, err
	}
	if out.category, err = requireText("category", f.Category); err != nil {
		return out, err
	}
	if out.costPrice, err = parsePrice("cost_price", f.CostPrice); err != nil {
		return out, err
	}
	if out.salePrice, err = parsePrice("sale_price", f.SalePrice); err != nil {
		return out, err
	}
	if out.stock, err = parseCount("stock", f.Stock, false); err != nil {
		return out, err
	}
	if out.expiryDate, err = parseDate("expiry_date", f.ExpiryDate); err != nil {
		return out, err
	}
	return out, nil
}

// EmployeeForm carries the add/edit employee fields as entered.
type EmployeeForm struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Salary   string `json:"salary"`
	HireDate string `json:"hire_date"`
}

type employeeFields struct {
	name     string
	role     string
	address  string
	phone    string
	salary   float64
	hireDate string
}

func (f EmployeeForm) parse() (employeeFields, error) {
	var out employeeFields
	var err error
	if out.name, err = requireText("name", f.Name); err != nil {
		return out, err
	}
	if out.role, err = requireText("role", f.Role); err != nil {
		return out, err
	}
	if out.address, err = requireText("address", f.Address); err != nil {
		return out, err
	}
	if out.phone, err = requireText("phone", f.Phone); err != nil {
		return out, err
	}
	if out.salary, err = parsePrice("salary", f.Salary); err != nil {
		return out, err
	}
	if out.hireDate, err = parseDate("hire_date", f.HireDate); err != nil {
		return out, err
	}
	return out, nil
}

// PurchaseForm carries the record/edit purchase fields as entered.
type PurchaseForm struct {
	MedicineID   string `json:"medicine_id"`
	Supplier     string `json:"supplier"`
	Quantity     string `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	PurchaseDate string `json:"purchase_date"`
}

type purchaseFields struct {
	medicineID   int64
	supplier     string
	quantity     int64
	unitPrice    float64
	purchaseDate string
}

func (f PurchaseForm) parse() (purchaseFields, error) {
	var out purchaseFields
	var err error
	if out.medicineID, err = parseID("medicine_id", f.MedicineID); err != nil {
		return out, err
	}
	if out.supplier, err = requireText("supplier", f.Supplier); err != nil {
		return out, err
	}
	if out.quantity, err = parseCount("quantity", f.Quantity, true); err != nil {
		return out, err
	}
	if out.unitPrice, err = parsePrice("unit_price", f.UnitPrice); err != nil {
		return out, err
	}
	if out.purchaseDate, err = parseDate("purchase_date", f.PurchaseDate); err != nil {
		return out, err
	}
	return out, nil
}

// SaleForm carries the record/edit sale fields as entered. The unit price is
// absent on purpose: the ledger reads the medicine's current sale price.
type SaleForm struct {
	MedicineID string `json:"medicine_id"`
	EmployeeID string `json:"employee_id"`
	Buyer      string `json:"buyer"`
	Quantity   string `json:"quantity"`
	SaleDate   string `json:"sale_date"`
}

type saleFields struct {
	medicineID int64
	employeeID int64
	buyer      string
	quantity   int64
	saleDate   string
}

func (f SaleForm) parse() (saleFields, error) {
	var out saleFields
	var err error
	if out.medicineID, err = parseID("medicine_id", f.MedicineID); err != nil {
		return out, err
	}
	if out.employeeID, err = parseID("employee_id", f.EmployeeID); err != nil {
		return out, err
	}
	if out.buyer, err = requireText("buyer", f.Buyer); err != nil {
		return out, err
	}
	if out.quantity, err = parseCount("quantity", f.Quantity, true); err != nil {
		return out, err
	}
	if out.saleDate, err = parseDate("sale_date", f.SaleDate); err != nil {
		return out, err
	}
	return out, nil
}

func requireText(field, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", validationErr(field, "is required")
	}
	return trimmed, nil
}

func parsePrice(field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, validationErr(field, "is required")
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, validationErr(field, "must be a number")
	}
	if val < 0 {
		return 0, validationErr(field, "must not be negative")
	}
	return val, nil
}

func parseCount(field, raw string, positive bool) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, validationErr(field, "is required")
	}
	val, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, validationErr(field, "must be a whole number")
	}
	if positive && val <= 0 {
		return 0, validationErr(field, "must be greater than zero")
	}
	if val < 0 {
		return 0, validationErr(field, "must not be negative")
	}
	return val, nil
}

func parseID(field, raw string) (int64, error) {
	val, err := parseCount(field, raw, true)
	if err != nil {
		return 0, validationErr(field, "must be a valid id")
	}
	return val, nil
}

func parseDate(field, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", validationErr(field, "is required")
	}
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return "", validationErr(field, "must be a date in YYYY-MM-DD format")
	}
	return parsed.Format(dateLayout), nil
}
