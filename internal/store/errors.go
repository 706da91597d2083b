package store

import "fmt"

// ValidationError reports a form field that failed to parse or violated a
// range rule. The caller resubmits with corrected input; nothing is retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError reports a reference to a row that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InsufficientStockError rejects a sale whose quantity exceeds the stock on
// hand. Available carries the current stock for display.
type InsufficientStockError struct {
	MedicineID int64
	Available  int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for medicine %d: %d available", e.MedicineID, e.Available)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
