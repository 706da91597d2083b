package store

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"apotek/m/domain"
	"apotek/m/internal/database"
	"apotek/m/internal/migrations"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Run(db))
	return db
}

func medicineForm(stock int64) MedicineForm {
	return MedicineForm{
		Name:       fmt.Sprintf("Amoxicillin-%d", rand.Intn(1_000_000)),
		Category:   "Antibiotic",
		CostPrice:  "1500",
		SalePrice:  "2500",
		Stock:      strconv.FormatInt(stock, 10),
		ExpiryDate: time.Now().AddDate(1, 0, 0).Format(dateLayout),
	}
}

func createRandomMedicine(t *testing.T, catalog *Catalog, stock int64) domain.Medicine {
	t.Helper()

	form := medicineForm(stock)
	med, err := catalog.Create(form)
	require.NoError(t, err)
	require.NotZero(t, med.ID)
	require.Equal(t, form.Name, med.Name)
	require.Equal(t, stock, med.Stock)
	return med
}

func createRandomEmployee(t *testing.T, staff *Directory) domain.Employee {
	t.Helper()

	emp, err := staff.Create(EmployeeForm{
		Name:     fmt.Sprintf("Siti-%d", rand.Intn(1_000_000)),
		Role:     "Pharmacist",
		Address:  "Jl. Melati 12",
		Phone:    "081234567890",
		Salary:   "4500000",
		HireDate: "2023-06-01",
	})
	require.NoError(t, err)
	require.NotZero(t, emp.ID)
	return emp
}
