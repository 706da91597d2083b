package store

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	staff := NewDirectory(db)
	procurement := NewProcurement(db)
	sales := NewSales(db)
	reports := NewReports(db)

	med := createRandomMedicine(t, catalog, 50)
	createRandomMedicine(t, catalog, 10)
	emp := createRandomEmployee(t, staff)

	today := time.Now().Format(dateLayout)
	form := purchaseForm(med.ID, "5")
	form.PurchaseDate = today
	_, err := procurement.Record(form)
	require.NoError(t, err)

	// A purchase from another month does not count.
	old := purchaseForm(med.ID, "5")
	old.PurchaseDate = "2020-01-10"
	_, err = procurement.Record(old)
	require.NoError(t, err)

	sf := saleForm(med.ID, emp.ID, "2")
	sf.SaleDate = today
	_, err = sales.Record(sf)
	require.NoError(t, err)

	stats, err := reports.Stats()
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Medicines)
	require.Equal(t, int64(1), stats.Employees)
	require.Equal(t, int64(1), stats.PurchasesThisMonth)
	require.Equal(t, int64(1), stats.SalesThisMonth)
}

func TestRecentTransactions(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	staff := NewDirectory(db)
	procurement := NewProcurement(db)
	sales := NewSales(db)
	reports := NewReports(db)

	med := createRandomMedicine(t, catalog, 100)
	emp := createRandomEmployee(t, staff)

	pf := purchaseForm(med.ID, "10")
	pf.PurchaseDate = "2025-08-01"
	_, err := procurement.Record(pf)
	require.NoError(t, err)

	sf := saleForm(med.ID, emp.ID, "3")
	sf.SaleDate = "2025-08-20"
	_, err = sales.Record(sf)
	require.NoError(t, err)

	feed, err := reports.Recent(10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	require.Equal(t, "sale", feed[0].Kind)
	require.Equal(t, "2025-08-20", feed[0].Date)
	require.Equal(t, med.Name, feed[0].MedicineName)
	require.Equal(t, "purchase", feed[1].Kind)
}

func TestSalesBetween(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	staff := NewDirectory(db)
	sales := NewSales(db)
	reports := NewReports(db)

	med := createRandomMedicine(t, catalog, 100)
	emp := createRandomEmployee(t, staff)

	for i, date := range []string{"2025-07-01", "2025-08-10", "2025-08-25"} {
		form := saleForm(med.ID, emp.ID, strconv.Itoa(i+1))
		form.SaleDate = date
		_, err := sales.Record(form)
		require.NoError(t, err)
	}

	all, err := reports.SalesBetween("", "")
	require.NoError(t, err)
	require.Equal(t, int64(3), all.Count)
	require.Equal(t, 6*med.SalePrice, all.Revenue)

	august, err := reports.SalesBetween("2025-08-01", "2025-08-31")
	require.NoError(t, err)
	require.Equal(t, int64(2), august.Count)
	require.Equal(t, 5*med.SalePrice, august.Revenue)

	var verr *ValidationError
	_, err = reports.SalesBetween("August 1st", "")
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "start_date", verr.Field)
}
