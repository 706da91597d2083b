package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"apotek/m/internal/database"
	"apotek/m/internal/migrations"
)

const sampleCSV = `name,category,cost_price,sale_price,stock,expiry_date
Paracetamol,Analgesic,1000,2000,100,2027-01-01
Amoxicillin,Antibiotic,2500,4000,40,2026-09-15
,Analgesic,1,2,3,2027-01-01
Broken,Analgesic,notanumber,2,3,2027-01-01
`

func TestLoadMedicines(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(db))

	path := filepath.Join(t.TempDir(), "medicines.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	rows, err := LoadMedicines(db, path)
	require.NoError(t, err)
	require.Equal(t, 2, rows)

	// Re-running skips everything already present.
	rows, err = LoadMedicines(db, path)
	require.NoError(t, err)
	require.Equal(t, 0, rows)

	var count int64
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM medicines`))
	require.Equal(t, int64(2), count)
}

func TestLoadMedicinesMissingFile(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(db))

	rows, err := LoadMedicines(db, filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	require.Equal(t, 0, rows)
}
