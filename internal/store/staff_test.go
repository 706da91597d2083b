package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	staff := NewDirectory(db)

	created, err := staff.Create(EmployeeForm{
		Name:     "Budi Santoso",
		Role:     "Cashier",
		Address:  "Jl. Kenanga 4",
		Phone:    "082112345678",
		Salary:   "3500000",
		HireDate: "2024-02-15",
	})
	require.NoError(t, err)

	fetched, err := staff.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Budi Santoso", fetched.Name)
	require.Equal(t, "Cashier", fetched.Role)
	require.Equal(t, "Jl. Kenanga 4", fetched.Address)
	require.Equal(t, "082112345678", fetched.Phone)
	require.Equal(t, float64(3500000), fetched.Salary)
	require.Equal(t, "2024-02-15", fetched.HireDate)
}

func TestCreateEmployeeValidation(t *testing.T) {
	db := newTestDB(t)
	staff := NewDirectory(db)

	cases := []struct {
		name  string
		mod   func(*EmployeeForm)
		field string
	}{
		{"missing name", func(f *EmployeeForm) { f.Name = "" }, "name"},
		{"missing role", func(f *EmployeeForm) { f.Role = " " }, "role"},
		{"missing phone", func(f *EmployeeForm) { f.Phone = "" }, "phone"},
		{"salary not a number", func(f *EmployeeForm) { f.Salary = "a lot" }, "salary"},
		{"negative salary", func(f *EmployeeForm) { f.Salary = "-100" }, "salary"},
		{"malformed hire date", func(f *EmployeeForm) { f.HireDate = "15/02/2024" }, "hire_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := EmployeeForm{
				Name:     "Budi",
				Role:     "Cashier",
				Address:  "Jl. Kenanga 4",
				Phone:    "0821",
				Salary:   "3500000",
				HireDate: "2024-02-15",
			}
			tc.mod(&form)

			_, err := staff.Create(form)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestUpdateEmployee(t *testing.T) {
	db := newTestDB(t)
	staff := NewDirectory(db)
	emp := createRandomEmployee(t, staff)

	updated, err := staff.Update(emp.ID, EmployeeForm{
		Name:     emp.Name,
		Role:     "Head Pharmacist",
		Address:  emp.Address,
		Phone:    emp.Phone,
		Salary:   "6000000",
		HireDate: emp.HireDate,
	})
	require.NoError(t, err)
	require.Equal(t, emp.ID, updated.ID)
	require.Equal(t, "Head Pharmacist", updated.Role)
	require.Equal(t, float64(6000000), updated.Salary)

	_, err = staff.Update(emp.ID+999, EmployeeForm{
		Name: "x", Role: "x", Address: "x", Phone: "x", Salary: "1", HireDate: "2024-01-01",
	})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "employee", nf.Entity)
}

func TestDeleteEmployee(t *testing.T) {
	db := newTestDB(t)
	staff := NewDirectory(db)
	emp := createRandomEmployee(t, staff)

	require.NoError(t, staff.Delete(emp.ID))

	var nf *NotFoundError
	_, err := staff.Get(emp.ID)
	require.ErrorAs(t, err, &nf)
	require.ErrorAs(t, staff.Delete(emp.ID), &nf)
}

func TestListEmployeesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	staff := NewDirectory(db)

	first := createRandomEmployee(t, staff)
	second := createRandomEmployee(t, staff)

	employees, err := staff.List()
	require.NoError(t, err)
	require.Len(t, employees, 2)
	require.Equal(t, second.ID, employees[0].ID)
	require.Equal(t, first.ID, employees[1].ID)
}
