package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescope/internal/errors"
)

func TestParseCSV(t *testing.T) {
	data := []byte(`product_id,product_name,category,units_sold,sale_date
1,Product 1,Electronics,23,2023-01-01
2,Product 2,Clothing,17.5,2023-01-02
`)

	table, err := ParseCSV(data)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	first := table.Rows[0]
	assert.Equal(t, 1, first.ProductID)
	assert.Equal(t, "Product 1", first.ProductName)
	assert.Equal(t, "Electronics", first.Category)
	assert.Equal(t, 23.0, first.UnitsSold)
	assert.True(t, first.SaleDate.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, 17.5, table.Rows[1].UnitsSold)
}

func TestParseCSVNormalizesHeaders(t *testing.T) {
	data := []byte("Product ID,Category,Units Sold\n1,Home,12\n")

	table, err := ParseCSV(data)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, 12.0, table.Rows[0].UnitsSold)
	assert.Equal(t, "Home", table.Rows[0].Category)
}

func TestParseCSVOptionalColumnsAbsent(t *testing.T) {
	data := []byte("category,units_sold\nSports,9\n")

	table, err := ParseCSV(data)
	require.NoError(t, err)

	rec := table.Rows[0]
	assert.Zero(t, rec.ProductID)
	assert.Empty(t, rec.ProductName)
	assert.True(t, rec.SaleDate.IsZero())
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing units_sold column", "product_id,category\n1,Home\n"},
		{"missing category column", "product_id,units_sold\n1,10\n"},
		{"non-numeric units_sold", "category,units_sold\nHome,lots\n"},
		{"empty units_sold", "category,units_sold\nHome,\n"},
		{"malformed sale_date", "category,units_sold,sale_date\nHome,10,January 1st\n"},
		{"non-integer product_id", "product_id,category,units_sold\nabc,Home,10\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
		})
	}
}
