package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescope/adapters/ingest"
	"salescope/domain/sales"
)

func TestEncodeRoundTrip(t *testing.T) {
	table := sales.NewTable([]sales.Record{
		{ProductID: 1, ProductName: "Product 1", Category: "Electronics", UnitsSold: 23, SaleDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ProductID: 2, ProductName: "Product 2", Category: "Home", UnitsSold: 17.5, SaleDate: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
	})

	data, err := Encode(table)
	require.NoError(t, err)

	parsed, err := ingest.ParseCSV(data)
	require.NoError(t, err)
	require.Equal(t, table.Len(), parsed.Len())

	for i := range table.Rows {
		assert.Equal(t, table.Rows[i].ProductID, parsed.Rows[i].ProductID)
		assert.Equal(t, table.Rows[i].ProductName, parsed.Rows[i].ProductName)
		assert.Equal(t, table.Rows[i].Category, parsed.Rows[i].Category)
		assert.Equal(t, table.Rows[i].UnitsSold, parsed.Rows[i].UnitsSold)
		assert.True(t, table.Rows[i].SaleDate.Equal(parsed.Rows[i].SaleDate))
	}
}

func TestEncodeHeaderAndOrder(t *testing.T) {
	table := sales.NewTable([]sales.Record{
		{ProductID: 2, Category: "B", UnitsSold: 2},
		{ProductID: 1, Category: "A", UnitsSold: 1},
	})

	data, err := Encode(table)
	require.NoError(t, err)

	lines := string(data)
	assert.Contains(t, lines, "product_id,product_name,category,units_sold,sale_date\n")
	assert.Regexp(t, `(?s)^.*\n2,.*\n1,.*\n$`, lines, "row order must match the table")
}

func TestEncodeZeroDateStaysEmpty(t *testing.T) {
	table := sales.NewTable([]sales.Record{{Category: "A", UnitsSold: 1}})

	data, err := Encode(table)
	require.NoError(t, err)
	assert.Contains(t, string(data), "0,,A,1,\n")
}

func TestEncodeEmptyTable(t *testing.T) {
	data, err := Encode(sales.Table{})
	require.NoError(t, err)
	assert.Equal(t, "product_id,product_name,category,units_sold,sale_date\n", string(data))
}
