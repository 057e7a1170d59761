package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statsadapter "salescope/adapters/stats"
	"salescope/domain/sales"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func chartTable() sales.Table {
	return sales.NewTable([]sales.Record{
		{Category: "Electronics", UnitsSold: 18},
		{Category: "Electronics", UnitsSold: 25},
		{Category: "Home", UnitsSold: 20},
		{Category: "Home", UnitsSold: 22},
		{Category: "Sports", UnitsSold: 15},
		{Category: "Sports", UnitsSold: 30},
		{Category: "Clothing", UnitsSold: 21},
	})
}

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.NotEmpty(t, data)
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestHistogram(t *testing.T) {
	table := chartTable()

	png, err := Histogram(table, statsadapter.Describe(table))
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestHistogramEmptyTable(t *testing.T) {
	png, err := Histogram(sales.Table{}, statsadapter.Describe(sales.Table{}))
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestHistogramConstantValues(t *testing.T) {
	table := sales.NewTable([]sales.Record{
		{Category: "Home", UnitsSold: 20},
		{Category: "Home", UnitsSold: 20},
	})

	png, err := Histogram(table, statsadapter.Describe(table))
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestBoxplot(t *testing.T) {
	png, err := Boxplot(chartTable())
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestBoxplotEmptyTable(t *testing.T) {
	png, err := Boxplot(sales.Table{})
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestBar(t *testing.T) {
	png, err := Bar(chartTable())
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestBarEmptyTable(t *testing.T) {
	png, err := Bar(sales.Table{})
	require.NoError(t, err)
	assertPNG(t, png)
}
