package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return NewTable([]Record{
		{ProductID: 1, Category: "Electronics", UnitsSold: 10},
		{ProductID: 2, Category: "Home", UnitsSold: 5},
		{ProductID: 3, Category: "Electronics", UnitsSold: 7},
		{ProductID: 4, Category: "Sports", UnitsSold: 12},
	})
}

func TestFilterCategoriesSubsetAndOrder(t *testing.T) {
	table := sampleTable()

	filtered := table.FilterCategories([]string{"Electronics"})

	require.Equal(t, 2, filtered.Len())
	assert.Equal(t, 1, filtered.Rows[0].ProductID)
	assert.Equal(t, 3, filtered.Rows[1].ProductID)
}

func TestFilterCategoriesIdempotent(t *testing.T) {
	table := sampleTable()

	once := table.FilterCategories([]string{"Electronics", "Home"})
	twice := once.FilterCategories([]string{"Electronics", "Home"})

	assert.Equal(t, once.Rows, twice.Rows)
}

func TestFilterCategoriesEmptySetKeepsAll(t *testing.T) {
	table := sampleTable()

	filtered := table.FilterCategories(nil)

	assert.Equal(t, table.Rows, filtered.Rows)
}

func TestFilterCategoriesUnknownLabel(t *testing.T) {
	filtered := sampleTable().FilterCategories([]string{"Garden"})
	assert.True(t, filtered.IsEmpty())
}

func TestCategoriesSortedDistinct(t *testing.T) {
	assert.Equal(t, []string{"Electronics", "Home", "Sports"}, sampleTable().Categories())
}

func TestTotalsByCategory(t *testing.T) {
	labels, totals := sampleTable().TotalsByCategory()

	assert.Equal(t, []string{"Electronics", "Home", "Sports"}, labels)
	assert.Equal(t, []float64{17, 5, 12}, totals)
}

func TestUnitsSoldColumn(t *testing.T) {
	assert.Equal(t, []float64{10, 5, 7, 12}, sampleTable().UnitsSold())
}
