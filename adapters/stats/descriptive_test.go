package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescope/domain/sales"
)

func tableOf(values ...float64) sales.Table {
	rows := make([]sales.Record, len(values))
	for i, v := range values {
		rows[i] = sales.Record{UnitsSold: v}
	}
	return sales.NewTable(rows)
}

func TestDescribe(t *testing.T) {
	summary := Describe(tableOf(18, 19, 20, 21, 22))

	require.Equal(t, 5, summary.Count)
	assert.InDelta(t, 20.0, summary.Mean, 1e-12)
	assert.InDelta(t, 20.0, summary.Median, 1e-12)
	assert.InDelta(t, 18.0, summary.Min, 1e-12)
	assert.InDelta(t, 22.0, summary.Max, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), summary.StdDev, 1e-12)
}

func TestDescribeEmptyTable(t *testing.T) {
	summary := Describe(sales.Table{})

	assert.Equal(t, 0, summary.Count)
	assert.True(t, math.IsNaN(summary.Mean))
	assert.True(t, math.IsNaN(summary.StdDev))
	assert.True(t, math.IsNaN(summary.Min))
	assert.True(t, math.IsNaN(summary.Median))
	assert.True(t, math.IsNaN(summary.Max))
	assert.True(t, math.IsNaN(summary.Mode))
}

func TestDescribeSingleRow(t *testing.T) {
	summary := Describe(tableOf(42))

	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 42.0, summary.Mean)
	assert.True(t, math.IsNaN(summary.StdDev), "sample std dev needs n >= 2")
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"clear winner", []float64{20, 20, 20, 25, 25, 30}, 20},
		{"tie picks smallest", []float64{25, 25, 20, 20, 30}, 20},
		{"all unique picks smallest", []float64{3, 1, 2}, 1},
		{"single value", []float64{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mode(tt.values))
		})
	}
}

func TestModeEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(mode(nil)))
}
