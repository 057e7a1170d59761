package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"salescope/domain/sales"
	domainstats "salescope/domain/stats"
)

// Describe computes the descriptive summary over units_sold. An empty table
// yields Count 0 and NaN everywhere else; a single row yields a NaN standard
// deviation. Degenerate inputs are never errors here.
func Describe(t sales.Table) domainstats.DescriptiveSummary {
	values := t.UnitsSold()
	summary := domainstats.DescriptiveSummary{Count: len(values)}

	if len(values) == 0 {
		nan := math.NaN()
		summary.Mean = nan
		summary.StdDev = nan
		summary.Min = nan
		summary.Q25 = nan
		summary.Median = nan
		summary.Q75 = nan
		summary.Max = nan
		summary.Mode = nan
		return summary
	}

	data := mstats.Float64Data(values)

	summary.Mean, _ = mstats.Mean(data)
	summary.Min, _ = mstats.Min(data)
	summary.Max, _ = mstats.Max(data)
	summary.Median, _ = mstats.Median(data)
	summary.Q25, _ = mstats.Percentile(data, 25)
	summary.Q75, _ = mstats.Percentile(data, 75)
	summary.Mode = mode(values)

	if len(values) >= 2 {
		summary.StdDev, _ = mstats.StandardDeviationSample(data)
	} else {
		summary.StdDev = math.NaN()
	}

	return summary
}

// mode returns the smallest value among the most frequent. When every value
// occurs once this degenerates to the minimum, which matches how a sorted
// multimodal result is reported elsewhere in the dashboard.
func mode(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := math.NaN()
	bestCount := 0
	keys := make([]float64, 0, len(counts))
	for v := range counts {
		keys = append(keys, v)
	}
	sort.Float64s(keys)
	for _, v := range keys {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
