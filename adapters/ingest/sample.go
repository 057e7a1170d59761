package ingest

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"salescope/domain/sales"
)

// SampleConfig configures the deterministic synthetic sample.
type SampleConfig struct {
	Seed        int64
	Rows        int
	PoissonMean float64
	StartDate   time.Time
	Categories  []string
}

// DefaultSampleConfig returns the canonical 20-row sample configuration.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{
		Seed:        42,
		Rows:        20,
		PoissonMean: 20.0,
		StartDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Categories:  sales.DefaultCategories,
	}
}

// SampleGenerator produces the synthetic sales table used when no file has
// been uploaded.
type SampleGenerator struct {
	config SampleConfig
}

// NewSampleGenerator creates a generator for the given configuration.
func NewSampleGenerator(config SampleConfig) *SampleGenerator {
	return &SampleGenerator{config: config}
}

// Generate builds the sample table. The draw order is fixed so results are
// identical across invocations for the same seed: one category index per row
// first, then one Poisson count per row. Sale dates are a consecutive daily
// sequence from StartDate.
func (g *SampleGenerator) Generate() sales.Table {
	rng := rand.New(rand.NewSource(g.config.Seed))

	categories := make([]string, g.config.Rows)
	for i := range categories {
		categories[i] = g.config.Categories[rng.Intn(len(g.config.Categories))]
	}

	counts := make([]float64, g.config.Rows)
	for i := range counts {
		counts[i] = poisson(rng, g.config.PoissonMean)
	}

	rows := make([]sales.Record, g.config.Rows)
	for i := range rows {
		rows[i] = sales.Record{
			ProductID:   i + 1,
			ProductName: fmt.Sprintf("Product %d", i+1),
			Category:    categories[i],
			UnitsSold:   counts[i],
			SaleDate:    g.config.StartDate.AddDate(0, 0, i),
		}
	}
	return sales.NewTable(rows)
}

// poisson draws one Poisson-distributed count via Knuth's inversion: multiply
// uniform variates until the product drops below e^-lambda. One uniform draw
// per event keeps the consumption of the seed stream deterministic.
func poisson(rng *rand.Rand, lambda float64) float64 {
	threshold := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= threshold {
			return float64(k)
		}
		k++
	}
}
