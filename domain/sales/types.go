package sales

import (
	"sort"
	"time"
)

// DefaultCategories is the category label set used by the synthetic sample
// and offered as filter options in the UI. Uploaded files may carry other
// labels; nothing below depends on membership in this set.
var DefaultCategories = []string{"Electronics", "Clothing", "Home", "Sports"}

// Record is one sales row. ProductID is not required to be unique across
// uploads; UnitsSold must be numeric for downstream statistics to be defined.
type Record struct {
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	UnitsSold   float64   `json:"units_sold"`
	SaleDate    time.Time `json:"sale_date"`
}

// Table is an ordered sequence of records, insertion order preserved from the
// source. Tables are never mutated in place; filtering produces a new table.
type Table struct {
	Rows []Record `json:"rows"`
}

// NewTable creates a table over the given rows.
func NewTable(rows []Record) Table {
	return Table{Rows: rows}
}

// Len returns the row count.
func (t Table) Len() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// UnitsSold returns the units_sold column as a float slice, in row order.
func (t Table) UnitsSold() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.UnitsSold
	}
	return out
}

// FilterCategories returns a new table retaining only rows whose category is
// in the given set, preserving relative order. An empty or nil set means no
// filtering, not "exclude all". Filtering is idempotent.
func (t Table) FilterCategories(categories []string) Table {
	if len(categories) == 0 {
		return Table{Rows: append([]Record(nil), t.Rows...)}
	}

	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}

	rows := make([]Record, 0, len(t.Rows))
	for _, r := range t.Rows {
		if allowed[r.Category] {
			rows = append(rows, r)
		}
	}
	return Table{Rows: rows}
}

// Categories returns the distinct category labels present, sorted.
func (t Table) Categories() []string {
	seen := make(map[string]bool)
	for _, r := range t.Rows {
		seen[r.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// UnitsByCategory groups units_sold values by category, row order preserved
// within each group.
func (t Table) UnitsByCategory() map[string][]float64 {
	out := make(map[string][]float64)
	for _, r := range t.Rows {
		out[r.Category] = append(out[r.Category], r.UnitsSold)
	}
	return out
}

// TotalsByCategory returns sorted category labels and the sum of units_sold
// within each, aggregated before any rendering happens.
func (t Table) TotalsByCategory() ([]string, []float64) {
	sums := make(map[string]float64)
	for _, r := range t.Rows {
		sums[r.Category] += r.UnitsSold
	}

	labels := make([]string, 0, len(sums))
	for c := range sums {
		labels = append(labels, c)
	}
	sort.Strings(labels)

	totals := make([]float64, len(labels))
	for i, c := range labels {
		totals[i] = sums[c]
	}
	return labels, totals
}
