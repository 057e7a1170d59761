package charts

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"salescope/domain/sales"
)

// Boxplot renders one box of units_sold per category, categories sorted
// left to right. An empty table renders as a labeled placeholder.
func Boxplot(t sales.Table) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Units Sold by Category"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Units Sold"

	groups := t.UnitsByCategory()
	if len(groups) == 0 {
		return writePNG(p)
	}

	labels := make([]string, 0, len(groups))
	for c := range groups {
		labels = append(labels, c)
	}
	sort.Strings(labels)

	for i, label := range labels {
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(groups[label]))
		if err != nil {
			return nil, err
		}
		box.FillColor = paletteColor(i)
		p.Add(box)
	}
	p.NominalX(labels...)

	return writePNG(p)
}
