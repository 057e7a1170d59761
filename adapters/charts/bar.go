package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"salescope/domain/sales"
)

// Bar renders total units_sold per category, one bar per sorted category
// label. Aggregation happens in the domain layer before any drawing.
func Bar(t sales.Table) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Total Units Sold per Category"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Total Units Sold"

	labels, totals := t.TotalsByCategory()
	if len(labels) == 0 {
		return writePNG(p)
	}

	bars, err := plotter.NewBarChart(plotter.Values(totals), vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = 0
	bars.Color = paletteColor(0)
	p.Add(bars)
	p.NominalX(labels...)

	return writePNG(p)
}
