package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"salescope/domain/sales"
	domainstats "salescope/domain/stats"
)

const histogramBins = 10

// Histogram renders the units_sold distribution: a 10-bin count histogram,
// a Gaussian kernel density overlay, and dashed vertical markers at the mean,
// median and mode. A table with no spread (empty or constant) renders as a
// titled, axis-labeled placeholder.
func Histogram(t sales.Table, summary domainstats.DescriptiveSummary) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Distribution of Units Sold"
	p.X.Label.Text = "Units Sold"
	p.Y.Label.Text = "Frequency"

	values := t.UnitsSold()
	if len(values) == 0 || summary.Max <= summary.Min {
		return writePNG(p)
	}

	hist, err := plotter.NewHist(plotter.Values(values), histogramBins)
	if err != nil {
		return nil, err
	}
	hist.FillColor = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xb0}
	p.Add(hist)

	peak := 0.0
	for _, bin := range hist.Bins {
		if bin.Weight > peak {
			peak = bin.Weight
		}
	}

	binWidth := (summary.Max - summary.Min) / histogramBins
	if kde := densityCurve(values, summary, binWidth); kde != nil {
		p.Add(kde)
	}

	markers := []struct {
		label string
		value float64
		color color.Color
	}{
		{"Mean", summary.Mean, color.RGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff}},
		{"Median", summary.Median, color.RGBA{R: 0x55, G: 0xa8, B: 0x68, A: 0xff}},
		{"Mode", summary.Mode, color.RGBA{R: 0x81, G: 0x72, B: 0xb4, A: 0xff}},
	}
	for _, m := range markers {
		if math.IsNaN(m.value) {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: m.value, Y: 0},
			{X: m.value, Y: peak},
		})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		line.LineStyle.Color = m.color
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s: %.2f", m.label, m.value), line)
	}
	p.Legend.Top = true

	return writePNG(p)
}

// densityCurve builds a Gaussian kernel density estimate scaled to the count
// histogram's vertical axis. Returns nil when the bandwidth is degenerate.
func densityCurve(values []float64, summary domainstats.DescriptiveSummary, binWidth float64) *plotter.Line {
	n := float64(len(values))
	if math.IsNaN(summary.StdDev) || summary.StdDev <= 0 || binWidth <= 0 {
		return nil
	}

	// Silverman's rule of thumb.
	bandwidth := 1.06 * summary.StdDev * math.Pow(n, -0.2)

	const samples = 200
	span := summary.Max - summary.Min
	lo := summary.Min - 0.5*span
	hi := summary.Max + 0.5*span
	step := (hi - lo) / (samples - 1)

	pts := make(plotter.XYs, samples)
	for i := 0; i < samples; i++ {
		x := lo + float64(i)*step
		density := 0.0
		for _, v := range values {
			z := (x - v) / bandwidth
			density += math.Exp(-0.5 * z * z)
		}
		density /= n * bandwidth * math.Sqrt(2*math.Pi)
		pts[i] = plotter.XY{X: x, Y: density * n * binWidth}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	return line
}
