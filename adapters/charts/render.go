// Package charts renders the dashboard's three exploratory views as PNG
// images. Rendering is pure: each function takes a table (plus precomputed
// summary where markers are drawn) and returns encoded bytes.
package charts

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	apperrors "salescope/internal/errors"
)

const (
	chartWidth  = 7 * vg.Inch
	chartHeight = 4.5 * vg.Inch
)

// Series palette, one entry per category slot, cycled when a table carries
// more categories than colors.
var palette = []color.Color{
	color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff},
	color.RGBA{R: 0xdd, G: 0x84, B: 0x52, A: 0xff},
	color.RGBA{R: 0x55, G: 0xa8, B: 0x68, A: 0xff},
	color.RGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff},
}

func paletteColor(i int) color.Color {
	return palette[i%len(palette)]
}

// writePNG encodes a finished plot at the standard dashboard size.
func writePNG(p *plot.Plot) ([]byte, error) {
	writer, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, apperrors.RenderError("failed to prepare chart writer", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, apperrors.RenderError("failed to encode chart png", err)
	}
	return buf.Bytes(), nil
}
