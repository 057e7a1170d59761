// Package export encodes the currently displayed table for download.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"salescope/domain/sales"
	apperrors "salescope/internal/errors"
)

var header = []string{"product_id", "product_name", "category", "units_sold", "sale_date"}

const dateLayout = "2006-01-02"

// Encode writes the table as CSV in row order, dates as YYYY-MM-DD (empty for
// a zero date). The output round-trips through the CSV ingestion path.
func Encode(t sales.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, apperrors.Wrap(err, "failed to write csv header")
	}

	for _, r := range t.Rows {
		date := ""
		if !r.SaleDate.IsZero() {
			date = r.SaleDate.Format(dateLayout)
		}
		row := []string{
			strconv.Itoa(r.ProductID),
			r.ProductName,
			r.Category,
			strconv.FormatFloat(r.UnitsSold, 'g', -1, 64),
			date,
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.Wrap(err, "failed to write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(err, "failed to flush csv output")
	}
	return buf.Bytes(), nil
}
