package ingest

import (
	"strconv"
	"strings"
	"time"

	"salescope/domain/sales"
	"salescope/internal/errors"
)

// Column names of the expected upload schema. units_sold and category are
// required; the rest are optional and left zero-valued when absent.
const (
	colProductID   = "product_id"
	colProductName = "product_name"
	colCategory    = "category"
	colUnitsSold   = "units_sold"
	colSaleDate    = "sale_date"
)

const saleDateLayout = "2006-01-02"

// buildTable converts a header row plus data rows into a sales table. Any
// malformed value fails the whole parse; there is no best-effort ingestion.
func buildTable(header []string, rows [][]string) (sales.Table, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[normalizeHeader(h)] = i
	}

	if _, ok := index[colUnitsSold]; !ok {
		return sales.Table{}, errors.ParseErrorf("missing required column %q", colUnitsSold)
	}
	if _, ok := index[colCategory]; !ok {
		return sales.Table{}, errors.ParseErrorf("missing required column %q", colCategory)
	}

	records := make([]sales.Record, 0, len(rows))
	for rowNum, row := range rows {
		rec, err := buildRecord(index, row)
		if err != nil {
			return sales.Table{}, errors.Wrapf(err, "row %d", rowNum+2) // +2: header row plus 1-based
		}
		records = append(records, rec)
	}
	return sales.NewTable(records), nil
}

func buildRecord(index map[string]int, row []string) (sales.Record, error) {
	var rec sales.Record

	units := cell(index, row, colUnitsSold)
	if units == "" {
		return rec, errors.ParseErrorf("%s is empty", colUnitsSold)
	}
	unitsVal, err := strconv.ParseFloat(units, 64)
	if err != nil {
		return rec, errors.ParseErrorf("%s %q is not numeric", colUnitsSold, units)
	}
	rec.UnitsSold = unitsVal
	rec.Category = cell(index, row, colCategory)

	if v := cell(index, row, colProductID); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return rec, errors.ParseErrorf("%s %q is not an integer", colProductID, v)
		}
		rec.ProductID = id
	}
	rec.ProductName = cell(index, row, colProductName)

	if v := cell(index, row, colSaleDate); v != "" {
		date, err := time.Parse(saleDateLayout, v)
		if err != nil {
			return rec, errors.ParseErrorf("%s %q is not an ISO 8601 date", colSaleDate, v)
		}
		rec.SaleDate = date
	}

	return rec, nil
}

func cell(index map[string]int, row []string, column string) string {
	i, ok := index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// normalizeHeader converts "Units Sold" to "units_sold".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}
