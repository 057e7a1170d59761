package ingest

import (
	"bytes"
	"encoding/csv"
	"io"

	"salescope/domain/sales"
	"salescope/internal/errors"
)

// ParseCSV parses comma-separated bytes into a sales table. The first row is
// the header. Parse failures surface as PARSE_ERROR so the UI can report them
// in place of the affected outputs.
func ParseCSV(data []byte) (sales.Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return sales.Table{}, errors.ParseError("file is empty")
	}
	if err != nil {
		return sales.Table{}, errors.ParseErrorf("failed to read header: %v", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sales.Table{}, errors.ParseErrorf("malformed CSV: %v", err)
		}
		rows = append(rows, row)
	}

	return buildTable(header, rows)
}
