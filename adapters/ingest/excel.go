package ingest

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"salescope/domain/sales"
	"salescope/internal/errors"
)

// ParseExcel parses the first sheet of an .xlsx/.xls upload into a sales
// table. Same schema and all-or-nothing policy as the CSV path.
func ParseExcel(data []byte) (sales.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return sales.Table{}, errors.ParseErrorf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return sales.Table{}, errors.ParseError("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return sales.Table{}, errors.ParseErrorf("failed to read sheet %q: %v", sheets[0], err)
	}
	if len(rows) == 0 {
		return sales.Table{}, errors.ParseError("file is empty")
	}

	return buildTable(rows[0], rows[1:])
}
