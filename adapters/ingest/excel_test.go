package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salescope/internal/errors"
)

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseExcel(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"product_id", "product_name", "category", "units_sold", "sale_date"},
		{1, "Product 1", "Electronics", 23, "2023-01-01"},
		{2, "Product 2", "Home", 14, "2023-01-02"},
	})

	table, err := ParseExcel(data)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, "Electronics", table.Rows[0].Category)
	assert.Equal(t, 23.0, table.Rows[0].UnitsSold)
	assert.Equal(t, 2, table.Rows[1].ProductID)
}

func TestParseExcelMissingColumn(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"product_id", "category"},
		{1, "Electronics"},
	})

	_, err := ParseExcel(data)
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestParseExcelNotAWorkbook(t *testing.T) {
	_, err := ParseExcel([]byte("just some text"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}
