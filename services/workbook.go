package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// openFirstSheet opens workbook bytes and returns the file together with the
// name of its first sheet. The caller owns closing the file.
func openFirstSheet(data []byte) (*excelize.File, string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("open workbook: %w", err)
	}
	return f, f.GetSheetName(0), nil
}

// rawCell reads the unformatted cell value and its declared type at the
// 1-based row/column. Number formats are not applied, so a cell displayed as
// "9.300" comes back as its stored value "9300".
func rawCell(f *excelize.File, sheet string, row, col int) (string, excelize.CellType) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", excelize.CellTypeUnset
	}
	raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", excelize.CellTypeUnset
	}
	kind, err := f.GetCellType(sheet, cell)
	if err != nil {
		kind = excelize.CellTypeUnset
	}
	return raw, kind
}

// maxColumns returns the widest row length in the grid.
func maxColumns(grid [][]string) int {
	max := 0
	for _, row := range grid {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
