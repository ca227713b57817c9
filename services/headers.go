package services

import "strings"

// FindHeaderRow scans at most scanRows rows of the grid and returns the
// 1-based index of the first row where every keyword group has at least one
// member appearing as a case-insensitive substring of the row's joined cell
// text. Returns 0 when no row within the window qualifies.
//
// The grid is a plain [][]string so the scan stays independent of any
// spreadsheet library; callers feed it the output of excelize GetRows.
func FindHeaderRow(grid [][]string, groups [][]string, scanRows int) int {
	limit := scanRows
	if len(grid) < limit {
		limit = len(grid)
	}

	for r := 1; r <= limit; r++ {
		cells := grid[r-1]
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = strings.ToUpper(normStr(c))
		}
		rowText := strings.Join(parts, " | ")

		ok := true
		for _, group := range groups {
			if !anyKeywordIn(rowText, group) {
				ok = false
				break
			}
		}
		if ok {
			return r
		}
	}
	return 0
}

func anyKeywordIn(rowText string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(rowText, strings.ToUpper(k)) {
			return true
		}
	}
	return false
}

// MapHeaders builds a normalized header text -> 1-based column index map for
// the given 1-based header row. The map is built left to right and a later
// column overwrites an earlier one with the same text, so the rightmost
// duplicate wins deterministically.
func MapHeaders(grid [][]string, headerRow int) map[string]int {
	headers := make(map[string]int)
	if headerRow < 1 || headerRow > len(grid) {
		return headers
	}
	for c, cell := range grid[headerRow-1] {
		key := normKey(cell)
		if key != "" {
			headers[key] = c + 1
		}
	}
	return headers
}

// gridCell returns the grid value at the 1-based row/column, or "" when the
// row is shorter than the requested column.
func gridCell(grid [][]string, row, col int) string {
	if row < 1 || row > len(grid) {
		return ""
	}
	cells := grid[row-1]
	if col < 1 || col > len(cells) {
		return ""
	}
	return cells[col-1]
}
