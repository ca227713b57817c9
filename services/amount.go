// Package services implements the price reconciliation core: parsing the
// pricelist and addon workbooks, resolving composite SKU prices, and building
// the output workbook of changed rows.
package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var digitRunPattern = regexp.MustCompile(`\d+`)

// normStr trims surrounding whitespace from a raw cell value.
func normStr(v string) string {
	return strings.TrimSpace(v)
}

// normKey normalizes a product code for lookups: trimmed and upper-cased.
func normKey(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

// ParseScaledRupiah parses a cell from the pricelist/addon convention, where
// amounts are written without their thousands ("9300" means Rp 9.300.000).
// Numeric cells are multiplied by 1000; a small fractional number like 23.699
// is read as 23699 before scaling, since the decimals are really the
// thousands separator of the source data. Text cells have their digit runs
// concatenated ("Rp 23.699" -> 23699) and are then scaled. Returns false when
// the cell holds no usable amount.
func ParseScaledRupiah(raw string, kind excelize.CellType) (int64, bool) {
	s := normStr(raw)
	if s == "" || kind == excelize.CellTypeBool {
		return 0, false
	}

	if isTextCell(kind) {
		thousands, ok := concatDigitRuns(s)
		if !ok {
			return 0, false
		}
		return thousands * 1000, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Untyped cell that is not numeric after all.
		thousands, ok := concatDigitRuns(s)
		if !ok {
			return 0, false
		}
		return thousands * 1000, true
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	// A value like 23.699 stored as a real number: the fractional digits are
	// the thousands component, so the amount is 23699, not 24.
	if f < 1000 && math.Abs(f-math.Round(f)) > 1e-9 {
		return int64(math.Round(f*1000)) * 1000, true
	}
	return int64(math.Round(f)) * 1000, true
}

// ParseDirectRupiah parses a cell from the mass-update convention, where the
// price column already holds full rupiah amounts. Numeric cells are rounded
// to the nearest integer; text cells have their digit runs concatenated.
// Returns false when the cell holds no usable amount.
func ParseDirectRupiah(raw string, kind excelize.CellType) (int64, bool) {
	s := normStr(raw)
	if s == "" || kind == excelize.CellTypeBool {
		return 0, false
	}

	if isTextCell(kind) {
		return concatDigitRuns(s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return concatDigitRuns(s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(math.Round(f)), true
}

// isTextCell reports whether the cell type is one of the string variants.
// Plain number cells usually carry no type attribute at all, so everything
// that is not explicitly a string is treated as potentially numeric.
func isTextCell(kind excelize.CellType) bool {
	switch kind {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	}
	return false
}

// concatDigitRuns extracts every run of digits from s and concatenates them
// into a single integer, so "23.699", "23,699" and "Rp 23 699" all yield
// 23699. Returns false when s contains no digits.
func concatDigitRuns(s string) (int64, bool) {
	runs := digitRunPattern.FindAllString(s, -1)
	if len(runs) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.Join(runs, ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
