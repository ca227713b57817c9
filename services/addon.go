package services

import (
	"fmt"
	"sort"
)

// Keyword groups that identify the addon mapping header row.
var addonHeaderGroups = [][]string{
	{"HARGA", "PRICE"},
	{"KODE", "VARIAN", "STANDARISASI", "ADDON"},
}

// Exact header names tried first for the addon code column, in priority
// order.
var addonCodeCandidates = []string{
	"ADDON_CODE",
	"KODE",
	"KODE ADDON",
	"STANDARISASI KODE SKU DI VARIAN",
	"STANDARISASI KODE SKU DI VARIASI",
	"KODE VARIAN",
	"KODE VARIASI",
}

// Substrings accepted by the fallback scan when no candidate matched
// exactly.
var addonCodeFallbackKeywords = []string{"KODE", "VARIAN", "VARIASI", "STANDARISASI", "ADDON"}

// LoadAddonMap parses the addon mapping workbook into a map from normalized
// addon code to its incremental full rupiah price (scaled convention). The
// price column is resolved by the first match of HARGA then PRICE; the code
// column by the exact-name candidates, falling back to the leftmost header
// containing a code keyword. Rows with a blank code or unparseable price are
// skipped. An empty result is valid since the file may hold no usable rows.
func LoadAddonMap(data []byte, scanRows int) (map[string]int64, error) {
	f, sheet, err := openFirstSheet(data)
	if err != nil {
		return nil, fmt.Errorf("addon mapping: %w", err)
	}
	defer f.Close()

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("addon mapping: read sheet: %w", err)
	}

	headerRow := FindHeaderRow(grid, addonHeaderGroups, scanRows)
	if headerRow == 0 {
		return nil, fmt.Errorf("addon mapping header not found: need an addon code column and a HARGA/PRICE column within the first %d rows", scanRows)
	}

	hdr := MapHeaders(grid, headerRow)

	priceCol := 0
	for _, k := range []string{"HARGA", "PRICE"} {
		if c, ok := hdr[k]; ok {
			priceCol = c
			break
		}
	}

	codeCol := 0
	for _, candidate := range addonCodeCandidates {
		if c, ok := hdr[candidate]; ok {
			codeCol = c
			break
		}
	}
	if codeCol == 0 {
		codeCol = fallbackCodeColumn(hdr)
	}

	if codeCol == 0 || priceCol == 0 {
		return nil, fmt.Errorf("addon mapping is missing the addon code or HARGA/PRICE column")
	}

	addons := make(map[string]int64)
	for r := headerRow + 1; r <= len(grid); r++ {
		key := normKey(gridCell(grid, r, codeCol))
		if key == "" {
			continue
		}
		raw, kind := rawCell(f, sheet, r, priceCol)
		price, ok := ParseScaledRupiah(raw, kind)
		if !ok {
			continue
		}
		addons[key] = price
	}
	return addons, nil
}

// fallbackCodeColumn scans mapped headers in ascending column order and
// returns the first column whose header text contains a code keyword. The
// column-ordered walk keeps the tie-break deterministic regardless of map
// iteration order.
func fallbackCodeColumn(hdr map[string]int) int {
	type headerCol struct {
		name string
		col  int
	}
	ordered := make([]headerCol, 0, len(hdr))
	for name, col := range hdr {
		ordered = append(ordered, headerCol{name: name, col: col})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].col < ordered[j].col })

	for _, hc := range ordered {
		if anyKeywordIn(hc.name, addonCodeFallbackKeywords) {
			return hc.col
		}
	}
	return 0
}
