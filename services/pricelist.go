package services

import "fmt"

// Keyword groups that identify the pricelist header row. Each group must
// have at least one member present somewhere in the row.
var pricelistHeaderGroups = [][]string{
	{"KODEBARANG", "KODE BARANG"},
	{"M4"},
}

// LoadPricelistMap parses the master pricelist workbook into a map from
// normalized product code to its full rupiah unit price (the M4 column,
// scaled convention). The header row is located by keyword scan within the
// first scanRows rows. Rows with a blank code, the literal TOTAL footer, or
// an unparseable price are skipped.
//
// An error means the whole run must abort: header or columns not found, or a
// readable file that yields no usable rows at all.
func LoadPricelistMap(data []byte, scanRows int) (map[string]int64, error) {
	f, sheet, err := openFirstSheet(data)
	if err != nil {
		return nil, fmt.Errorf("pricelist: %w", err)
	}
	defer f.Close()

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("pricelist: read sheet: %w", err)
	}

	headerRow := FindHeaderRow(grid, pricelistHeaderGroups, scanRows)
	if headerRow == 0 {
		return nil, fmt.Errorf("pricelist header not found: need KODEBARANG and M4 columns within the first %d rows", scanRows)
	}

	hdr := MapHeaders(grid, headerRow)
	skuCol := hdr["KODEBARANG"]
	if skuCol == 0 {
		skuCol = hdr["KODE BARANG"]
	}
	priceCol := hdr["M4"]
	if skuCol == 0 || priceCol == 0 {
		return nil, fmt.Errorf("pricelist is missing the KODEBARANG/KODE BARANG or M4 column")
	}

	pricelist := make(map[string]int64)
	for r := headerRow + 1; r <= len(grid); r++ {
		key := normKey(gridCell(grid, r, skuCol))
		if key == "" || key == "TOTAL" {
			continue
		}
		raw, kind := rawCell(f, sheet, r, priceCol)
		price, ok := ParseScaledRupiah(raw, kind)
		if !ok {
			continue
		}
		pricelist[key] = price
	}

	if len(pricelist) == 0 {
		return nil, fmt.Errorf("pricelist was readable but produced no KODEBARANG -> M4 entries")
	}
	return pricelist, nil
}
