package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Layout describes the fixed positions of the Shopee mass-update export
// format. These are an external contract with the upstream export, not a
// heuristic, so they live here as named values rather than being derived.
type Layout struct {
	// DataStartRow is the first 1-based row holding product data; the rows
	// above it are the template's title and legend block.
	DataStartRow int
	// SKUColumn is the 1-based column holding the composite SKU (column F).
	SKUColumn int
	// PriceColumn is the 1-based column holding the current price (column G).
	PriceColumn int
	// HeaderScanRows bounds the header keyword scan in the pricelist and
	// addon files, which do not share the fixed layout.
	HeaderScanRows int
}

// DefaultLayout returns the layout of the current Shopee export format.
func DefaultLayout() Layout {
	return Layout{
		DataStartRow:   7,
		SKUColumn:      6,
		PriceColumn:    7,
		HeaderScanRows: 80,
	}
}

// NamedFile pairs uploaded workbook bytes with their original file name.
type NamedFile struct {
	Name string
	Data []byte
}

// Issue is one diagnostic record surfaced to the caller alongside the result
// workbook. Row, SKU and BaseSKU may be empty for file-level records.
type Issue struct {
	File    string `json:"file"`
	Row     string `json:"row"`
	SKU     string `json:"sku_full"`
	BaseSKU string `json:"base_sku"`
	Reason  string `json:"reason"`
}

// RunResult is the outcome of one reconciliation run.
type RunResult struct {
	// Output is the result workbook: the first mass file's template with
	// only the changed rows.
	Output []byte
	// Issues lists everything that could not be processed, plus the
	// nothing-changed notice when no rows were written.
	Issues []Issue
	// UpdatedRows is the number of rows written across all files.
	UpdatedRows int
	// FilesProcessed counts mass files that parsed without a file-level
	// failure.
	FilesProcessed int
}

// cellCopy is a typed snapshot of one source cell, so numbers stay numbers
// when rewritten into the output workbook.
type cellCopy struct {
	raw  string
	kind excelize.CellType
}

// rowUpdate is one selected output row: the source cells plus the newly
// computed price that replaces the price column.
type rowUpdate struct {
	cells    []cellCopy
	newPrice int64
}

// ProcessMassFiles reconciles the mass-update files against the pricelist
// and optional addon mapping and returns the result workbook plus the
// issues table.
//
// The pricelist must load or the whole run aborts. A failing addon file only
// disables addons for the run and records one issue. Each mass file is
// processed independently: a file-level failure records one issue and the
// remaining files still run. Row selection is a pure pass over each source
// sheet; writing happens afterwards against a fresh cursor, so no rows are
// inserted into a sheet that is still being scanned.
func ProcessMassFiles(massFiles []NamedFile, pricelistBytes, addonBytes []byte, discount int64, layout Layout) (*RunResult, error) {
	if len(massFiles) == 0 {
		return nil, fmt.Errorf("no mass-update files supplied")
	}
	if discount < 0 {
		return nil, fmt.Errorf("discount must not be negative")
	}

	pricelist, err := LoadPricelistMap(pricelistBytes, layout.HeaderScanRows)
	if err != nil {
		return nil, err
	}

	result := &RunResult{}

	addons := make(map[string]int64)
	if len(addonBytes) > 0 {
		loaded, err := LoadAddonMap(addonBytes, layout.HeaderScanRows)
		if err != nil {
			// Addons are optional; disable them for this run instead of
			// aborting, and surface the failure.
			result.Issues = append(result.Issues, Issue{
				Reason: fmt.Sprintf("addon mapping disabled for this run: %v", err),
			})
		} else {
			addons = loaded
		}
	}

	out, sheet, tpl, err := initOutputWorkbook(massFiles[0].Data, layout)
	if err != nil {
		return nil, fmt.Errorf("output template %q: %w", massFiles[0].Name, err)
	}
	defer out.Close()

	writeRow := layout.DataStartRow
	for _, mf := range massFiles {
		updates, err := selectFileUpdates(mf.Data, layout, tpl.maxCol, pricelist, addons, discount)
		if err != nil {
			result.Issues = append(result.Issues, Issue{
				File:   mf.Name,
				Reason: fmt.Sprintf("failed to process file: %v", err),
			})
			continue
		}
		result.FilesProcessed++

		for _, u := range updates {
			if err := writeUpdate(out, sheet, writeRow, u, layout, tpl); err != nil {
				return nil, fmt.Errorf("write output row %d: %w", writeRow, err)
			}
			writeRow++
			result.UpdatedRows++
		}
	}

	if result.UpdatedRows == 0 {
		result.Issues = append(result.Issues, Issue{
			Reason: "no rows changed: every price already matches or could not be updated",
		})
	}

	var buf bytes.Buffer
	if err := out.Write(&buf); err != nil {
		return nil, fmt.Errorf("write result workbook: %w", err)
	}
	result.Output = buf.Bytes()

	return result, nil
}

// rowTemplate carries the formatting of the template's first data row,
// captured before the data rows are removed.
type rowTemplate struct {
	maxCol int
	// styles holds the per-column style IDs of the template data row.
	// Removing rows does not touch the style table, so the IDs stay valid
	// for the rows appended later.
	styles []int
}

// initOutputWorkbook opens the first mass file as the output template,
// captures the template data row's styling, and strips all existing data
// rows so only the title and legend block remains.
func initOutputWorkbook(data []byte, layout Layout) (*excelize.File, string, *rowTemplate, error) {
	out, sheet, err := openFirstSheet(data)
	if err != nil {
		return nil, "", nil, err
	}

	grid, err := out.GetRows(sheet)
	if err != nil {
		out.Close()
		return nil, "", nil, fmt.Errorf("read sheet: %w", err)
	}

	tpl := &rowTemplate{maxCol: maxColumns(grid)}
	tpl.styles = make([]int, tpl.maxCol)
	for c := 1; c <= tpl.maxCol; c++ {
		cell, err := excelize.CoordinatesToCellName(c, layout.DataStartRow)
		if err != nil {
			out.Close()
			return nil, "", nil, err
		}
		styleID, err := out.GetCellStyle(sheet, cell)
		if err != nil {
			out.Close()
			return nil, "", nil, fmt.Errorf("capture row styling: %w", err)
		}
		tpl.styles[c-1] = styleID
	}

	// Remove bottom-up so earlier removals do not shift pending indexes.
	for r := len(grid); r >= layout.DataStartRow; r-- {
		if err := out.RemoveRow(sheet, r); err != nil {
			out.Close()
			return nil, "", nil, fmt.Errorf("clear data rows: %w", err)
		}
	}

	return out, sheet, tpl, nil
}

// selectFileUpdates scans one mass-update file and returns the rows whose
// computed price differs from the existing one. Blank SKUs, unresolvable
// SKUs and unchanged prices are silently skipped; they are expected and
// frequent, not errors.
func selectFileUpdates(data []byte, layout Layout, maxCol int, pricelist, addons map[string]int64, discount int64) ([]rowUpdate, error) {
	f, sheet, err := openFirstSheet(data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	var updates []rowUpdate
	for r := layout.DataStartRow; r <= len(grid); r++ {
		sku := normStr(gridCell(grid, r, layout.SKUColumn))
		if sku == "" {
			continue
		}

		newPrice, ok := ResolvePrice(sku, pricelist, addons, discount)
		if !ok {
			continue
		}

		oldRaw, oldKind := rawCell(f, sheet, r, layout.PriceColumn)
		if oldPrice, parsed := ParseDirectRupiah(oldRaw, oldKind); parsed && oldPrice == newPrice {
			continue
		}

		cells := make([]cellCopy, maxCol)
		for c := 1; c <= maxCol; c++ {
			raw, kind := rawCell(f, sheet, r, c)
			cells[c-1] = cellCopy{raw: raw, kind: kind}
		}
		updates = append(updates, rowUpdate{cells: cells, newPrice: newPrice})
	}
	return updates, nil
}

// writeUpdate appends one selected row to the output workbook: template
// styling first, then the source values verbatim, then the price cell
// overwritten with the computed amount.
func writeUpdate(out *excelize.File, sheet string, row int, u rowUpdate, layout Layout, tpl *rowTemplate) error {
	for c := 1; c <= tpl.maxCol; c++ {
		cell, err := excelize.CoordinatesToCellName(c, row)
		if err != nil {
			return err
		}
		if err := out.SetCellStyle(sheet, cell, cell, tpl.styles[c-1]); err != nil {
			return err
		}
		if err := setCellCopy(out, sheet, cell, u.cells[c-1]); err != nil {
			return err
		}
	}

	priceCell, err := excelize.CoordinatesToCellName(layout.PriceColumn, row)
	if err != nil {
		return err
	}
	return out.SetCellValue(sheet, priceCell, u.newPrice)
}

// setCellCopy writes a captured cell back, preserving its numeric or boolean
// typing instead of flattening everything to text.
func setCellCopy(f *excelize.File, sheet, cell string, c cellCopy) error {
	if c.raw == "" {
		return nil
	}
	switch {
	case c.kind == excelize.CellTypeBool:
		return f.SetCellBool(sheet, cell, c.raw == "1" || c.raw == "TRUE")
	case !isTextCell(c.kind):
		if n, err := strconv.ParseFloat(c.raw, 64); err == nil {
			return f.SetCellValue(sheet, cell, n)
		}
	}
	return f.SetCellValue(sheet, cell, c.raw)
}
