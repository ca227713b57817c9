// Package testhelpers provides utilities for testing the reconciliation
// service: a disposable PocketBase app for handler tests and builders for
// the three kinds of workbook fixtures.
package testhelpers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/xuri/excelize/v2"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	return app
}

// MassRow is one data row for a mass-update fixture.
type MassRow struct {
	SKU   string
	Price any
}

// BuildMassFile creates a Shopee-shaped mass-update workbook: six rows of
// title and legend, then data from row 7 with the SKU in column F and the
// price in column G. Column A carries a product name so the value-copy path
// has more than the two fixed columns to carry over.
func BuildMassFile(t *testing.T, rows []MassRow) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "Mass Update Harga")
	f.SetCellValue(sheet, "A3", "Kolom F = SKU, Kolom G = Harga")
	f.SetCellValue(sheet, "F6", "SKU")
	f.SetCellValue(sheet, "G6", "Harga")

	for i, r := range rows {
		rowNum := 7 + i
		cellA, _ := excelize.CoordinatesToCellName(1, rowNum)
		cellSKU, _ := excelize.CoordinatesToCellName(6, rowNum)
		cellPrice, _ := excelize.CoordinatesToCellName(7, rowNum)

		f.SetCellValue(sheet, cellA, "Produk "+r.SKU)
		f.SetCellValue(sheet, cellSKU, r.SKU)
		if r.Price != nil {
			f.SetCellValue(sheet, cellPrice, r.Price)
		}
	}

	return workbookBytes(t, f)
}

// PriceEntry is one code/value pair for a pricelist or addon fixture.
type PriceEntry struct {
	Code  string
	Value any
}

// BuildPricelist creates a pricelist workbook with a title block above the
// header row, KODEBARANG and M4 columns, and one data row per entry. Values
// follow the scaled convention of the real file ("9300" means Rp 9.300.000).
func BuildPricelist(t *testing.T, entries []PriceEntry) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "PRICELIST DISTRIBUTOR")
	f.SetCellValue(sheet, "A3", "KODEBARANG")
	f.SetCellValue(sheet, "B3", "NAMA")
	f.SetCellValue(sheet, "C3", "M4")

	for i, e := range entries {
		rowNum := 4 + i
		cellCode, _ := excelize.CoordinatesToCellName(1, rowNum)
		cellVal, _ := excelize.CoordinatesToCellName(3, rowNum)
		f.SetCellValue(sheet, cellCode, e.Code)
		if e.Value != nil {
			f.SetCellValue(sheet, cellVal, e.Value)
		}
	}

	return workbookBytes(t, f)
}

// BuildAddonFile creates an addon mapping workbook with KODE and HARGA
// columns and one data row per entry.
func BuildAddonFile(t *testing.T, entries []PriceEntry) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "KODE")
	f.SetCellValue(sheet, "B1", "HARGA")

	for i, e := range entries {
		rowNum := 2 + i
		cellCode, _ := excelize.CoordinatesToCellName(1, rowNum)
		cellVal, _ := excelize.CoordinatesToCellName(2, rowNum)
		f.SetCellValue(sheet, cellCode, e.Code)
		if e.Value != nil {
			f.SetCellValue(sheet, cellVal, e.Value)
		}
	}

	return workbookBytes(t, f)
}

// workbookBytes serializes a workbook and fails the test on error.
func workbookBytes(t *testing.T, f *excelize.File) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to serialize fixture workbook: %v", err)
	}
	return buf.Bytes()
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
