package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/duwiantor-dev/price-shopee/services"
	"github.com/duwiantor-dev/price-shopee/templates"
)

// maxUploadBytes bounds the whole multipart form: N mass files plus the
// pricelist and addon workbooks.
const maxUploadBytes = 64 << 20

// HandleUploadPage renders the upload form.
// Route: GET /
func HandleUploadPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		isHTMX := e.Request.Header.Get("HX-Request") == "true"
		if isHTMX {
			return templates.UploadContent().Render(e.Request.Context(), e.Response)
		}
		return templates.UploadPage().Render(e.Request.Context(), e.Response)
	}
}

// HandleReconcile receives the mass-update files, the pricelist, the
// optional addon mapping and the discount, runs the reconciliation, stores
// the result for download and returns the results partial.
// Route: POST /reconcile
func HandleReconcile(app *pocketbase.PocketBase, store *RunStore, layout services.Layout) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxUploadBytes); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Upload too large or invalid form data")
		}

		massHeaders := e.Request.MultipartForm.File["mass_files"]
		if len(massHeaders) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Please upload at least one mass-update file")
		}

		massFiles := make([]services.NamedFile, 0, len(massHeaders))
		for _, fh := range massHeaders {
			data, err := readUpload(fh)
			if err != nil {
				log.Printf("reconcile: read %s: %v", fh.Filename, err)
				return ErrorToast(e, http.StatusBadRequest, fmt.Sprintf("Could not read %s", fh.Filename))
			}
			massFiles = append(massFiles, services.NamedFile{Name: fh.Filename, Data: data})
		}

		pricelistBytes, err := readRequiredUpload(e.Request.MultipartForm.File["pricelist"])
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please upload the pricelist file")
		}

		var addonBytes []byte
		if addonHeaders := e.Request.MultipartForm.File["addons"]; len(addonHeaders) > 0 {
			addonBytes, err = readUpload(addonHeaders[0])
			if err != nil {
				log.Printf("reconcile: read addon file: %v", err)
				return ErrorToast(e, http.StatusBadRequest, "Could not read the addon mapping file")
			}
		}

		discount, err := parseDiscount(e.Request.FormValue("discount"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		result, err := services.ProcessMassFiles(massFiles, pricelistBytes, addonBytes, discount, layout)
		if err != nil {
			log.Printf("reconcile: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		runID := store.Put(result)
		app.Logger().Info("reconcile run finished",
			"run", runID,
			"files", result.FilesProcessed,
			"updated_rows", result.UpdatedRows,
			"issues", len(result.Issues),
		)

		data := templates.ResultsData{
			RunID:          runID,
			UpdatedRows:    result.UpdatedRows,
			FilesProcessed: result.FilesProcessed,
			Discount:       discount,
			Issues:         result.Issues,
		}
		return templates.ReconcileResults(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleResultDownload serves the result workbook of a stored run.
// Route: GET /runs/{runId}/result
func HandleResultDownload(store *RunStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, ok := store.Get(e.Request.PathValue("runId"))
		if !ok {
			return e.String(http.StatusNotFound, "Run not found or expired")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="hasil_update_shopee.xlsx"`)
		e.Response.Write(result.Output)
		return nil
	}
}

// HandleIssuesExcel serves the issues of a stored run as an Excel report.
// Route: GET /runs/{runId}/issues/xlsx
func HandleIssuesExcel(store *RunStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, ok := store.Get(e.Request.PathValue("runId"))
		if !ok {
			return e.String(http.StatusNotFound, "Run not found or expired")
		}

		xlsxBytes, err := services.GenerateIssueReport(result.Issues)
		if err != nil {
			log.Printf("issues_xlsx: generate failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate issues report")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="issues_update_shopee.xlsx"`)
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleIssuesPDF serves the issues of a stored run as a PDF report.
// Route: GET /runs/{runId}/issues/pdf
func HandleIssuesPDF(store *RunStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, ok := store.Get(e.Request.PathValue("runId"))
		if !ok {
			return e.String(http.StatusNotFound, "Run not found or expired")
		}

		pdfBytes, err := services.GenerateIssuePDF(result.Issues, result.UpdatedRows)
		if err != nil {
			log.Printf("issues_pdf: generate failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate issues PDF")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="issues_update_shopee.pdf"`)
		e.Response.Write(pdfBytes)
		return nil
	}
}

// parseDiscount parses the discount form value. Empty means zero; negative
// values are rejected.
func parseDiscount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	discount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("discount must be a whole rupiah amount")
	}
	if discount < 0 {
		return 0, fmt.Errorf("discount must not be negative")
	}
	return discount, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func readRequiredUpload(headers []*multipart.FileHeader) ([]byte, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("file missing")
	}
	return readUpload(headers[0])
}
