package handlers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/duwiantor-dev/price-shopee/services"
	"github.com/duwiantor-dev/price-shopee/testhelpers"
)

var runLinkPattern = regexp.MustCompile(`/runs/([0-9a-f-]+)/result`)

func TestHandleUploadPage(t *testing.T) {
	handler := HandleUploadPage()

	t.Run("full page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(testhelpers.NewTestApp(t), req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		testhelpers.AssertHTMLContains(t, rec.Body.String(), "<html", "mass_files", "pricelist", "discount")
	})

	t.Run("htmx partial", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		if err := handler(newTestRequestEvent(testhelpers.NewTestApp(t), req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		body := rec.Body.String()
		testhelpers.AssertHTMLContains(t, body, "mass_files")
		if strings.Contains(body, "<html") {
			t.Error("HTMX request should render the partial, not the full page")
		}
	})
}

func TestHandleReconcile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewRunStore()
	handler := HandleReconcile(app, store, services.DefaultLayout())

	mass := testhelpers.BuildMassFile(t, []testhelpers.MassRow{
		{SKU: "BASE1", Price: 9000000},
	})
	pricelist := testhelpers.BuildPricelist(t, []testhelpers.PriceEntry{
		{Code: "BASE1", Value: 9300},
	})

	req := newReconcileRequest(t,
		[]services.NamedFile{{Name: "mass.xlsx", Data: mass}},
		pricelist, nil, "")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"1 rows updated across 1 files",
		"Download result (XLSX)",
		"No issues recorded.")

	m := runLinkPattern.FindStringSubmatch(body)
	if m == nil {
		t.Fatal("results partial has no download link with a run ID")
	}
	if _, ok := store.Get(m[1]); !ok {
		t.Errorf("run %s from the download link is not in the store", m[1])
	}
}

func TestHandleReconcileShowsDiscount(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleReconcile(app, NewRunStore(), services.DefaultLayout())

	mass := testhelpers.BuildMassFile(t, []testhelpers.MassRow{
		{SKU: "BASE1", Price: 9000000},
	})
	pricelist := testhelpers.BuildPricelist(t, []testhelpers.PriceEntry{
		{Code: "BASE1", Value: 9300},
	})

	req := newReconcileRequest(t,
		[]services.NamedFile{{Name: "mass.xlsx", Data: mass}},
		pricelist, nil, "100000")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"1 rows updated",
		"Discount applied: Rp 100.000 per row.")
}

func TestHandleReconcileRendersIssues(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleReconcile(app, NewRunStore(), services.DefaultLayout())

	mass := testhelpers.BuildMassFile(t, []testhelpers.MassRow{
		{SKU: "BASE1", Price: 9300000}, // already current
	})
	pricelist := testhelpers.BuildPricelist(t, []testhelpers.PriceEntry{
		{Code: "BASE1", Value: 9300},
	})

	req := newReconcileRequest(t,
		[]services.NamedFile{{Name: "mass.xlsx", Data: mass}},
		pricelist, nil, "")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"0 rows updated",
		"no rows changed")
}

func TestHandleReconcileValidation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleReconcile(app, NewRunStore(), services.DefaultLayout())

	mass := testhelpers.BuildMassFile(t, []testhelpers.MassRow{
		{SKU: "BASE1", Price: 9000000},
	})
	pricelist := testhelpers.BuildPricelist(t, []testhelpers.PriceEntry{
		{Code: "BASE1", Value: 9300},
	})

	tests := []struct {
		name string
		req  *http.Request
	}{
		{
			"missing mass files",
			newReconcileRequest(t, nil, pricelist, nil, ""),
		},
		{
			"missing pricelist",
			newReconcileRequest(t, []services.NamedFile{{Name: "mass.xlsx", Data: mass}}, nil, nil, ""),
		},
		{
			"negative discount",
			newReconcileRequest(t, []services.NamedFile{{Name: "mass.xlsx", Data: mass}}, pricelist, nil, "-5"),
		},
		{
			"non-numeric discount",
			newReconcileRequest(t, []services.NamedFile{{Name: "mass.xlsx", Data: mass}}, pricelist, nil, "abc"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := handler(newTestRequestEvent(app, tt.req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if rec.Header().Get("HX-Reswap") != "none" {
				t.Error("expected HX-Reswap none on an error toast response")
			}
			if !strings.Contains(rec.Header().Get("HX-Trigger"), "showToast") {
				t.Error("expected an HX-Trigger toast event on the error response")
			}
		})
	}
}

func TestDownloadHandlers(t *testing.T) {
	store := NewRunStore()
	runID := store.Put(&services.RunResult{
		Output:      []byte("PK workbook bytes"),
		Issues:      []services.Issue{{File: "mass.xlsx", Reason: "failed to process file: bad zip"}},
		UpdatedRows: 3,
	})
	app := testhelpers.NewTestApp(t)

	t.Run("result workbook", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/"+runID+"/result", nil)
		req.SetPathValue("runId", runID)
		rec := httptest.NewRecorder()
		if err := HandleResultDownload(store)(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "hasil_update_shopee.xlsx") {
			t.Errorf("Content-Disposition = %q, want the result file name", got)
		}
		if rec.Body.String() != "PK workbook bytes" {
			t.Error("download body does not match the stored workbook")
		}
	})

	t.Run("issues workbook", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/"+runID+"/issues/xlsx", nil)
		req.SetPathValue("runId", runID)
		rec := httptest.NewRecorder()
		if err := HandleIssuesExcel(store)(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "issues_update_shopee.xlsx") {
			t.Errorf("Content-Disposition = %q, want the issues file name", got)
		}
		if rec.Body.Len() == 0 {
			t.Error("expected a non-empty issues workbook")
		}
	})

	t.Run("issues pdf", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/"+runID+"/issues/pdf", nil)
		req.SetPathValue("runId", runID)
		rec := httptest.NewRecorder()
		if err := HandleIssuesPDF(store)(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
			t.Errorf("Content-Type = %q, want application/pdf", got)
		}
		if !strings.HasPrefix(rec.Body.String(), "%PDF") {
			t.Error("body does not start with the PDF magic bytes")
		}
	})

	t.Run("unknown run", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/nope/result", nil)
		req.SetPathValue("runId", "nope")
		rec := httptest.NewRecorder()
		if err := HandleResultDownload(store)(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}
