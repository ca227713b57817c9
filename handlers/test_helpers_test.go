package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/duwiantor-dev/price-shopee/services"
)

func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newReconcileRequest builds the multipart POST the upload form submits. Nil
// pricelist or addon bytes leave that form field out entirely.
func newReconcileRequest(t *testing.T, massFiles []services.NamedFile, pricelist, addons []byte, discount string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, mf := range massFiles {
		part, err := w.CreateFormFile("mass_files", mf.Name)
		if err != nil {
			t.Fatalf("failed to add mass file part: %v", err)
		}
		if _, err := part.Write(mf.Data); err != nil {
			t.Fatalf("failed to write mass file part: %v", err)
		}
	}
	if pricelist != nil {
		part, err := w.CreateFormFile("pricelist", "pricelist.xlsx")
		if err != nil {
			t.Fatalf("failed to add pricelist part: %v", err)
		}
		if _, err := part.Write(pricelist); err != nil {
			t.Fatalf("failed to write pricelist part: %v", err)
		}
	}
	if addons != nil {
		part, err := w.CreateFormFile("addons", "addons.xlsx")
		if err != nil {
			t.Fatalf("failed to add addon part: %v", err)
		}
		if _, err := part.Write(addons); err != nil {
			t.Fatalf("failed to write addon part: %v", err)
		}
	}
	if discount != "" {
		if err := w.WriteField("discount", discount); err != nil {
			t.Fatalf("failed to write discount field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finalize multipart form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/reconcile", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return req
}
