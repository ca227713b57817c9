package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// UploadContent renders the reconciliation upload form. The form posts all
// files in one multipart request and swaps the results into #results.
func UploadContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="card">
<h2>Update Prices</h2>
<form hx-post="/reconcile" hx-target="#results" hx-swap="innerHTML" hx-encoding="multipart/form-data">
<div class="field">
<label for="mass_files">Mass update files (one or more, .xlsx)</label>
<input type="file" id="mass_files" name="mass_files" accept=".xlsx" multiple required>
</div>
<div class="field">
<label for="pricelist">Pricelist (.xlsx)</label>
<input type="file" id="pricelist" name="pricelist" accept=".xlsx" required>
</div>
<div class="field">
<label for="addons">Addon mapping (.xlsx, optional)</label>
<input type="file" id="addons" name="addons" accept=".xlsx">
</div>
<div class="field">
<label for="discount">Discount (Rp, subtracted from every computed price)</label>
<input type="number" id="discount" name="discount" min="0" step="1000" value="0">
</div>
<button type="submit" class="btn btn-primary">Process</button>
</form>
</section>
<div id="results"></div>`)
		return err
	})
}

// UploadPage renders the upload form as a full page.
func UploadPage() templ.Component {
	return Page("Shopee Price Updater", UploadContent())
}
