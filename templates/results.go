package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/duwiantor-dev/price-shopee/services"
)

// ResultsData carries everything the post-run partial renders.
type ResultsData struct {
	RunID          string
	UpdatedRows    int
	FilesProcessed int
	Discount       int64
	Issues         []services.Issue
}

// ReconcileResults renders the outcome of a run: the summary line, the
// download buttons and the issues table.
func ReconcileResults(data ResultsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		runID := templ.EscapeString(data.RunID)

		if _, err := fmt.Fprintf(w, `<section class="card">
<h2>Done</h2>
<p>%d rows updated across %d files.</p>`, data.UpdatedRows, data.FilesProcessed); err != nil {
			return err
		}

		if data.Discount > 0 {
			if _, err := fmt.Fprintf(w, `
<p class="muted">Discount applied: %s per row.</p>`,
				templ.EscapeString(services.FormatRupiah(data.Discount))); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `
<div class="downloads">
<a class="btn btn-primary" href="/runs/%s/result" download>Download result (XLSX)</a>
<a class="btn" href="/runs/%s/issues/xlsx" download>Issues report (XLSX)</a>
<a class="btn" href="/runs/%s/issues/pdf" download>Issues report (PDF)</a>
</div>
</section>`, runID, runID, runID); err != nil {
			return err
		}

		if len(data.Issues) == 0 {
			_, err := io.WriteString(w, `<section class="card"><p>No issues recorded.</p></section>`)
			return err
		}

		if _, err := io.WriteString(w, `<section class="card">
<h3>Issues</h3>
<table class="issues">
<thead><tr><th>File</th><th>Row</th><th>SKU</th><th>Base SKU</th><th>Reason</th></tr></thead>
<tbody>`); err != nil {
			return err
		}

		for _, issue := range data.Issues {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(issue.File),
				templ.EscapeString(issue.Row),
				templ.EscapeString(issue.SKU),
				templ.EscapeString(issue.BaseSKU),
				templ.EscapeString(issue.Reason),
			); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody>
</table>
</section>`)
		return err
	})
}
