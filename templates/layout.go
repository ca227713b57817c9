// Package templates holds the HTML components for the price updater UI.
// The components are written directly against the templ runtime
// (templ.ComponentFunc) rather than generated from .templ sources.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Page wraps content in the HTML shell: head, htmx, toast listener and the
// app header.
func Page(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="app-header"><h1>Shopee Price Updater</h1></header>
<main class="container">`, templ.EscapeString(title)); err != nil {
			return err
		}

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main>
<div id="toast" class="toast" hidden></div>
<script>
document.body.addEventListener("showToast", function (evt) {
  var t = document.getElementById("toast");
  t.textContent = evt.detail.message;
  t.className = "toast toast-" + evt.detail.type;
  t.hidden = false;
  setTimeout(function () { t.hidden = true; }, 5000);
});
</script>
</body>
</html>`)
		return err
	})
}
