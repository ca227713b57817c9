package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/duwiantor-dev/price-shopee/config"
	"github.com/duwiantor-dev/price-shopee/handlers"
)

const configFile = "config.yaml"

func main() {
	app := pocketbase.New()

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal(err)
	}
	layout := cfg.ServiceLayout()

	// Headless batch mode alongside the web UI.
	app.RootCmd.AddCommand(newReconcileCmd(layout))

	store := handlers.NewRunStore()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		se.Router.GET("/", handlers.HandleUploadPage())
		se.Router.POST("/reconcile", handlers.HandleReconcile(app, store, layout))

		se.Router.GET("/runs/{runId}/result", handlers.HandleResultDownload(store))
		se.Router.GET("/runs/{runId}/issues/xlsx", handlers.HandleIssuesExcel(store))
		se.Router.GET("/runs/{runId}/issues/pdf", handlers.HandleIssuesPDF(store))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
