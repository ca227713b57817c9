package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/duwiantor-dev/price-shopee/services"
)

// newReconcileCmd builds the headless batch command: reconcile the given
// mass-update files against a pricelist without starting the web UI.
//
// Usage:
//
//	price-shopee reconcile --pricelist pl.xlsx [--addons addon.xlsx] \
//	    [--discount 1000] [--out hasil_update_shopee.xlsx] mass1.xlsx ...
func newReconcileCmd(layout services.Layout) *cobra.Command {
	var (
		pricelistPath string
		addonPath     string
		outPath       string
		discount      int64
	)

	cmd := &cobra.Command{
		Use:   "reconcile [mass-update files...]",
		Short: "Reconcile mass-update files against the pricelist and write the changed rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pricelistBytes, err := os.ReadFile(pricelistPath)
			if err != nil {
				return fmt.Errorf("read pricelist: %w", err)
			}

			var addonBytes []byte
			if addonPath != "" {
				addonBytes, err = os.ReadFile(addonPath)
				if err != nil {
					return fmt.Errorf("read addon mapping: %w", err)
				}
			}

			massFiles := make([]services.NamedFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read mass-update file: %w", err)
				}
				massFiles = append(massFiles, services.NamedFile{
					Name: filepath.Base(path),
					Data: data,
				})
			}

			result, err := services.ProcessMassFiles(massFiles, pricelistBytes, addonBytes, discount, layout)
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, result.Output, 0o644); err != nil {
				return fmt.Errorf("write result workbook: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d rows updated across %d files, result written to %s\n",
				result.UpdatedRows, result.FilesProcessed, outPath)
			if discount > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "discount applied: %s per row\n", services.FormatRupiah(discount))
			}

			if len(result.Issues) > 0 {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "FILE\tROW\tSKU\tREASON")
				for _, issue := range result.Issues {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", issue.File, issue.Row, issue.SKU, issue.Reason)
				}
				tw.Flush()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pricelistPath, "pricelist", "", "path to the pricelist workbook (required)")
	cmd.Flags().StringVar(&addonPath, "addons", "", "path to the addon mapping workbook")
	cmd.Flags().StringVar(&outPath, "out", "hasil_update_shopee.xlsx", "path for the result workbook")
	cmd.Flags().Int64Var(&discount, "discount", 0, "discount in rupiah subtracted from every computed price")
	cmd.MarkFlagRequired("pricelist")

	return cmd
}
