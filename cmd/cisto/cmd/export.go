package cmd

import (
	"fmt"
	"time"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/export"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var exportOpts export.Options

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the page and its assets to a directory",
	Long: `Renders the landing page without a live page session and writes
index.html plus the static assets. The navigation bar of the exported page is
toggled locally in the browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := afero.NewOsFs()
		store, err := catalog.Open(fs, cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		if exportOpts.Year == 0 {
			exportOpts.Year = time.Now().Year()
		}

		res, err := export.Write(cmd.Context(), fs, store.Site(), exportOpts)
		if err != nil {
			return err
		}
		for _, f := range res.Files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOpts.Dir, "out", "o", "dist", "output directory")
	exportCmd.Flags().IntVar(&exportOpts.Year, "year", 0, "copyright year (default: current year)")
	exportCmd.Flags().BoolVar(&exportOpts.SkipAssets, "no-assets", false, "write index.html only")
	rootCmd.AddCommand(exportCmd)
}
