package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cisto/site/internal/catalog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the service and review catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.Open(afero.NewOsFs(), cfg.CatalogPath)
		if err != nil {
			return err
		}
		return printCatalog(cmd.OutOrStdout(), store.Site(), catalogFormat)
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a catalog file without starting the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := catalog.Load(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d services, %d reviews, %d nav links\n",
			args[0], len(site.Services), len(site.Reviews), len(site.Navigation))
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "table", "output format: table or json")
	catalogCmd.AddCommand(catalogCheckCmd)
	rootCmd.AddCommand(catalogCmd)
}

type catalogView struct {
	Services []catalog.Service `json:"services"`
	Reviews  []catalog.Review  `json:"reviews"`
}

func printCatalog(w io.Writer, site *catalog.Site, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(catalogView{Services: site.Services, Reviews: site.Reviews})
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SERVICE\tTITLE\tPRICE")
		for _, s := range site.Services {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Title, s.Price)
		}
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "REVIEW\tAUTHOR\tRATING\tDATE")
		for _, r := range site.Reviews {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.ID, r.Author, r.Rating, r.Date)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
}
