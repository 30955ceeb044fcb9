package cmd

import (
	"os"

	"github.com/cisto/site/internal/config"
	"github.com/cisto/site/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "cisto",
	Short: "Čisto d.o.o. marketing site",
	Long: `cisto serves and exports the Čisto d.o.o. landing page.

Available commands:
  serve      Run the web server
  export     Render the page and its assets to a directory
  catalog    Print or check the service and review catalog
  version    Print the version

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.New()
		if catalogPath != "" {
			cfg.CatalogPath = catalogPath
		}
		logging.New(cfg.LogFormat, cfg.LogLevel)
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog YAML file (overrides CATALOG_PATH; default is the built-in catalog)")
}
