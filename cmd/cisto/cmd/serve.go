package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.Open(afero.NewOsFs(), cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		srv, err := server.New(server.Dependencies{Config: cfg, Catalog: store})
		if err != nil {
			return err
		}

		addr := cfg.GetAddr()
		if serveAddr != "" {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides APP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
