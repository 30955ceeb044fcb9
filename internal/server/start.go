package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run serves HTTP on addr until ctx is canceled. The page-session janitor
// and the catalog watcher run alongside the listener; when ctx ends every
// session is closed and the listener drains within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("HTTP server listening", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return s.Sessions.Run(gctx)
	})

	g.Go(func() error {
		return s.Catalog.Watch(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, mod := range s.modules {
			if err := mod.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		if err := s.E.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		if err := s.Bus.Close(); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
