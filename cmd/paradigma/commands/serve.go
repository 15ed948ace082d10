package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cours-de-latin/paradigma/internal/server"
)

const shutdownTimeout = 5 * time.Second

// ServeCommand returns the serve command
func ServeCommand(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON lookup API",
		Long: `Serve the JSON lookup API over HTTP.

Endpoints:
  GET  /api/lookup?q=<word>
  POST /api/lookup/batch
  GET  /api/complete?prefix=<text>&limit=<n>
  GET  /api/paradigm?q=<word>
  GET  /api/stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				app.Config.Server.Addr = addr
			}
			return runServe(cmd.Context(), app)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

func runServe(ctx context.Context, app *App) error {
	idx, err := app.Index()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              app.Config.Server.Addr,
		Handler:           server.New(idx, app.Config.Query, app.Logger).Handler(app.Config.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		app.Logger.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
