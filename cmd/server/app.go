package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/phrazzld/eks-decision-api/internal/config"
	"github.com/phrazzld/eks-decision-api/internal/decision"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	table  *decision.Table
}

// newApplication builds the profile table once; it is shared read-only by
// every request for the lifetime of the process.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
		table:  decision.Default(),
	}

	logger.Info("Decision table initialized", "profiles", app.table.Len())
	return app, nil
}

// Run listens on the configured port and serves until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve runs the HTTP server on ln until ctx is canceled.
func (app *application) Serve(ctx context.Context, ln net.Listener) error {
	router, err := app.setupRouter()
	if err != nil {
		_ = ln.Close()
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, ln, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
