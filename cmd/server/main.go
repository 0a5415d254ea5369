// Package main implements the entry point for the EKS Decision Engine API
// server, which serves infrastructure decision contracts keyed by profile.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/eks-decision-api/internal/config"
	"github.com/phrazzld/eks-decision-api/internal/platform/logger"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run parses flags, initializes the application, and serves until ctx is done.
func run(ctx context.Context, args []string) error {
	cfg, err := initializeApp(args)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp(args []string) (*config.Config, error) {
	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to a YAML config file")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat)

	return cfg, nil
}
