// Package main implements the entry point for the tasks API server, which
// manages tasks and the categories they are filed under.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tasks-api: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application, and serves until an
// interrupt or termination signal arrives.
func run() error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Log.Level),
		slog.Duration("request_timeout", cfg.Server.RequestTimeout))

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
