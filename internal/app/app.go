// Package app provides the top-level application lifecycle for polydash. It
// wires the Gamma client, optional mirrors, and notifications into the
// snapshot pipeline and runs it in the configured mode.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/polydash/polydash/internal/config"
	"github.com/polydash/polydash/internal/pipeline"
)

// App is the root application object. It owns the configuration, logger, and
// a list of cleanup functions that are called in reverse order on shutdown.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	closers []func()
}

// New creates a new App from the given configuration and logger.
func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "app")),
	}
}

// Run is the main entry point. It wires all dependencies, builds the
// orchestrator, and runs it either once or on the configured interval. On
// return the caller should invoke Close.
func (a *App) Run(ctx context.Context) error {
	deps, cleanup, err := Wire(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("app: wire dependencies: %w", err)
	}
	a.closers = append(a.closers, cleanup)

	orch := pipeline.New(pipeline.Options{
		Fetcher:     deps.Gamma,
		PageLimit:   a.cfg.Polymarket.PageLimit,
		SignalsPath: a.cfg.Signals.Path,
		OutputPath:  a.cfg.Output.Path,
		Blob:        deps.Blob,
		BlobKey:     a.cfg.S3.Key,
		Cache:       deps.Cache,
		Notify:      deps.Notifier,
		Logger:      a.logger,
	})

	switch strings.ToLower(a.cfg.Mode) {
	case "once":
		return orch.Run(ctx)
	case "loop":
		return orch.RunLoop(ctx, a.cfg.Interval.Duration)
	default:
		return fmt.Errorf("app: unsupported mode %q", a.cfg.Mode)
	}
}

// Close tears down all resources in reverse registration order. It is safe
// to call multiple times; subsequent calls are no-ops.
func (a *App) Close() {
	a.logger.Info("shutting down")
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
