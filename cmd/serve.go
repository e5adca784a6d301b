package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/http/api"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/http/swagger"
	service "github.com/renatmannanov/ayda-run-v2-sub001/internal/app"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/config"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/logger"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analytics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.setup(cmd)
			if err != nil {
				return err
			}
			// Root context with cancel on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

// serve runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()
	registerRuntimeCollectors()

	src, closeSrc, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeSrc(); cerr != nil {
			log.Warn(ctx, "failed to close source", logger.Error(cerr))
		}
	}()

	a, err := newAnalyzer(cfg, src)
	if err != nil {
		return err
	}
	svc := service.New(a,
		service.WithServiceLogger(logger.Named("service")),
		service.WithRefreshInterval(cfg.RefreshInterval),
		service.WithReportOptions(reportOptions(cfg)...),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	defer svc.Stop()

	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc, cfg.TopClubs).Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
		return err
	}
	log.Info(ctx, "server stopped")
	return nil
}

// registerRuntimeCollectors exposes Go runtime and process metrics next to
// the analytics metrics. Repeated calls are harmless.
func registerRuntimeCollectors() {
	reg := metrics.GetRegistry()
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		var already prometheus.AlreadyRegisteredError
		if err := reg.Register(c); err != nil && !errors.As(err, &already) {
			logger.Get().Warn(context.Background(), "failed to register runtime collector", logger.Error(err))
		}
	}
}
