// Package main is the entry point for the address selector service. It wires
// all dependencies using samber/do v2, starts the HTTP server and the session
// janitor, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-address-selector/internal/adapters/http"
	"github.com/jsamuelsen11/go-address-selector/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-address-selector/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-address-selector/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-address-selector/internal/app"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/config"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/health"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/logging"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-address-selector/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile, config.WithDotEnv(".env"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.GeoClient](injector))
	selections := do.MustInvoke[*app.SelectionService](injector)
	registry.Register(selections)

	// Expire idle selection sessions until shutdown.
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		runJanitor(janitorCtx, selections, cfg.Selector.SweepInterval, logger)
	}()

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		stopJanitor()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	stopJanitor()
	<-janitorDone

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, acl.GeoServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.GeoClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewGeoClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.GeoClient, error) {
		return do.MustInvoke[*acl.GeoClient](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.SelectionService, error) {
		geoClient := do.MustInvoke[ports.GeoClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewSelectionService(geoClient, logger,
			app.WithSessionTTL(cfg.Selector.SessionTTL),
			app.WithMaxSessions(cfg.Selector.MaxSessions),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SelectionService, error) {
		return do.MustInvoke[*app.SelectionService](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.GeoHandler, error) {
		return handlers.NewGeoHandler(do.MustInvoke[ports.SelectionService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SelectionHandler, error) {
		return handlers.NewSelectionHandler(do.MustInvoke[ports.SelectionService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PageHandler, error) {
		return handlers.NewPageHandler(do.MustInvoke[ports.SelectionService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		geoH := do.MustInvoke[*handlers.GeoHandler](i)
		selH := do.MustInvoke[*handlers.SelectionHandler](i)
		pageH := do.MustInvoke[*handlers.PageHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(geoH, selH, pageH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
