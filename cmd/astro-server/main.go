package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/signalsfoundry/astro-kernel/catalog"
	"github.com/signalsfoundry/astro-kernel/internal/config"
	"github.com/signalsfoundry/astro-kernel/internal/logging"
	"github.com/signalsfoundry/astro-kernel/internal/observability"
	"github.com/signalsfoundry/astro-kernel/internal/rpc"
	"github.com/signalsfoundry/astro-kernel/internal/udf"
	"github.com/signalsfoundry/astro-kernel/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "TCP address the function service listens on")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "HTTP address for Prometheus /metrics (empty disables)")
	flag.StringVar(&cfg.CatalogFile, "catalogs", cfg.CatalogFile, "JSON file with extra catalog descriptors")
	flag.Parse()

	log := logging.New(cfg.Logging())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Error(ctx, "failed to listen for gRPC", logging.String("addr", cfg.GRPCAddr), logging.Err(err))
		os.Exit(1)
	}
	if err := run(ctx, cfg, log, lis); err != nil {
		log.Error(ctx, "server exited", logging.Err(err))
		os.Exit(1)
	}
}

// run serves the function service on lis until ctx is cancelled.
func run(ctx context.Context, cfg config.Config, log logging.Logger, lis net.Listener) error {
	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	reg := prometheus.NewRegistry()
	rpcMetrics, err := observability.NewRPCCollector(reg)
	if err != nil {
		return fmt.Errorf("init rpc metrics: %w", err)
	}
	fnMetrics, err := observability.NewFunctionCollector(reg)
	if err != nil {
		return fmt.Errorf("init function metrics: %w", err)
	}

	extra, err := loadDescriptors(ctx, cfg)
	if err != nil {
		return err
	}
	provider, err := catalog.New(extra...)
	if err != nil {
		return fmt.Errorf("build catalog provider: %w", err)
	}

	table, err := udf.NewTable(udf.Options{
		Catalog:      provider,
		BatchWorkers: cfg.BatchWorkers,
		Recorder:     fnMetrics,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("build function table: %w", err)
	}
	rpcMetrics.SetTableSizes(len(table.Names()), len(provider.Names()))
	log.Info(ctx, "function table ready",
		logging.Int("functions", len(table.Names())),
		logging.Int("catalogs", len(provider.Names())),
	)

	interceptors := []grpc.UnaryServerInterceptor{
		rpc.RequestIDUnaryServerInterceptor(log),
		rpc.TracingUnaryServerInterceptor(),
		rpcMetrics.UnaryServerInterceptor(),
	}
	if cfg.RateLimit > 0 {
		limiter := rpc.NewPeerRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
		interceptors = append(interceptors, limiter.UnaryServerInterceptor())
	}
	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
	)
	rpc.RegisterFunctionServiceServer(server, rpc.NewService(table, log))

	metricsSrv := serveMetrics(cfg.MetricsAddr, rpcMetrics, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting function service", logging.String("addr", lis.Addr().String()))
		errCh <- server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
	}

	log.Info(context.Background(), "shutting down function service")
	server.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return nil
}

func loadDescriptors(ctx context.Context, cfg config.Config) ([]model.CatalogDescriptor, error) {
	switch {
	case cfg.CatalogFile != "":
		ds, err := catalog.LoadJSONFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", cfg.CatalogFile, err)
		}
		return ds, nil
	case cfg.CatalogDB != "":
		ds, err := catalog.LoadSQLiteFile(ctx, cfg.CatalogDB)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", cfg.CatalogDB, err)
		}
		return ds, nil
	}
	return nil, nil
}

func serveMetrics(addr string, collector *observability.RPCCollector, log logging.Logger) *http.Server {
	if addr == "" || collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
