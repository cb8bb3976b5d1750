package observability

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// RPCCollector holds the transport-level metrics of the function service.
type RPCCollector struct {
	gatherer prometheus.Gatherer

	RPCRequests  *prometheus.CounterVec
	RPCDurations *prometheus.HistogramVec

	FunctionsRegistered prometheus.Gauge
	CatalogsRegistered  prometheus.Gauge
}

// NewRPCCollector registers RPC metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewRPCCollector(reg prometheus.Registerer) (*RPCCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "astro_rpc_requests_total",
		Help: "Handled function-service RPCs by service, method and gRPC status code.",
	}, []string{"service", "method", "code"}), "astro_rpc_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "astro_rpc_duration_seconds",
		Help:    "Function-service RPC latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5},
	}, []string{"service", "method"}), "astro_rpc_duration_seconds")
	if err != nil {
		return nil, err
	}

	functions, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "astro_functions_registered",
		Help: "Number of entries in the function table.",
	}), "astro_functions_registered")
	if err != nil {
		return nil, err
	}
	catalogs, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "astro_catalogs_registered",
		Help: "Number of named catalog descriptors known to the provider.",
	}), "astro_catalogs_registered")
	if err != nil {
		return nil, err
	}

	return &RPCCollector{
		gatherer:            gathererFor(reg),
		RPCRequests:         requests,
		RPCDurations:        durations,
		FunctionsRegistered: functions,
		CatalogsRegistered:  catalogs,
	}, nil
}

// UnaryServerInterceptor records request counts and durations for unary RPCs.
func (c *RPCCollector) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if c == nil {
			return resp, err
		}

		fullMethod := ""
		if info != nil {
			fullMethod = info.FullMethod
		}
		service, method := SplitMethod(fullMethod)
		c.RPCRequests.WithLabelValues(service, method, status.Code(err).String()).Inc()
		c.RPCDurations.WithLabelValues(service, method).Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// SetTableSizes reports how many functions and catalogs the server loaded.
func (c *RPCCollector) SetTableSizes(functions, catalogs int) {
	if c == nil {
		return
	}
	c.FunctionsRegistered.Set(float64(functions))
	c.CatalogsRegistered.Set(float64(catalogs))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *RPCCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SplitMethod parses a fully-qualified gRPC method name into service and
// method components, returning "unknown"/"unknown" when parsing fails.
func SplitMethod(fullMethod string) (string, string) {
	parts := strings.Split(strings.TrimPrefix(fullMethod, "/"), "/")
	if len(parts) < 2 {
		return "unknown", "unknown"
	}
	service, method := parts[len(parts)-2], parts[len(parts)-1]
	if dot := strings.LastIndex(service, "."); dot >= 0 && dot+1 < len(service) {
		service = service[dot+1:]
	}
	if service == "" {
		service = "unknown"
	}
	if method == "" {
		method = "unknown"
	}
	return service, method
}
