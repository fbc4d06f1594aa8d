package observability

import (
	"io"
	"log/slog"

	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// MetricsNamespace prefixes every exported metric.
const MetricsNamespace = "trivia"

// Observability bundles the logger, metrics registry and tracer provider
// handed to every module.
type Observability struct {
	Logger         *slog.Logger
	Registry       *prometheus.Registry
	Metrics        metrics.OperationMetrics
	TracerProvider trace.TracerProvider
}

// Config selects the logger format and level.
type Config struct {
	Environment string
	LogLevel    string
}

// New builds the process observability stack. Operation metrics are
// registered once here and shared by all modules.
func New(w io.Writer, cfg Config) (Observability, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m, err := metrics.NewPrometheusMetrics(reg, MetricsNamespace)
	if err != nil {
		return Observability{}, err
	}

	return Observability{
		Logger:         NewLogger(w, cfg.Environment, cfg.LogLevel),
		Registry:       reg,
		Metrics:        m,
		TracerProvider: otel.GetTracerProvider(),
	}, nil
}

// NewNoop returns a stack that discards logs, metrics and spans.
func NewNoop() Observability {
	return Observability{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry:       prometheus.NewRegistry(),
		Metrics:        metrics.NewNoop(),
		TracerProvider: noop.NewTracerProvider(),
	}
}

// Tracer returns the named tracer for a module.
func (o Observability) Tracer(name string) trace.Tracer {
	if o.TracerProvider == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return o.TracerProvider.Tracer(name)
}
