package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "league-ranker"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
	writeTextfile     = prometheus.WriteToTextfile
)

// TelemetryConfig controls how run metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	TextfilePath string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics backed by a private Prometheus registry
// and an optional OTLP exporter. The returned shutdown function writes the
// registry to TextfilePath (when set) and flushes the OTLP reader.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, registry, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider, cfg.ServiceName)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		var textErr error
		if cfg.TextfilePath != "" {
			textErr = writeTextfile(cfg.TextfilePath, registry)
		}
		return errors.Join(textErr, provider.Shutdown(c))
	}

	return rec, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	// Runs are short; the shutdown flush does the real export.
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	lines            metric.Int64Counter
	formatErrors     metric.Int64Counter
	matchDays        metric.Int64Counter
	teams            metric.Int64UpDownCounter
	lineDurationUsec metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider, name string) (*otelInstruments, error) {
	meter := provider.Meter(name)
	ctx := context.Background()

	lines, err := meter.Int64Counter("lines_processed_total")
	if err != nil {
		return nil, err
	}
	formatErrors, err := meter.Int64Counter("format_errors_total")
	if err != nil {
		return nil, err
	}
	matchDays, err := meter.Int64Counter("match_days_reported_total")
	if err != nil {
		return nil, err
	}
	teams, err := meter.Int64UpDownCounter("teams_known")
	if err != nil {
		return nil, err
	}
	lineDuration, err := meter.Float64Histogram("line_duration_us")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		lines:            lines,
		formatErrors:     formatErrors,
		matchDays:        matchDays,
		teams:            teams,
		lineDurationUsec: lineDuration,
	}, nil
}

func (o *otelInstruments) recordLine(duration time.Duration, err error) {
	if o == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	attrs := []attribute.KeyValue{attribute.String(AttrOutcome, outcome)}
	o.lines.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	o.lineDurationUsec.Record(o.ctx, float64(duration.Microseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		o.formatErrors.Add(o.ctx, 1)
	}
}

func (o *otelInstruments) recordMatchDay() {
	if o == nil {
		return
	}
	o.matchDays.Add(o.ctx, 1)
}

func (o *otelInstruments) recordTeamSeen() {
	if o == nil {
		return
	}
	o.teams.Add(o.ctx, 1)
}
