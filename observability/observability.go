// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package observability

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	EXPORT_INTERVAL = time.Second * 30
)

// ConfigureLogger sets the global zerolog logger level and output.
func ConfigureLogger(level zerolog.Level, out io.Writer, pretty bool) {
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// InitMetricProvider builds a meter provider exporting to the OTLP collector.
// Without a collector URL the provider keeps measurements in process only.
func InitMetricProvider(ctx context.Context, collectorURL string, serviceName string) (*sdkmetric.MeterProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, err
	}

	if collectorURL == "" {
		log.Warn().Msg("No OpenTelemetry collector configured, metrics are not exported")
		return sdkmetric.NewMeterProvider(sdkmetric.WithResource(res)), nil
	}

	collector, err := url.Parse(collectorURL)
	if err != nil {
		return nil, fmt.Errorf("invalid collector url %s: %w", collectorURL, err)
	}
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(collector.Host),
	}
	if collector.Path != "" {
		opts = append(opts, otlpmetrichttp.WithURLPath(collector.Path))
	}
	if collector.Scheme == "http" {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(EXPORT_INTERVAL))),
	), nil
}
