// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const ServiceName = "nft-bridge"

type ShutdownFunc func(ctx context.Context) error

// DefaultMeter creates a meter exporting to the OTLP collector at
// collectorURL. Without a collector URL metrics are discarded.
func DefaultMeter(ctx context.Context, collectorURL string) (metric.Meter, ShutdownFunc, error) {
	if collectorURL == "" {
		return noop.NewMeterProvider().Meter(ServiceName), func(context.Context) error { return nil }, nil
	}

	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpointURL(collectorURL))
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(resource.NewSchemaless(attribute.String("service.name", ServiceName))),
	)
	return provider.Meter(ServiceName), provider.Shutdown, nil
}
