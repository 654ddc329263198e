// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Telemetry struct {
	*HostMetrics

	opts metric.MeasurementOption

	mints           metric.Int64Counter
	wraps           metric.Int64Counter
	unwraps         metric.Int64Counter
	batches         metric.Int64Counter
	batchFailures   metric.Int64Counter
	mintLatency     metric.Int64Histogram
	transferLatency metric.Int64Histogram
}

// NewTelemetry creates the counters tracking ledger and bridge operations
func NewTelemetry(meter metric.Meter, env string) (*Telemetry, error) {
	opts := metric.WithAttributes(attribute.String("env", env))

	hostMetrics, err := NewHostMetrics(meter, opts)
	if err != nil {
		return nil, err
	}

	mints, err := meter.Int64Counter(
		"nft_bridge.Mints",
		metric.WithDescription("Number of mint transactions by result code"),
	)
	if err != nil {
		return nil, err
	}
	wraps, err := meter.Int64Counter(
		"nft_bridge.Wraps",
		metric.WithDescription("Number of wrap transactions by result code"),
	)
	if err != nil {
		return nil, err
	}
	unwraps, err := meter.Int64Counter(
		"nft_bridge.Unwraps",
		metric.WithDescription("Number of unwrap transactions by result code"),
	)
	if err != nil {
		return nil, err
	}
	batches, err := meter.Int64Counter(
		"nft_bridge.BatchItems",
		metric.WithDescription("Number of items submitted in batch mints"),
	)
	if err != nil {
		return nil, err
	}
	batchFailures, err := meter.Int64Counter(
		"nft_bridge.BatchFailures",
		metric.WithDescription("Number of failed items in batch mints"),
	)
	if err != nil {
		return nil, err
	}
	mintLatency, err := meter.Int64Histogram(
		"nft_bridge.MintLatency",
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}
	transferLatency, err := meter.Int64Histogram(
		"nft_bridge.BridgeLatency",
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Telemetry{
		HostMetrics:     hostMetrics,
		opts:            opts,
		mints:           mints,
		wraps:           wraps,
		unwraps:         unwraps,
		batches:         batches,
		batchFailures:   batchFailures,
		mintLatency:     mintLatency,
		transferLatency: transferLatency,
	}, nil
}

// TrackMint records a mint attempt. An empty code is a success.
func (t *Telemetry) TrackMint(ctx context.Context, code string, duration time.Duration) {
	t.mints.Add(ctx, 1, t.opts, metric.WithAttributes(result(code)))
	t.mintLatency.Record(ctx, duration.Milliseconds(), t.opts)
}

func (t *Telemetry) TrackWrap(ctx context.Context, code string, duration time.Duration) {
	t.wraps.Add(ctx, 1, t.opts, metric.WithAttributes(result(code)))
	t.transferLatency.Record(ctx, duration.Milliseconds(), t.opts, metric.WithAttributes(attribute.String("operation", "wrap")))
}

func (t *Telemetry) TrackUnwrap(ctx context.Context, code string, duration time.Duration) {
	t.unwraps.Add(ctx, 1, t.opts, metric.WithAttributes(result(code)))
	t.transferLatency.Record(ctx, duration.Milliseconds(), t.opts, metric.WithAttributes(attribute.String("operation", "unwrap")))
}

func (t *Telemetry) TrackBatch(ctx context.Context, total, failed int) {
	t.batches.Add(ctx, int64(total), t.opts)
	t.batchFailures.Add(ctx, int64(failed), t.opts)
}

func result(code string) attribute.KeyValue {
	if code == "" {
		return attribute.String("result", "success")
	}
	return attribute.String("result", code)
}
