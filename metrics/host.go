// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"
)

type HostMetrics struct {
	startTimeGauge metric.Int64ObservableGauge
	reserveGauge   metric.Int64ObservableGauge

	availableDrops *atomic.Int64
}

// NewHostMetrics initializes metrics related to the bridge host and its
// ledger account
func NewHostMetrics(meter metric.Meter, opts metric.MeasurementOption) (*HostMetrics, error) {
	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"nft_bridge.StartTimeSeconds",
		metric.WithDescription("Start time of the bridge"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	availableDrops := new(atomic.Int64)
	reserveGauge, err := meter.Int64ObservableGauge(
		"nft_bridge.AvailableDrops",
		metric.WithDescription("Ledger account balance above the owner reserve"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(availableDrops.Load(), opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &HostMetrics{
		startTimeGauge: startTimeGauge,
		reserveGauge:   reserveGauge,
		availableDrops: availableDrops,
	}, nil
}

func (m *HostMetrics) TrackReserve(availableDrops int64) {
	m.availableDrops.Store(availableDrops)
}
