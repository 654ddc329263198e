// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains/xrpl/reserve"
)

type ReserveChecker interface {
	CheckReserve(ctx context.Context) (reserve.Balance, error)
}

type ReserveMetrics interface {
	TrackReserve(availableDrops int64)
}

// StartReserveMonitorJob periodically checks the custodial account reserve and
// warns when the spendable balance drops below minAvailable drops. It returns
// when ctx is cancelled.
func StartReserveMonitorJob(ctx context.Context, checker ReserveChecker, metrics ReserveMetrics, interval time.Duration, minAvailable int64) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		CheckReserve(ctx, checker, metrics, minAvailable)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// CheckReserve runs a single reserve check and reports whether the account
// has enough spendable balance.
func CheckReserve(ctx context.Context, checker ReserveChecker, metrics ReserveMetrics, minAvailable int64) bool {
	balance, err := checker.CheckReserve(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Unable to check account reserve")
		return false
	}
	metrics.TrackReserve(balance.Available)

	if balance.Available < minAvailable {
		log.Warn().Msgf(
			"Available balance %s XRP is below %s XRP, mints may fail",
			reserve.DropsToXRP(balance.Available), reserve.DropsToXRP(minAvailable),
		)
		return false
	}
	log.Debug().Msgf("Available balance %s XRP", reserve.DropsToXRP(balance.Available))
	return true
}
