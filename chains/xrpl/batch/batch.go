// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/connection"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/minter"
)

const (
	MaxBatchSize = 10

	DefaultInterval    = 500 * time.Millisecond
	DefaultMaxAttempts = 3
)

type Minter interface {
	Mint(ctx context.Context, req minter.MintRequest) minter.MintResult
}

type Metrics interface {
	TrackBatch(ctx context.Context, total, failed int)
}

type Outcome string

const (
	AllSucceeded Outcome = "allSucceeded"
	AllFailed    Outcome = "allFailed"
	Partial      Outcome = "partial"
)

type Success struct {
	Index    int                  `json:"index"`
	AssetID  string               `json:"assetId"`
	TxHash   string               `json:"txHash"`
	Fee      string               `json:"fee"`
	Metadata chains.AssetMetadata `json:"metadata"`
}

type Failure struct {
	Index     int                `json:"index"`
	ErrorCode string             `json:"errorCode"`
	Request   minter.MintRequest `json:"request"`
}

type Summary struct {
	Total        int `json:"total"`
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
}

// Report holds one entry per submitted request, in request order.
type Report struct {
	Successes []Success `json:"successes"`
	Failures  []Failure `json:"failures"`
	Summary   Summary   `json:"summary"`
}

func (r *Report) Outcome() Outcome {
	switch {
	case r.Summary.FailureCount == 0:
		return AllSucceeded
	case r.Summary.SuccessCount == 0:
		return AllFailed
	default:
		return Partial
	}
}

func (r *Report) Success() bool {
	return r.Summary.FailureCount == 0
}

type Orchestrator struct {
	minter      Minter
	metrics     Metrics
	limiter     *rate.Limiter
	maxAttempts uint64
	backoff     func() backoff.BackOff
}

// NewOrchestrator creates an orchestrator that submits at most one mint per interval.
func NewOrchestrator(m Minter, metrics Metrics, interval time.Duration) *Orchestrator {
	return &Orchestrator{
		minter:      m,
		metrics:     metrics,
		limiter:     rate.NewLimiter(rate.Every(interval), 1),
		maxAttempts: DefaultMaxAttempts,
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = interval
			b.MaxElapsedTime = 0
			return b
		},
	}
}

// BatchMint mints every request in order. A failed item never stops the
// items after it.
func (o *Orchestrator) BatchMint(ctx context.Context, reqs []minter.MintRequest) (*Report, error) {
	if len(reqs) == 0 {
		return nil, &chains.ValidationError{Field: "requests", Reason: "batch is empty"}
	}
	if len(reqs) > MaxBatchSize {
		return nil, &chains.ValidationError{Field: "requests", Reason: fmt.Sprintf("batch holds %d items, at most %d are allowed", len(reqs), MaxBatchSize)}
	}

	report := &Report{
		Successes: make([]Success, 0),
		Failures:  make([]Failure, 0),
		Summary:   Summary{Total: len(reqs)},
	}
	for i, req := range reqs {
		result := o.mintItem(ctx, req)
		if result.Success {
			report.Successes = append(report.Successes, Success{
				Index:    i,
				AssetID:  result.AssetID,
				TxHash:   result.TxHash,
				Fee:      result.Fee,
				Metadata: req.Metadata,
			})
			continue
		}

		log.Warn().Int("index", i).Str("code", result.ErrorCode).Msg("Batch item failed")
		report.Failures = append(report.Failures, Failure{
			Index:     i,
			ErrorCode: result.ErrorCode,
			Request:   req,
		})
	}

	report.Summary.SuccessCount = len(report.Successes)
	report.Summary.FailureCount = len(report.Failures)
	if o.metrics != nil {
		o.metrics.TrackBatch(ctx, report.Summary.Total, report.Summary.FailureCount)
	}
	log.Info().Msgf("Batch mint finished: %d succeeded, %d failed", report.Summary.SuccessCount, report.Summary.FailureCount)
	return report, nil
}

func (o *Orchestrator) mintItem(ctx context.Context, req minter.MintRequest) minter.MintResult {
	if err := req.Validate(); err != nil {
		return minter.MintResult{ErrorCode: chains.ErrorCode(err), Err: err}
	}

	var result minter.MintResult
	attempt := func() error {
		if err := o.limiter.Wait(ctx); err != nil {
			result = minter.MintResult{ErrorCode: chains.NetworkErrorCode, Err: &chains.NetworkError{Op: "batch spacing", Err: err}}
			return backoff.Permanent(err)
		}

		result = o.minter.Mint(ctx, req)
		if isSequenceConflict(result.ErrorCode) {
			return fmt.Errorf("sequence conflict: %s", result.ErrorCode)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(o.backoff(), o.maxAttempts-1), ctx)
	err := backoff.Retry(attempt, policy)
	if err != nil && isSequenceConflict(result.ErrorCode) {
		log.Warn().Msgf("Sequence conflict persisted after %d attempts", o.maxAttempts)
	}
	return result
}

func isSequenceConflict(code string) bool {
	return code == connection.PastSeqCode || code == connection.PreSeqCode
}
