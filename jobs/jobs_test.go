// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package jobs_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/chains/xrpl/reserve"
	"github.com/ChainSafe/nft-bridge/jobs"
)

type reserveChecker struct {
	balance reserve.Balance
	err     error
	calls   atomic.Int32
}

func (c *reserveChecker) CheckReserve(ctx context.Context) (reserve.Balance, error) {
	c.calls.Add(1)
	return c.balance, c.err
}

type reserveMetrics struct {
	available atomic.Int64
}

func (m *reserveMetrics) TrackReserve(availableDrops int64) {
	m.available.Store(availableDrops)
}

type ReserveMonitorTestSuite struct {
	suite.Suite
	checker *reserveChecker
	metrics *reserveMetrics
}

func TestRunReserveMonitorTestSuite(t *testing.T) {
	suite.Run(t, new(ReserveMonitorTestSuite))
}

func (s *ReserveMonitorTestSuite) SetupTest() {
	s.checker = &reserveChecker{}
	s.metrics = &reserveMetrics{}
}

func (s *ReserveMonitorTestSuite) Test_CheckReserve_Sufficient() {
	s.checker.balance = reserve.Balance{Balance: 20000000, Available: 8000000}

	ok := jobs.CheckReserve(context.Background(), s.checker, s.metrics, 5000000)

	s.True(ok)
	s.Equal(int64(8000000), s.metrics.available.Load())
}

func (s *ReserveMonitorTestSuite) Test_CheckReserve_BelowWarning() {
	s.checker.balance = reserve.Balance{Balance: 12000000, Available: 0}

	ok := jobs.CheckReserve(context.Background(), s.checker, s.metrics, 5000000)

	s.False(ok)
	s.Equal(int64(0), s.metrics.available.Load())
}

func (s *ReserveMonitorTestSuite) Test_CheckReserve_Error() {
	s.checker.err = errors.New("disconnected")
	s.metrics.available.Store(42)

	ok := jobs.CheckReserve(context.Background(), s.checker, s.metrics, 5000000)

	s.False(ok)
	s.Equal(int64(42), s.metrics.available.Load())
}

func (s *ReserveMonitorTestSuite) Test_StartReserveMonitorJob_StopsOnCancel() {
	s.checker.balance = reserve.Balance{Available: 8000000}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		jobs.StartReserveMonitorJob(ctx, s.checker, s.metrics, time.Millisecond, 5000000)
		close(done)
	}()
	s.Eventually(func() bool { return s.checker.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("monitor did not stop")
	}
}
