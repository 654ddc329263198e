// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/health"
)

type connection bool

func (c connection) IsConnected() bool {
	return bool(c)
}

type HealthTestSuite struct {
	suite.Suite
}

func TestRunHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func (s *HealthTestSuite) Test_AllConnected() {
	recorder := httptest.NewRecorder()

	health.Handler(map[string]health.ConnectionChecker{
		"ledger": connection(true),
		"bridge": connection(true),
	})(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"ledger":true,"bridge":true}`, recorder.Body.String())
}

func (s *HealthTestSuite) Test_LedgerDisconnected() {
	recorder := httptest.NewRecorder()

	health.Handler(map[string]health.ConnectionChecker{
		"ledger": connection(false),
	})(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
	s.JSONEq(`{"ledger":false}`, recorder.Body.String())
}
