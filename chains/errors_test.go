// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/stretchr/testify/suite"
)

type ErrorCodeTestSuite struct {
	suite.Suite
}

func TestRunErrorCodeTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorCodeTestSuite))
}

func (s *ErrorCodeTestSuite) Test_ErrorCode_Nil() {
	s.Equal("", chains.ErrorCode(nil))
}

func (s *ErrorCodeTestSuite) Test_ErrorCode_LedgerCodeVerbatim() {
	err := fmt.Errorf("mint: %w", &chains.LedgerRejectedError{Code: "tecNO_RESERVE"})

	s.Equal("tecNO_RESERVE", chains.ErrorCode(err))
}

func (s *ErrorCodeTestSuite) Test_ErrorCode_Taxonomy() {
	tests := []struct {
		err      error
		expected string
	}{
		{&chains.ValidationError{Field: "transferFee", Reason: "out of range"}, chains.ValidationErrorCode},
		{&chains.NotInitializedError{Component: "bridge"}, chains.NotInitializedErrorCode},
		{&chains.ContractRevertedError{TxHash: "0x01"}, chains.ContractRevertedCode},
		{&chains.NetworkError{Op: "submit", Err: errors.New("eof")}, chains.NetworkErrorCode},
		{&chains.NotFoundError{Kind: "asset", ID: "00"}, chains.NotFoundErrorCode},
		{&chains.UnsupportedOperationError{Op: "fund", Network: "mainnet"}, chains.UnsupportedOperationErrorCode},
		{&chains.AlreadyWrappedError{SourceAssetID: "00", Status: "wrapped"}, chains.AlreadyWrappedCode},
		{&chains.LedgerRequestError{Code: "actNotFound"}, "actNotFound"},
		{context.DeadlineExceeded, chains.NetworkErrorCode},
		{errors.New("boom"), chains.UnknownErrorCode},
	}

	for _, t := range tests {
		s.Equal(t.expected, chains.ErrorCode(t.err))
	}
}

func (s *ErrorCodeTestSuite) Test_NetworkError_Unwrap() {
	cause := errors.New("connection reset")
	err := &chains.NetworkError{Op: "request", Err: cause}

	s.True(errors.Is(err, cause))
}
