// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmclient_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/evm/calls/evmclient"
)

type EvmClientTestSuite struct {
	suite.Suite
}

func TestRunEvmClientTestSuite(t *testing.T) {
	suite.Run(t, new(EvmClientTestSuite))
}

func (s *EvmClientTestSuite) Test_MultiplyGasPrice_NoMultiplier() {
	price := evmclient.MultiplyGasPrice(big.NewInt(100), nil, nil)

	s.Equal(big.NewInt(100), price)
}

func (s *EvmClientTestSuite) Test_MultiplyGasPrice_Multiplied() {
	price := evmclient.MultiplyGasPrice(big.NewInt(100), big.NewFloat(1.5), big.NewInt(1000))

	s.Equal(big.NewInt(150), price)
}

func (s *EvmClientTestSuite) Test_MultiplyGasPrice_Capped() {
	price := evmclient.MultiplyGasPrice(big.NewInt(100), big.NewFloat(3), big.NewInt(200))

	s.Equal(big.NewInt(200), price)
}

func (s *EvmClientTestSuite) Test_NewEVMClient_InvalidKey() {
	_, err := evmclient.NewEVMClient(context.Background(), "http://127.0.0.1:1", "not-a-key", evmclient.Opts{})

	s.Equal(chains.ValidationErrorCode, chains.ErrorCode(err))
}
