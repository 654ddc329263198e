// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/evm"
)

const contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

type NewEVMConfigTestSuite struct {
	suite.Suite
}

func TestRunNewEVMConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewEVMConfigTestSuite))
}

func (s *NewEVMConfigTestSuite) Test_FailedDecode() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"wrapGasLimit": "invalid",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_FailedGeneralConfigValidation() {
	_, err := evm.NewEVMConfig(map[string]interface{}{})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_MissingContract() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"name":     "songbird",
		"endpoint": "https://songbird-api.flare.network/ext/bc/C/rpc",
		"key":      "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	})

	s.NotNil(err)
	s.Equal("required field domain.Contract empty for domain songbird", err.Error())
}

func (s *NewEVMConfigTestSuite) Test_InvalidContract() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"name":     "songbird",
		"endpoint": "https://songbird-api.flare.network/ext/bc/C/rpc",
		"key":      "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		"contract": "contractAddress",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_ValidConfig() {
	rawConfig := map[string]interface{}{
		"name":     "songbird",
		"endpoint": "https://songbird-api.flare.network/ext/bc/C/rpc",
		"key":      "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		"contract": contract,
	}

	actualConfig, err := evm.NewEVMConfig(rawConfig)

	s.Nil(err)
	s.Equal(*actualConfig, evm.EVMConfig{
		GeneralChainConfig: chains.GeneralChainConfig{
			Name:     "songbird",
			Endpoint: "https://songbird-api.flare.network/ext/bc/C/rpc",
			Key:      "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		},
		Contract:            common.HexToAddress(contract),
		MaxGasPrice:         big.NewInt(500000000000),
		GasMultiplier:       big.NewFloat(1),
		WrapGasLimit:        150000,
		UnwrapGasLimit:      100000,
		PlaceholderBaseURI:  "https://api.topdogarena.com/metadata",
		NativeSymbol:        "SGB",
		ReceiptPollInterval: time.Duration(2) * time.Second,
	})
}

func (s *NewEVMConfigTestSuite) Test_ValidConfigWithCustomTxParams() {
	rawConfig := map[string]interface{}{
		"name":                "coston",
		"endpoint":            "https://coston-api.flare.network/ext/bc/C/rpc",
		"key":                 "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		"contract":            contract,
		"maxGasPrice":         1000,
		"gasMultiplier":       1.5,
		"wrapGasLimit":        200000,
		"unwrapGasLimit":      120000,
		"nativeSymbol":        "CFLR",
		"receiptPollInterval": 5,
	}

	actualConfig, err := evm.NewEVMConfig(rawConfig)

	s.Nil(err)
	s.Equal(big.NewInt(1000), actualConfig.MaxGasPrice)
	s.Equal(big.NewFloat(1.5), actualConfig.GasMultiplier)
	s.Equal(uint64(200000), actualConfig.WrapGasLimit)
	s.Equal(uint64(120000), actualConfig.UnwrapGasLimit)
	s.Equal("CFLR", actualConfig.NativeSymbol)
	s.Equal(5*time.Second, actualConfig.ReceiptPollInterval)
}
