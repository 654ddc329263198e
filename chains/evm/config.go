// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/ChainSafe/nft-bridge/chains"
)

type EVMConfig struct {
	GeneralChainConfig  chains.GeneralChainConfig
	Contract            common.Address
	MaxGasPrice         *big.Int
	GasMultiplier       *big.Float
	WrapGasLimit        uint64
	UnwrapGasLimit      uint64
	PlaceholderBaseURI  string
	NativeSymbol        string
	ReceiptPollInterval time.Duration
}

type RawEVMConfig struct {
	chains.GeneralChainConfig `mapstructure:",squash"`
	Contract                  string  `mapstructure:"contract"`
	MaxGasPrice               int64   `mapstructure:"maxGasPrice" default:"500000000000"`
	GasMultiplier             float64 `mapstructure:"gasMultiplier" default:"1"`
	WrapGasLimit              uint64  `mapstructure:"wrapGasLimit" default:"150000"`
	UnwrapGasLimit            uint64  `mapstructure:"unwrapGasLimit" default:"100000"`
	PlaceholderBaseURI        string  `mapstructure:"placeholderBaseURI" default:"https://api.topdogarena.com/metadata"`
	NativeSymbol              string  `mapstructure:"nativeSymbol" default:"SGB"`
	ReceiptPollInterval       uint64  `mapstructure:"receiptPollInterval" default:"2"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.Contract == "" {
		return fmt.Errorf("required field domain.Contract empty for domain %s", c.Name)
	}
	if !common.IsHexAddress(c.Contract) {
		return fmt.Errorf("invalid contract address %s for domain %s", c.Contract, c.Name)
	}
	if c.GasMultiplier <= 0 {
		return fmt.Errorf("gasMultiplier has to be > 0")
	}
	if c.WrapGasLimit == 0 || c.UnwrapGasLimit == 0 {
		return fmt.Errorf("gas limits have to be > 0")
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw domain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	config := &EVMConfig{
		GeneralChainConfig:  c.GeneralChainConfig,
		Contract:            common.HexToAddress(c.Contract),
		MaxGasPrice:         big.NewInt(c.MaxGasPrice),
		GasMultiplier:       big.NewFloat(c.GasMultiplier),
		WrapGasLimit:        c.WrapGasLimit,
		UnwrapGasLimit:      c.UnwrapGasLimit,
		PlaceholderBaseURI:  c.PlaceholderBaseURI,
		NativeSymbol:        c.NativeSymbol,
		ReceiptPollInterval: time.Duration(c.ReceiptPollInterval) * time.Second,
	}

	return config, nil
}
