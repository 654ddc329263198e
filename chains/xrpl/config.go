// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xrpl

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/address"
)

const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Devnet  = "devnet"
)

type XRPLConfig struct {
	GeneralChainConfig chains.GeneralChainConfig
	Wallet             *address.Wallet
	Network            string
	FaucetURL          string
	MaxFee             int64
	LedgerOffset       uint32
	PollInterval       time.Duration
	Taxon              uint32
	MinReserveWarning  int64
}

type RawXRPLConfig struct {
	chains.GeneralChainConfig `mapstructure:",squash"`
	Account                   string `mapstructure:"account"`
	Network                   string `mapstructure:"network" default:"testnet"`
	FaucetURL                 string `mapstructure:"faucetURL" default:"https://faucet.altnet.rippletest.net/accounts"`
	MaxFee                    int64  `mapstructure:"maxFee" default:"2000"`
	LedgerOffset              uint32 `mapstructure:"ledgerOffset" default:"20"`
	PollInterval              uint64 `mapstructure:"pollInterval" default:"1"`
	Taxon                     uint32 `mapstructure:"taxon"`
	MinReserveWarning         int64  `mapstructure:"minReserveWarning" default:"5000000"`
}

func (c *RawXRPLConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	switch c.Network {
	case Mainnet, Testnet, Devnet:
	default:
		return fmt.Errorf("unknown network %s for domain %s", c.Network, c.Name)
	}
	if !address.IsValidSeed(c.Key) {
		return fmt.Errorf("invalid seed for domain %s", c.Name)
	}
	if c.Account != "" && !address.IsValidClassicAddress(c.Account) {
		return fmt.Errorf("invalid account %s for domain %s", c.Account, c.Name)
	}
	if c.MaxFee <= 0 {
		return fmt.Errorf("maxFee has to be > 0")
	}
	return nil
}

// NewXRPLConfig decodes and validates an instance of an XRPLConfig from
// raw domain config
func NewXRPLConfig(chainConfig map[string]interface{}) (*XRPLConfig, error) {
	var c RawXRPLConfig
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

	wallet, err := address.WalletFromSeed(c.Key)
	if err != nil {
		return nil, err
	}
	if c.Account != "" && c.Account != wallet.Address {
		return nil, fmt.Errorf("account %s does not match the configured seed", c.Account)
	}

	return &XRPLConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Wallet:             wallet,
		Network:            c.Network,
		FaucetURL:          c.FaucetURL,
		MaxFee:             c.MaxFee,
		LedgerOffset:       c.LedgerOffset,
		PollInterval:       time.Duration(c.PollInterval) * time.Second,
		Taxon:              c.Taxon,
		MinReserveWarning:  c.MinReserveWarning,
	}, nil
}
