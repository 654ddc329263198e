// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmclient

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains"
)

// EVMClient is a keyed JSON-RPC client for the destination chain.
type EVMClient struct {
	*ethclient.Client
	key           *ecdsa.PrivateKey
	from          common.Address
	chainID       *big.Int
	maxGasPrice   *big.Int
	gasMultiplier *big.Float
	pollInterval  time.Duration
}

type Opts struct {
	MaxGasPrice   *big.Int
	GasMultiplier *big.Float
	PollInterval  time.Duration
}

// NewEVMClient dials the endpoint and reads the chain id. A failure to reach
// the endpoint is returned immediately.
func NewEVMClient(ctx context.Context, url string, privateKey string, opts Opts) (*EVMClient, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, &chains.ValidationError{Field: "key", Reason: err.Error()}
	}

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, &chains.NetworkError{Op: "dial destination chain", Err: err}
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, &chains.NetworkError{Op: "chain id", Err: err}
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.GasMultiplier == nil {
		opts.GasMultiplier = big.NewFloat(1)
	}

	c := &EVMClient{
		Client:        client,
		key:           key,
		from:          crypto.PubkeyToAddress(key.PublicKey),
		chainID:       chainID,
		maxGasPrice:   opts.MaxGasPrice,
		gasMultiplier: opts.GasMultiplier,
		pollInterval:  opts.PollInterval,
	}
	log.Info().Str("chainID", chainID.String()).Str("wallet", c.from.Hex()).Msg("Connected to destination chain")
	return c, nil
}

func (c *EVMClient) From() common.Address {
	return c.from
}

func (c *EVMClient) CachedChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// TransactOpts returns signing options with a fixed gas limit and a capped gas price.
func (c *EVMClient) TransactOpts(ctx context.Context, gasLimit uint64) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, err
	}
	gasPrice, err := c.GasPrice(ctx)
	if err != nil {
		return nil, err
	}

	opts.Context = ctx
	opts.GasLimit = gasLimit
	opts.GasPrice = gasPrice
	return opts, nil
}

func (c *EVMClient) GasPrice(ctx context.Context) (*big.Int, error) {
	suggested, err := c.SuggestGasPrice(ctx)
	if err != nil {
		return nil, &chains.NetworkError{Op: "gas price", Err: err}
	}
	return MultiplyGasPrice(suggested, c.gasMultiplier, c.maxGasPrice), nil
}

// WaitAndReturnTxReceipt polls until the transaction is included in a block.
func (c *EVMClient) WaitAndReturnTxReceipt(ctx context.Context, h common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.TransactionReceipt(ctx, h)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			log.Debug().Err(err).Str("tx", h.Hex()).Msg("Failed fetching receipt")
		}

		select {
		case <-ctx.Done():
			return nil, &chains.NetworkError{Op: "wait for receipt", Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

func (c *EVMClient) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := c.BalanceAt(ctx, c.from, nil)
	if err != nil {
		return nil, &chains.NetworkError{Op: "balance", Err: err}
	}
	return balance, nil
}

// MultiplyGasPrice scales the suggested price, never exceeding maxGasPrice
// when one is set.
func MultiplyGasPrice(suggested *big.Int, multiplier *big.Float, maxGasPrice *big.Int) *big.Int {
	price := new(big.Float).SetInt(suggested)
	if multiplier != nil {
		price.Mul(price, multiplier)
	}
	result, _ := price.Int(nil)

	if maxGasPrice != nil && maxGasPrice.Sign() > 0 && result.Cmp(maxGasPrice) > 0 {
		return new(big.Int).Set(maxGasPrice)
	}
	return result
}
