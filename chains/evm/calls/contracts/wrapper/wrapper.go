// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wrapper

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains/evm/calls/consts"
)

type ChainClient interface {
	bind.ContractBackend
	TransactOpts(ctx context.Context, gasLimit uint64) (*bind.TransactOpts, error)
}

type WrapperInfo struct {
	SourceAssetID string
	IsWrapped     bool
	WrappedAt     *big.Int
}

// WrapperContract binds the custodial mirror token contract.
type WrapperContract struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
	client   ChainClient
}

func NewWrapperContract(client ChainClient, address common.Address) *WrapperContract {
	a, _ := abi.JSON(strings.NewReader(consts.WrapperABI))
	return &WrapperContract{
		address:  address,
		abi:      a,
		contract: bind.NewBoundContract(address, a, client, client, client),
		client:   client,
	}
}

func (c *WrapperContract) Address() common.Address {
	return c.address
}

func (c *WrapperContract) Wrap(
	ctx context.Context,
	sourceAssetID string,
	metadataURI string,
	recipient common.Address,
	gasLimit uint64,
) (*types.Transaction, error) {
	log.Debug().Str("sourceAsset", sourceAssetID).Msgf("Wrapping into %s", recipient.Hex())
	return c.transact(ctx, gasLimit, "wrapXRPLNFT", sourceAssetID, metadataURI, recipient)
}

func (c *WrapperContract) Unwrap(ctx context.Context, tokenID *big.Int, gasLimit uint64) (*types.Transaction, error) {
	log.Debug().Msgf("Unwrapping token %s", tokenID)
	return c.transact(ctx, gasLimit, "unwrapNFT", tokenID)
}

func (c *WrapperContract) SourceAssetID(ctx context.Context, tokenID *big.Int) (string, error) {
	out, err := c.call(ctx, "getXRPLNftId", tokenID)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *WrapperContract) WrapperInfo(ctx context.Context, tokenID *big.Int) (*WrapperInfo, error) {
	out, err := c.call(ctx, "getWrapperInfo", tokenID)
	if err != nil {
		return nil, err
	}
	return &WrapperInfo{
		SourceAssetID: *abi.ConvertType(out[0], new(string)).(*string),
		IsWrapped:     *abi.ConvertType(out[1], new(bool)).(*bool),
		WrappedAt:     *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
	}, nil
}

func (c *WrapperContract) OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	out, err := c.call(ctx, "ownerOf", tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *WrapperContract) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	out, err := c.call(ctx, "tokenURI", tokenID)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *WrapperContract) transact(ctx context.Context, gasLimit uint64, method string, params ...interface{}) (*types.Transaction, error) {
	opts, err := c.client.TransactOpts(ctx, gasLimit)
	if err != nil {
		return nil, err
	}
	tx, err := c.contract.Transact(opts, method, params...)
	if err != nil {
		log.Error().Err(err).Msgf("Failed sending %s transaction", method)
		return nil, err
	}
	log.Debug().Str("tx", tx.Hash().Hex()).Msgf("Sent %s transaction", method)
	return tx, nil
}

func (c *WrapperContract) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
