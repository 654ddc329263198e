// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package reserve

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/address"
)

const DropsPerXRP = 1_000_000

type Requester interface {
	Request(ctx context.Context, command string, params map[string]interface{}, result interface{}) error
}

// Quote is the ledger-wide reserve requirement in drops.
type Quote struct {
	BaseReserve           int64
	OwnerReserveIncrement int64
}

// Balance of the custodial account in drops. Available may be negative.
type Balance struct {
	Balance   int64
	Available int64
}

type Accessor struct {
	client  Requester
	account string
}

func NewAccessor(client Requester, account string) *Accessor {
	return &Accessor{
		client:  client,
		account: account,
	}
}

// Quote reads the reserve requirements of the last validated ledger.
func (a *Accessor) Quote(ctx context.Context) (Quote, error) {
	var info struct {
		Info struct {
			ValidatedLedger struct {
				ReserveBaseXRP json.Number `json:"reserve_base_xrp"`
				ReserveIncXRP  json.Number `json:"reserve_inc_xrp"`
			} `json:"validated_ledger"`
		} `json:"info"`
	}
	err := a.client.Request(ctx, "server_info", nil, &info)
	if err != nil {
		return Quote{}, err
	}

	base, err := XRPToDrops(info.Info.ValidatedLedger.ReserveBaseXRP.String())
	if err != nil {
		return Quote{}, fmt.Errorf("invalid base reserve: %w", err)
	}
	inc, err := XRPToDrops(info.Info.ValidatedLedger.ReserveIncXRP.String())
	if err != nil {
		return Quote{}, fmt.Errorf("invalid owner reserve: %w", err)
	}

	return Quote{
		BaseReserve:           base,
		OwnerReserveIncrement: inc,
	}, nil
}

// Balance returns the balance of an account in drops.
func (a *Accessor) Balance(ctx context.Context, account string) (int64, error) {
	if !address.IsValidClassicAddress(account) {
		return 0, &chains.ValidationError{Field: "address", Reason: "not a classic address"}
	}

	var info struct {
		AccountData struct {
			Balance string `json:"Balance"`
		} `json:"account_data"`
	}
	err := a.client.Request(ctx, "account_info", map[string]interface{}{
		"account":      account,
		"ledger_index": "validated",
	}, &info)
	if err != nil {
		if code := chains.ErrorCode(err); code == "actNotFound" {
			return 0, &chains.NotFoundError{Kind: "account", ID: account}
		}
		return 0, err
	}

	balance, err := strconv.ParseInt(info.AccountData.Balance, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid balance %q: %w", info.AccountData.Balance, err)
	}
	return balance, nil
}

// Check reports the balance of the custodial account and how much of it is
// spendable above the reserve.
func (a *Accessor) Check(ctx context.Context) (Balance, error) {
	balance, err := a.Balance(ctx, a.account)
	if err != nil {
		return Balance{}, err
	}
	quote, err := a.Quote(ctx)
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		Balance:   balance,
		Available: Available(balance, quote),
	}, nil
}

// Available is the part of balance above the base reserve and one owner increment.
func Available(balance int64, quote Quote) int64 {
	return balance - (quote.BaseReserve + quote.OwnerReserveIncrement)
}

// XRPToDrops converts a decimal XRP amount into drops.
func XRPToDrops(xrp string) (int64, error) {
	r, ok := new(big.Rat).SetString(xrp)
	if !ok {
		return 0, fmt.Errorf("invalid XRP amount %q", xrp)
	}
	r.Mul(r, new(big.Rat).SetInt64(DropsPerXRP))
	if !r.IsInt() {
		return 0, fmt.Errorf("XRP amount %q has more than 6 decimals", xrp)
	}
	return r.Num().Int64(), nil
}

// DropsToXRP renders drops as a decimal XRP amount.
func DropsToXRP(drops int64) string {
	return chains.FormatUnits(big.NewInt(drops), 6)
}
